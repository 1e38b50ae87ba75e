package renderer

import (
	"math"
	"math/rand"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// shadowAcneEpsilon is the t_min floor used when tracing a ray against the
// scene, preventing a scattered ray from numerically re-hitting the
// surface it left.
const shadowAcneEpsilon = 1e-4

// Scene is anything the radiance estimator can query for the nearest hit
// along a ray: typically a BVH plus any non-AABB primitives (planes) tested
// alongside it.
type Scene interface {
	Hit(r vec3.Ray, tMin, tMax float64) (hittable.HitRecord, bool)
}

// RayColor recursively estimates the radiance returned along r: a miss or
// exhausted recursion depth yields the background color (bounded bias
// traded for guaranteed termination); a hit dispatches scatter on the hit
// material, adding its emission to the attenuated recursive estimate of the
// scattered ray.
func RayColor(scene Scene, r vec3.Ray, depth int, background rtcolor.Color, rng *rand.Rand) rtcolor.Color {
	if depth <= 0 {
		return background
	}

	rec, ok := scene.Hit(r, shadowAcneEpsilon, math.Inf(1))
	if !ok {
		return background
	}

	result := rec.Material.Scatter(r, rec, rng)
	if result.Scattered == nil {
		return result.Emitted
	}

	return result.Emitted.Sum(RayColor(scene, *result.Scattered, depth-1, background, rng).Attenuate(result.Attenuation))
}

// PixelColor averages the radiance estimates of every sample ray in a
// bundle and gamma-corrects the result, ready for 8-bit encoding.
func PixelColor(scene Scene, rays []vec3.Ray, depth int, background rtcolor.Color, rng *rand.Rand) rtcolor.Color {
	samples := make([]rtcolor.Color, len(rays))
	for i, r := range rays {
		samples[i] = RayColor(scene, r, depth, background, rng)
	}
	return rtcolor.Average(samples).GammaCorrected()
}
