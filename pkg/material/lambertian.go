// Package material implements the scatter contracts for the renderer's
// supported surfaces: Lambertian, Metal, Dielectric, and DiffuseLight.
package material

import (
	"math/rand"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/texture"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// Lambertian is a diffuse surface that scatters toward a cosine-weighted
// direction around the surface normal, approximated by offsetting the
// normal with a uniformly sampled point in the unit sphere.
type Lambertian struct {
	Texture texture.Texture
}

// NewLambertian builds a Lambertian material of a single solid color.
func NewLambertian(albedo rtcolor.Color) Lambertian {
	return Lambertian{Texture: texture.NewSolid(albedo)}
}

// NewLambertianTexture builds a Lambertian material backed by any texture.
func NewLambertianTexture(t texture.Texture) Lambertian {
	return Lambertian{Texture: t}
}

// Scatter offsets the normal by a random point in the unit sphere; if the
// resulting direction is numerically near zero, it falls back to the
// normal itself to avoid a degenerate zero-length ray.
func (l Lambertian) Scatter(rIn vec3.Ray, rec hittable.HitRecord, rng *rand.Rand) hittable.ScatterResult {
	direction := rec.N.Add(vec3.RandomInUnitSphere(rng))
	if direction.NearZero() {
		direction = rec.N
	}
	scattered := vec3.NewRay(rec.P, direction)
	return hittable.ScatterResult{
		Scattered:   &scattered,
		Attenuation: l.Texture.GetColor(rec.U, rec.V, rec.P),
		Emitted:     rtcolor.Black(),
	}
}
