package material

import (
	"math"
	"math/rand"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// Dielectric is a transparent surface (glass, water) that either reflects
// or refracts according to its index of refraction, with the split chosen
// stochastically via a Schlick reflectance approximation.
type Dielectric struct {
	IndexOfRefraction float64
}

// NewDielectric builds a Dielectric material of the given index of
// refraction.
func NewDielectric(ior float64) Dielectric {
	return Dielectric{IndexOfRefraction: ior}
}

// Scatter computes Snell refraction or Schlick-weighted reflection; the
// resulting attenuation is always white (the glass itself absorbs nothing).
func (d Dielectric) Scatter(rIn vec3.Ray, rec hittable.HitRecord, rng *rand.Rand) hittable.ScatterResult {
	refractionRatio := d.IndexOfRefraction
	if rec.FrontFace {
		refractionRatio = 1 / d.IndexOfRefraction
	}

	unitDirection := rIn.Direction.Normalize()
	cos := math.Min(unitDirection.Negate().Dot(rec.N), 1)
	sin := math.Sqrt(1 - cos*cos)

	cannotRefract := refractionRatio*sin > 1
	var direction vec3.Vec3
	if cannotRefract || schlickReflectance(cos, refractionRatio) > rng.Float64() {
		direction = unitDirection.Reflect(rec.N)
	} else {
		direction = refract(unitDirection, rec.N, refractionRatio)
	}

	scattered := vec3.NewRay(rec.P, direction)
	return hittable.ScatterResult{
		Scattered:   &scattered,
		Attenuation: rtcolor.White(),
		Emitted:     rtcolor.Black(),
	}
}

// refract applies Snell's law to an incident unit vector uv about a unit
// normal n, given the ratio of refractive indices etaiOverEtat.
func refract(uv, n vec3.Vec3, etaiOverEtat float64) vec3.Vec3 {
	cos := math.Min(uv.Negate().Dot(n), 1)
	rOutPerp := uv.Add(n.Scale(cos)).Scale(etaiOverEtat)
	rOutParallel := n.Scale(-math.Sqrt(math.Abs(1 - rOutPerp.LenSq())))
	return rOutPerp.Add(rOutParallel)
}

// schlickReflectance approximates the probability of reflection at the
// given angle and refractive-index ratio.
func schlickReflectance(cos, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
