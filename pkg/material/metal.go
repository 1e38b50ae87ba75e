package material

import (
	"math/rand"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// Metal is a reflective surface perturbed by Fuzz, clamped to [0,1] at
// construction.
type Metal struct {
	Albedo rtcolor.Color
	Fuzz   float64
}

// NewMetal builds a Metal material, clamping fuzz to [0,1].
func NewMetal(albedo rtcolor.Color, fuzz float64) Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming direction about the normal, perturbed by
// Fuzz; a scattered direction that would go back into the surface is
// absorbed (Scattered = nil).
func (m Metal) Scatter(rIn vec3.Ray, rec hittable.HitRecord, rng *rand.Rand) hittable.ScatterResult {
	reflected := rIn.Direction.Normalize().Reflect(rec.N)
	direction := reflected.Add(vec3.RandomInUnitSphere(rng).Scale(m.Fuzz))

	if direction.Dot(rec.N) <= 0 {
		return hittable.ScatterResult{
			Scattered:   nil,
			Attenuation: m.Albedo,
			Emitted:     rtcolor.Black(),
		}
	}

	scattered := vec3.NewRay(rec.P, direction)
	return hittable.ScatterResult{
		Scattered:   &scattered,
		Attenuation: m.Albedo,
		Emitted:     rtcolor.Black(),
	}
}
