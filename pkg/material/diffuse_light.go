package material

import (
	"math/rand"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// DiffuseLight is a purely emissive surface: it never scatters, so it
// terminates the path it is hit by.
type DiffuseLight struct {
	EmitColor rtcolor.Color
}

// NewDiffuseLight builds a DiffuseLight material emitting the given color.
func NewDiffuseLight(emit rtcolor.Color) DiffuseLight {
	return DiffuseLight{EmitColor: emit}
}

// Scatter always terminates the path, returning the light's emitted color.
func (d DiffuseLight) Scatter(rIn vec3.Ray, rec hittable.HitRecord, rng *rand.Rand) hittable.ScatterResult {
	return hittable.ScatterResult{
		Scattered:   nil,
		Attenuation: rtcolor.Black(),
		Emitted:     d.EmitColor,
	}
}
