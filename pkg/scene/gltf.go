package scene

import (
	"math/rand"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/camera"
	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/material"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/models"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// FromGLTF builds a scene from a single glTF/GLB mesh file: it is centered
// at the world origin and scaled to a fixed radius (via Mesh.Transform,
// same as FromOBJ) so that models of any source scale or position land in
// the same framed camera view. Its faces are converted straight to
// triangles, using each face's glTF material's base color when present and
// a flat grey Lambertian otherwise, and placed over the same ground sphere
// the OBJ loader scene uses.
func FromGLTF(path string, rng *rand.Rand) (Built, error) {
	mesh, err := models.LoadGLB(path)
	if err != nil {
		return Built{}, err
	}

	const targetRadius = 2.0
	centerAndScaleMesh(mesh, targetRadius)

	fallback := material.NewLambertian(rtcolor.New(0.6, 0.6, 0.6))
	triangles := mesh.ToHittables(fallback)

	const aspectRatio = 16.0 / 9.0
	const width = 400
	height := int(width / aspectRatio)

	from := vec3.V3(targetRadius*1.5, targetRadius, targetRadius*2.5)
	cam := camera.New(from, vec3.Zero3(), vec3.Up(), 40, aspectRatio, targetRadius*2.5, 0, width, height)

	ground := hittable.Sphere{
		Center:   vec3.V3(0, mesh.BoundsMin.Y-1000, 0),
		Radius:   1000,
		Material: material.NewLambertian(rtcolor.New(0.5, 0.5, 0.5)),
	}

	objects := append([]hittable.Hittable{ground}, triangles...)

	s := Build(objects, nil, 0, rng)
	return Built{Scene: s, Camera: cam, Background: rtcolor.New(0.5, 0.7, 1.0)}, nil
}
