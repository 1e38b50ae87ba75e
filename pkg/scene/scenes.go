package scene

import (
	"math/rand"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/camera"
	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/material"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/models"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/texture"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// centerAndScaleMesh translates a loaded mesh so its bounding-box center
// sits at the world origin, then uniformly scales it so its bounding-box
// diagonal equals 2*targetRadius. Loaded OBJ/glTF models come from source files with
// arbitrary position and scale; this brings every one into the same fixed
// camera frame the scene constructors assume.
func centerAndScaleMesh(mesh *models.Mesh, targetRadius float64) {
	center := mesh.Center()
	extent := mesh.Size().Len()

	scale := 1.0
	if extent > 1e-9 {
		scale = (2 * targetRadius) / extent
	}

	transform := vec3.ScaleUniform(scale).Mul(vec3.Translate(center.Negate()))
	mesh.Transform(transform)
}

// SpheresAndCubes builds the randomized field of spheres and cubes on a
// large ground sphere, an earth-textured sphere, a mars-textured sphere, and
// one large metal cube, framed by a narrow (20 degree) camera looking down at
// the field. earthTexturePath/marsTexturePath select the image textures for the
// two globe spheres; rng drives the randomized field placement and
// materials, matching the original's thread_rng-seeded layout.
func SpheresAndCubes(earthTexturePath, marsTexturePath string, rng *rand.Rand) (Built, error) {
	const aspectRatio = 3.0 / 2.0
	const width = 300
	height := int(width / aspectRatio)

	cam := camera.New(
		vec3.V3(13, 2, 3), vec3.V3(0, 0, 0), vec3.Up(),
		20, aspectRatio, 10, 0.1,
		width, height,
	)

	ground := hittable.Sphere{
		Center:   vec3.V3(0, -1000, 0),
		Radius:   1000,
		Material: material.NewLambertian(rtcolor.New(0.5, 0.5, 0.5)),
	}

	earthImg, err := texture.LoadImage(earthTexturePath)
	if err != nil {
		return Built{}, err
	}
	marsImg, err := texture.LoadImage(marsTexturePath)
	if err != nil {
		return Built{}, err
	}

	earth := hittable.Sphere{
		Center:   vec3.V3(0, 1, 0),
		Radius:   1,
		Material: material.NewLambertianTexture(earthImg),
	}
	mars := hittable.Sphere{
		Center:   vec3.V3(4, 1, -3.5),
		Radius:   1,
		Material: material.NewLambertianTexture(marsImg),
	}

	cube1 := hittable.NewCube(
		vec3.V3(-8, 4, 0), vec3.V3(-8, 4, 0).Add(vec3.V3(1, 1, 0.5)),
		3, 3, 3,
		material.NewMetal(rtcolor.White(), 0),
	)

	objects := []hittable.Hittable{ground, cube1, earth, mars}

	for a := -12; a < 12; a++ {
		for b := -12; b < 12; b++ {
			center := vec3.V3(
				float64(a)+0.9*rng.Float64(),
				0.5,
				float64(b)+0.9*rng.Float64(),
			)
			if center.Sub(vec3.V3(4, 0.2, 0)).Len() < 3.5 {
				continue
			}

			chooseMat := rng.Float64()
			chooseCube := rng.Float64()

			switch {
			case chooseCube < 0.5:
				objects = append(objects, randomCube(center, chooseMat, rng))
			case chooseCube < 0.8:
				objects = append(objects, randomSphere(center, chooseMat, rng))
			}
		}
	}

	s := Build(objects, nil, 0, rng)
	return Built{Scene: s, Camera: cam, Background: rtcolor.White()}, nil
}

func randomCube(center vec3.Vec3, chooseMat float64, rng *rand.Rand) hittable.Hittable {
	to := center.Add(vec3.V3(1, 0.5, 0))
	switch {
	case chooseMat < 0.8:
		return hittable.NewCube(center, to, 0.3, 0.3, 0.3, material.NewMetal(randomColor(rng), 0.1))
	case chooseMat < 0.95:
		return hittable.NewCube(center, to, 0.3, 0.3, 0.3, material.NewMetal(randomColor(rng), 0))
	default:
		return hittable.NewCube(center, to, 0.3, 0.3, 0.3, material.NewDielectric(1.5))
	}
}

func randomSphere(center vec3.Vec3, chooseMat float64, rng *rand.Rand) hittable.Hittable {
	switch {
	case chooseMat < 0.8:
		return hittable.Sphere{Center: center, Radius: 0.2, Material: material.NewLambertian(randomColor01(rng))}
	case chooseMat < 0.95:
		return hittable.Sphere{Center: center, Radius: 0.2, Material: material.NewMetal(randomColor(rng), 0)}
	default:
		return hittable.Sphere{Center: center, Radius: 0.2, Material: material.NewDielectric(1.5)}
	}
}

func randomColor(rng *rand.Rand) rtcolor.Color {
	return rtcolor.New(rng.Float64(), rng.Float64(), rng.Float64())
}

func randomColor01(rng *rand.Rand) rtcolor.Color {
	return rtcolor.New(rng.Float64()*rng.Float64(), rng.Float64()*rng.Float64(), rng.Float64()*rng.Float64())
}

// CornellBox builds the classic Cornell box: five colored walls, an area
// light in the ceiling, and two white cuboids, all at the original's
// ~555-unit scale, framed head-on.
func CornellBox(rng *rand.Rand) Built {
	const aspectRatio = 1.0
	const width = 600
	height := width

	cam := camera.New(
		vec3.V3(278, 278, -800), vec3.V3(278, 278, 0), vec3.Up(),
		40, aspectRatio, 800, 0,
		width, height,
	)

	red := material.NewLambertian(rtcolor.New(0.65, 0.05, 0.05))
	green := material.NewLambertian(rtcolor.New(0.12, 0.45, 0.15))
	white := material.NewLambertian(rtcolor.White())
	light := material.NewDiffuseLight(rtcolor.White())

	rightWall := hittable.NewQuad(vec3.V3(0, 555, 0), vec3.V3(0, 555, 555), vec3.V3(0, 0, 555), vec3.V3(0, 0, 0), green)
	leftWall := hittable.NewQuad(vec3.V3(555, 555, 0), vec3.V3(555, 555, 555), vec3.V3(555, 0, 555), vec3.V3(555, 0, 0), red)
	backWall := hittable.NewQuad(vec3.V3(0, 555, 555), vec3.V3(555, 555, 555), vec3.V3(555, 0, 555), vec3.V3(0, 0, 555), white)
	topWall := hittable.NewQuad(vec3.V3(0, 555, 0), vec3.V3(0, 555, 555), vec3.V3(555, 555, 555), vec3.V3(555, 555, 0), white)
	bottomWall := hittable.NewQuad(vec3.V3(0, 0, 0), vec3.V3(0, 0, 555), vec3.V3(555, 0, 555), vec3.V3(555, 0, 0), white)
	ceilingLight := hittable.NewQuad(vec3.V3(113, 554, 127), vec3.V3(113, 554, 432), vec3.V3(443, 554, 432), vec3.V3(443, 554, 127), light)

	cube1 := hittable.NewCube(vec3.V3(138, 75, 130), vec3.V3(138, 75, 130).Add(vec3.V3(200, 75, 300)), 100, 150, 100, white)
	cube2 := hittable.NewCube(vec3.V3(400, 150, 330), vec3.V3(400, 150, 330).Add(vec3.V3(100, 150, 300)), 100, 300, 100, white)

	objects := []hittable.Hittable{
		rightWall, leftWall, backWall, topWall, bottomWall, ceilingLight, cube1, cube2,
	}

	s := Build(objects, nil, 0, rng)
	return Built{Scene: s, Camera: cam, Background: rtcolor.Black()}
}

// DieBox frames a single die-textured cube over a checkered floor plane,
// exercising hittable.NewDieCube and the checkered texture's procedural
// pattern side by side.
func DieBox(dieTexturePath string, rng *rand.Rand) (Built, error) {
	const aspectRatio = 1.0
	const width = 400
	height := width

	cam := camera.New(
		vec3.V3(0, 3, 6), vec3.V3(0, 0.5, 0), vec3.Up(),
		40, aspectRatio, 6, 0,
		width, height,
	)

	dieImg, err := texture.LoadImage(dieTexturePath)
	if err != nil {
		return Built{}, err
	}
	die := hittable.NewDieCube(vec3.V3(0, 0.5, 0), vec3.V3(0, 0.5, -1), 1, material.NewLambertianTexture(dieImg))

	checker := texture.NewChecker(rtcolor.New(0.9, 0.9, 0.9), rtcolor.New(0.2, 0.2, 0.2), 0.5)
	floor := hittable.Plane{Point: vec3.V3(0, 0, 0), Normal: vec3.Up(), Material: material.NewLambertianTexture(checker)}

	s := Build([]hittable.Hittable{die}, []hittable.Plane{floor}, 0, rng)
	return Built{Scene: s, Camera: cam, Background: rtcolor.New(0.5, 0.7, 1.0)}, nil
}

// FromOBJ builds a scene from a single OBJ mesh file. The mesh is centered
// at the world origin and scaled to a fixed radius (via Mesh.Transform) so
// that models of any source scale or position land in the same framed
// camera view; the mesh's triangles all carry the loader's default
// material, and a ground sphere sits just beneath it.
func FromOBJ(objPath string, rng *rand.Rand) (Built, error) {
	mesh, err := LoadOBJMesh(objPath)
	if err != nil {
		return Built{}, err
	}

	const targetRadius = 2.0
	centerAndScaleMesh(mesh, targetRadius)

	triangles := mesh.ToHittables(material.NewLambertian(defaultMeshColor))

	const aspectRatio = 16.0 / 9.0
	const width = 400
	height := int(width / aspectRatio)

	cam := camera.New(
		vec3.V3(0, targetRadius*0.5, targetRadius*2), vec3.Zero3(), vec3.Up(),
		40, aspectRatio, targetRadius*2.5, 0,
		width, height,
	)

	ground := hittable.Sphere{
		Center:   vec3.V3(0, mesh.BoundsMin.Y-1000, 0),
		Radius:   1000,
		Material: material.NewLambertian(rtcolor.New(0.5, 0.5, 0.5)),
	}

	objects := append([]hittable.Hittable{ground}, triangles...)

	s := Build(objects, nil, 0, rng)
	return Built{Scene: s, Camera: cam, Background: rtcolor.New(0.5, 0.7, 1.0)}, nil
}
