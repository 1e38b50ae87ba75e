package texture

import (
	"image"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// TriangleImage maps a single triangle's barycentric (u,v) directly onto an
// affine patch of pixel coordinates: pixel = p1 + u*v1 + v*v2. Unlike
// Image, the (u,v) domain is triangular (u,v >= 0, u+v <= 1), and p1/v1/v2
// are expressed in image pixel space rather than [0,1] UV space — useful
// for mapping a subrectangle of a shared sheet onto one triangle without
// per-vertex UV bookkeeping (e.g. the two triangles of a die cube's face).
type TriangleImage struct {
	img        image.Image
	p1, v1, v2 [2]float64
}

// NewTriangleImage builds a texture for one triangle, where pixelP1 is the
// image-space position of the triangle's first vertex and pixelP2/pixelP3
// those of the other two; v1 = pixelP2-pixelP1, v2 = pixelP3-pixelP1.
func NewTriangleImage(img image.Image, pixelP1, pixelP2, pixelP3 [2]float64) *TriangleImage {
	return &TriangleImage{
		img: img,
		p1:  pixelP1,
		v1:  [2]float64{pixelP2[0] - pixelP1[0], pixelP2[1] - pixelP1[1]},
		v2:  [2]float64{pixelP3[0] - pixelP1[0], pixelP3[1] - pixelP1[1]},
	}
}

// GetColor evaluates p1 + u*v1 + v*v2 in pixel space and samples the
// nearest pixel.
func (ti *TriangleImage) GetColor(u, v float64, p vec3.Vec3) rtcolor.Color {
	px := ti.p1[0] + u*ti.v1[0] + v*ti.v2[0]
	py := ti.p1[1] + u*ti.v1[1] + v*ti.v2[1]

	bounds := ti.img.Bounds()
	x := bounds.Min.X + clampIndex(int(px), bounds.Dx())
	y := bounds.Min.Y + clampIndex(int(py), bounds.Dy())

	r, g, b, _ := ti.img.At(x, y).RGBA()
	return rtcolor.New(float64(r>>8)/256, float64(g>>8)/256, float64(b>>8)/256)
}
