// Package texture implements the surface-color lookups materials sample
// from: solid colors, a procedural checker pattern, and decoded images.
package texture

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/pkg/errors"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// Texture maps a surface point (given its UV coordinates and world
// position) to a color.
type Texture interface {
	GetColor(u, v float64, p vec3.Vec3) rtcolor.Color
}

// Solid is a texture of a single, uniform color.
type Solid struct {
	Color rtcolor.Color
}

// NewSolid wraps a color as a texture.
func NewSolid(c rtcolor.Color) Solid {
	return Solid{Color: c}
}

// GetColor always returns the solid color, ignoring the sample point.
func (s Solid) GetColor(u, v float64, p vec3.Vec3) rtcolor.Color {
	return s.Color
}

// Checker alternates between two colors based on the sign of a 3D sine
// product, giving a world-space checkerboard independent of UV mapping.
type Checker struct {
	Even, Odd  rtcolor.Color
	SizeFactor float64
}

// NewChecker builds a checker texture; sizeFactor controls square size (the
// argument to sin is divided by it, so larger values make larger squares).
func NewChecker(even, odd rtcolor.Color, sizeFactor float64) Checker {
	return Checker{Even: even, Odd: odd, SizeFactor: sizeFactor}
}

// GetColor evaluates sin(x/s)*sin(y/s)*sin(z/s) and picks Odd when negative.
func (c Checker) GetColor(u, v float64, p vec3.Vec3) rtcolor.Color {
	sines := sin(p.X/c.SizeFactor) * sin(p.Y/c.SizeFactor) * sin(p.Z/c.SizeFactor)
	if sines < 0 {
		return c.Odd
	}
	return c.Even
}

// Image samples a decoded raster image with nearest-neighbour lookup,
// truncating (u*W, v*H) to integer pixel coordinates.
type Image struct {
	img image.Image
}

// LoadImage decodes an image file (PNG, JPEG, BMP, or TIFF) from path.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "texture: open %q", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "texture: decode %q", path)
	}
	return &Image{img: img}, nil
}

// NewImage wraps an already-decoded image as a texture.
func NewImage(img image.Image) *Image {
	return &Image{img: img}
}

// GetColor samples the nearest pixel to (u*W, v*H), converting its 8-bit
// channels to linear [0,1) via /256.
func (it *Image) GetColor(u, v float64, p vec3.Vec3) rtcolor.Color {
	bounds := it.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	x := bounds.Min.X + clampIndex(int(u*float64(w)), w)
	y := bounds.Min.Y + clampIndex(int(v*float64(h)), h)

	r, g, b, _ := it.img.At(x, y).RGBA()
	// image.Color.RGBA() returns 16-bit-scaled components; reduce to 8-bit
	// before applying the spec's /256 conversion.
	return rtcolor.New(float64(r>>8)/256, float64(g>>8)/256, float64(b>>8)/256)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func sin(x float64) float64 {
	return math.Sin(x)
}
