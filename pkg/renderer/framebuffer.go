package renderer

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"sync"

	"github.com/pkg/errors"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
)

// Framebuffer is a shared 2D array of 8-bit RGB pixels, written exactly
// once per pixel by whichever worker claims that pixel. SetPixel, GetPixel
// and SavePNG each hold the framebuffer's mutex for their own duration.
type Framebuffer struct {
	Width, Height int

	mu  sync.Mutex
	img *image.RGBA
}

// NewFramebuffer allocates an empty framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// SetPixel writes a single pixel under the framebuffer's lock, held only
// for the duration of the write — never across ray tracing.
func (fb *Framebuffer) SetPixel(x, y int, c rtcolor.Color) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.img.Set(x, y, c.ToRGBA())
}

// GetPixel reads a single pixel under the framebuffer's lock.
func (fb *Framebuffer) GetPixel(x, y int) stdcolor.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.img.RGBAAt(x, y)
}

// SavePNG encodes the framebuffer as a PNG at the given path.
func (fb *Framebuffer) SavePNG(path string) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "framebuffer: create %q", path)
	}
	defer f.Close()

	if err := png.Encode(f, fb.img); err != nil {
		return errors.Wrapf(err, "framebuffer: encode PNG to %q", path)
	}
	return nil
}
