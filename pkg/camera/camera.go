// Package camera implements the pinhole/thin-lens camera model: an
// orthonormal viewing basis that turns raster pixel coordinates into
// bundles of sample rays, with optional defocus blur.
package camera

import (
	"math"
	"math/rand"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// Camera holds the orthonormal viewing basis and viewport geometry derived
// from a look-at configuration.
type Camera struct {
	Position vec3.Vec3
	Forward  vec3.Vec3
	Right    vec3.Vec3
	Up       vec3.Vec3

	VerticalFovDeg float64
	AspectRatio    float64
	FocusDist      float64
	Aperture       float64

	RasterWidth, RasterHeight int

	viewportWidth, viewportHeight float64
}

// New builds a camera looking from `from` toward `to`, oriented by the
// world-up hint `vup`. FocusDist sets both the viewport distance and the
// plane of perfect focus; Aperture controls defocus blur (0 disables it).
func New(from, to, vup vec3.Vec3, verticalFovDeg, aspectRatio, focusDist, aperture float64, rasterWidth, rasterHeight int) Camera {
	forward := from.Sub(to).Normalize()
	right := vup.Cross(forward).Normalize()
	up := forward.Cross(right)

	theta := verticalFovDeg * math.Pi / 180
	h := math.Tan(theta * 0.5)
	viewportHeight := 2 * h
	viewportWidth := aspectRatio * viewportHeight

	return Camera{
		Position:       from,
		Forward:        forward,
		Right:          right,
		Up:             up,
		VerticalFovDeg: verticalFovDeg,
		AspectRatio:    aspectRatio,
		FocusDist:      focusDist,
		Aperture:       aperture,
		RasterWidth:    rasterWidth,
		RasterHeight:   rasterHeight,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// lowerLeft returns the viewport's lower-left corner, placed at the focus
// plane (Position - FocusDist*Forward) and sized by FocusDist.
func (c Camera) lowerLeft() vec3.Vec3 {
	center := c.Position.Sub(c.Forward.Scale(c.FocusDist))
	halfW := c.FocusDist * c.viewportWidth / 2
	halfH := c.FocusDist * c.viewportHeight / 2
	return center.Sub(c.Right.Scale(halfW)).Sub(c.Up.Scale(halfH))
}

// PixelRays is the bundle of sample rays generated for one raster pixel.
type PixelRays struct {
	X, Y int
	Rays []vec3.Ray
}

// GetRays generates, for every raster pixel, samplesPerPixel rays whose
// destinations are jittered uniformly within the pixel and whose origins
// are jittered within a disk of radius Aperture/2 when Aperture > 0
// (producing defocus blur for points away from the focus plane). rng
// drives both jitters and is expected to be a single, non-shared source
// (sample rays are pre-generated before workers start, per the renderer's
// deterministic-sampling design).
func (c Camera) GetRays(samplesPerPixel int, rng *rand.Rand) []PixelRays {
	lowerLeft := c.lowerLeft()
	bundles := make([]PixelRays, 0, c.RasterWidth*c.RasterHeight)

	for x := 0; x < c.RasterWidth; x++ {
		for y := 0; y < c.RasterHeight; y++ {
			rays := make([]vec3.Ray, samplesPerPixel)
			for s := 0; s < samplesPerPixel; s++ {
				px := float64(x) + rng.Float64()
				py := float64(y) + rng.Float64()

				sx := c.FocusDist * c.viewportWidth * px / float64(c.RasterWidth)
				sy := c.FocusDist * c.viewportHeight * (float64(c.RasterHeight) - py) / float64(c.RasterHeight)

				destination := lowerLeft.Add(c.Right.Scale(sx)).Add(c.Up.Scale(sy))

				origin := c.Position
				if c.Aperture > 0 {
					lensRadius := c.Aperture / 2
					disk := vec3.RandomInUnitDisk(rng).Scale(lensRadius)
					origin = origin.Add(c.Right.Scale(disk.X)).Add(c.Up.Scale(disk.Y))
				}

				rays[s] = vec3.RayTo(origin, destination)
			}
			bundles = append(bundles, PixelRays{X: x, Y: y, Rays: rays})
		}
	}
	return bundles
}
