// Package color implements linear RGB color arithmetic for the path tracer,
// including the gamma correction and 8-bit encoding applied on output.
package color

import (
	"image/color"
	"math"
)

// Color is a linear RGB triple with components semantically in [0,1].
// Values may transiently exceed that range during accumulation; Sum clamps.
type Color struct {
	R, G, B float64
}

// New creates a Color from components expected to lie in [0,1].
func New(r, g, b float64) Color {
	return Color{r, g, b}
}

// White returns pure white.
func White() Color { return Color{1, 1, 1} }

// Black returns pure black.
func Black() Color { return Color{0, 0, 0} }

// Lerp linearly interpolates between two colors: (1-t)*a + t*b.
func Lerp(a, b Color, t float64) Color {
	return Color{
		a.R*(1-t) + b.R*t,
		a.G*(1-t) + b.G*t,
		a.B*(1-t) + b.B*t,
	}
}

// Attenuate returns the component-wise product c * factor, the formula used
// to attenuate an incoming radiance estimate by a material's albedo.
func (c Color) Attenuate(factor Color) Color {
	return Color{c.R * factor.R, c.G * factor.G, c.B * factor.B}
}

// Scale returns c scaled by a scalar.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Sum adds two colors, clamping each resulting component to [0, 256]. The
// unusual upper bound (rather than 1) mirrors the range accumulated light
// is allowed to occupy before gamma correction and 8-bit encoding.
func (c Color) Sum(o Color) Color {
	return Color{
		clamp(c.R+o.R, 0, 256),
		clamp(c.G+o.G, 0, 256),
		clamp(c.B+o.B, 0, 256),
	}
}

// GammaCorrected applies gamma correction (component-wise square root).
func (c Color) GammaCorrected() Color {
	return Color{math.Sqrt(c.R), math.Sqrt(c.G), math.Sqrt(c.B)}
}

// Average returns the average of a slice of colors.
func Average(colors []Color) Color {
	var total Color
	for _, c := range colors {
		total.R += c.R
		total.G += c.G
		total.B += c.B
	}
	n := float64(len(colors))
	return Color{total.R / n, total.G / n, total.B / n}
}

// ToRGBA converts the color to an 8-bit image/color.RGBA, mapping 0 to 0
// and any value >=1 to 255, via clamp(256*c, 0, 255).
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: 255,
	}
}

func to8(v float64) uint8 {
	return uint8(clamp(v*256, 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
