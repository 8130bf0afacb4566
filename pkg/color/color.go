// Package color implements the linear RGB triple used throughout
// shading and compositing, plus its packed 8-bit RGBA encoding for
// the pixel buffer.
package color

import "math"

// Color is a linear RGB triple. During compositing, components are
// unbounded in [0, inf); Pack clamps to [0, 1] on output.
type Color struct {
	R, G, B float64
}

// Black is the zero color.
var Black = Color{}

// White is full-intensity white.
var White = Color{R: 1, G: 1, B: 1}

// New creates a Color from its three channels.
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the componentwise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul returns the componentwise (Hadamard) product of c and o, used
// to apply attenuation along a light path.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns c scaled by a constant factor.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Lerp linearly interpolates between c and o by t in [0, 1].
func Lerp(c, o Color, t float64) Color {
	return c.Scale(1 - t).Add(o.Scale(t))
}

// Clamp restricts each channel to [0, 1].
func (c Color) Clamp() Color {
	clamp := func(v float64) float64 {
		return math.Max(0, math.Min(1, v))
	}
	return Color{clamp(c.R), clamp(c.G), clamp(c.B)}
}

// Pack clamps c to [0, 1] and encodes it as a 32-bit RGBA pixel with
// bytes R, G, B, A at offsets 0, 1, 2, 3 (little-endian 0xAABBGGRR),
// alpha fixed at 0xFF.
func (c Color) Pack() uint32 {
	clamped := c.Clamp()
	r := uint32(math.Round(clamped.R*255)) & 0xFF
	g := uint32(math.Round(clamped.G*255)) & 0xFF
	b := uint32(math.Round(clamped.B*255)) & 0xFF
	const a = 0xFF
	return r | (g << 8) | (b << 16) | (a << 24)
}

// Unpack decodes a packed RGBA pixel back into a Color, discarding alpha.
func Unpack(rgba uint32) Color {
	r := float64(rgba&0xFF) / 255
	g := float64((rgba>>8)&0xFF) / 255
	b := float64((rgba>>16)&0xFF) / 255
	return Color{r, g, b}
}
