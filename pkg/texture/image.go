package texture

import (
	"fmt"
	"math"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/rterr"
)

// Interpolation selects how Image samples between texels.
type Interpolation int

const (
	// NearestNeighbor truncates to the closest texel.
	NearestNeighbor Interpolation = iota
	// Bilinear blends the four neighbouring texels, wrapping at edges.
	Bilinear
)

// Image samples color from a decoded RGBA8 pixel buffer. The decoder
// owns byte-level format handling; Image only consumes an already
// unpacked row-major buffer.
type Image struct {
	Width, Height int
	Pixels        []uint32 // row-major RGBA8, row 0 at the top
	Interpolation Interpolation
	Multiplier    float64
}

// NewImage validates dimensions and pixel count and constructs an
// Image texture.
func NewImage(width, height int, pixels []uint32, interpolation Interpolation, multiplier float64) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture: invalid image dimensions %dx%d: %w", width, height, rterr.ErrInvalidArgument)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("texture: pixel buffer length %d does not match %dx%d: %w", len(pixels), width, height, rterr.ErrInvalidArgument)
	}
	return &Image{
		Width:         width,
		Height:        height,
		Pixels:        pixels,
		Interpolation: interpolation,
		Multiplier:    multiplier,
	}, nil
}

func (img *Image) at(x, y int) color.Color {
	x = ((x % img.Width) + img.Width) % img.Width
	y = ((y % img.Height) + img.Height) % img.Height
	return color.Unpack(img.Pixels[y*img.Width+x])
}

// Sample looks up (u, v) in [0,1]^2; v is flipped so row 0 is at the
// top of the image. The result is scaled by Multiplier.
func (img *Image) Sample(u, v float64) color.Color {
	var c color.Color
	switch img.Interpolation {
	case Bilinear:
		c = img.sampleBilinear(u, v)
	default:
		c = img.sampleNearest(u, v)
	}
	return c.Scale(img.Multiplier)
}

func (img *Image) sampleNearest(u, v float64) color.Color {
	x := int(u * float64(img.Width))
	y := int((1 - v) * float64(img.Height))
	return img.at(x, y)
}

func (img *Image) sampleBilinear(u, v float64) color.Color {
	x := float64(img.Width-1) * u
	y := float64(img.Height-1) * (1 - v)

	p := int(math.Floor(x))
	q := int(math.Floor(y))
	dp := x - float64(p)
	dq := y - float64(q)

	c00 := img.at(p, q)
	c10 := img.at(p+1, q)
	c01 := img.at(p, q+1)
	c11 := img.at(p+1, q+1)

	top := color.Lerp(c00, c10, dp)
	bottom := color.Lerp(c01, c11, dp)
	return color.Lerp(top, bottom, dq)
}
