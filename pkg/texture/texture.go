// Package texture implements the Solid, Checkerboard and Image
// texture variants sampled by materials during shading.
package texture

import (
	"math"

	"github.com/kestrelrender/raytracer/pkg/color"
)

// Solid is a constant-color texture.
type Solid struct {
	Color color.Color
}

// NewSolid creates a Solid texture.
func NewSolid(c color.Color) *Solid {
	return &Solid{Color: c}
}

// Sample returns the constant color regardless of (u, v).
func (s *Solid) Sample(u, v float64) color.Color {
	return s.Color
}

// Checkerboard alternates between two colors in an N x N tile grid
// over the unit square.
type Checkerboard struct {
	Color1, Color2 color.Color
	RowsCols       int
}

// NewCheckerboard creates a Checkerboard texture with rowsCols tiles
// per axis.
func NewCheckerboard(c1, c2 color.Color, rowsCols int) *Checkerboard {
	if rowsCols < 1 {
		rowsCols = 1
	}
	return &Checkerboard{Color1: c1, Color2: c2, RowsCols: rowsCols}
}

// Sample picks a color based on the parity of the tile index.
func (c *Checkerboard) Sample(u, v float64) color.Color {
	n := c.RowsCols
	col := int(math.Floor(u * float64(n)))
	row := int(math.Floor(v * float64(n)))
	if (col^row)&1 == 0 {
		return c.Color1
	}
	return c.Color2
}
