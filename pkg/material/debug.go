package material

import (
	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// DebugMode selects what a Debug material visualizes.
type DebugMode int

const (
	// DebugNormal visualizes the surface normal as a color.
	DebugNormal DebugMode = iota
	// DebugUV visualizes the uv parameterization as a color.
	DebugUV
)

// Debug is a diagnostic material used to visualize surface normals or
// uv coordinates directly as color; it never scatters.
type Debug struct {
	noScatter
	Mode DebugMode
}

// NewDebug creates a Debug material in the given mode.
func NewDebug(mode DebugMode) *Debug {
	return &Debug{Mode: mode}
}

// Emit implements core.Material.
func (d *Debug) Emit(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64) color.Color {
	switch d.Mode {
	case DebugUV:
		return color.New(u, v, 0)
	default:
		return color.New(normal.X, normal.Y, normal.Z)
	}
}
