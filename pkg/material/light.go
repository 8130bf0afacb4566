package material

import (
	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Light is a pure emitter: it returns its emission texture sampled at
// the hit uv and never scatters.
type Light struct {
	noScatter
	Emission core.Texture
}

// NewLight creates a Light material emitting the given texture.
func NewLight(emission core.Texture) *Light {
	return &Light{Emission: emission}
}

// Emit implements core.Material.
func (l *Light) Emit(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64) color.Color {
	return l.Emission.Sample(u, v)
}

// PreviewColor implements core.PreviewSampler.
func (l *Light) PreviewColor(u, v float64) color.Color {
	return l.Emission.Sample(u, v)
}
