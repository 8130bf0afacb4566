// Package material implements the five shading variants the spec
// closes over: Diffuse, Reflective, Dielectric, Light and Debug. Each
// implements core.Material (Emit + Scatter) against a core.Texture for
// its color input.
package material

import (
	"math/rand"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// noEmission is embedded by every non-emissive material so Emit
// defaults to black without repeating the same method everywhere.
type noEmission struct{}

func (noEmission) Emit(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64) color.Color {
	return color.Black
}

// noScatter is embedded by materials that never produce a scattered
// ray (pure emitters, debug probes).
type noScatter struct{}

func (noScatter) Scatter(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64, rng *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
