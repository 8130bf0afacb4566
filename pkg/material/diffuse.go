package material

import (
	"math/rand"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Diffuse is a perfectly Lambertian material: it scatters uniformly
// about a cosine-weighted approximation (normal + random unit vector)
// and attenuates by its albedo texture.
type Diffuse struct {
	noEmission
	Albedo core.Texture
}

// NewDiffuse creates a Diffuse material sampling color from albedo.
func NewDiffuse(albedo core.Texture) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// PreviewColor implements core.PreviewSampler.
func (d *Diffuse) PreviewColor(u, v float64) color.Color {
	return d.Albedo.Sample(u, v)
}

// Scatter implements core.Material.
func (d *Diffuse) Scatter(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64, rng *rand.Rand) (core.ScatterResult, bool) {
	direction := normal.Add(vecmath.RandomUnitVector(rng))
	if direction.NearZero() {
		direction = normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(position, direction),
		Attenuation: d.Albedo.Sample(u, v),
	}, true
}
