package material

import (
	"math/rand"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Reflective is a specular material with adjustable polish: at
// polish=1 it is a perfect mirror, lower values blur the reflection by
// perturbing it with a scaled random unit vector.
type Reflective struct {
	noEmission
	Albedo core.Texture
	Polish float64 // in [0, 1]; 1 = perfect mirror
}

// NewReflective creates a Reflective material, clamping polish to [0, 1].
func NewReflective(albedo core.Texture, polish float64) *Reflective {
	if polish > 1 {
		polish = 1
	}
	if polish < 0 {
		polish = 0
	}
	return &Reflective{Albedo: albedo, Polish: polish}
}

// PreviewColor implements core.PreviewSampler.
func (r *Reflective) PreviewColor(u, v float64) color.Color {
	return r.Albedo.Sample(u, v)
}

// Scatter implements core.Material.
func (r *Reflective) Scatter(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64, rng *rand.Rand) (core.ScatterResult, bool) {
	reflected := vecmath.Reflect(incident, normal)

	scuff := 1 - r.Polish
	if scuff > 0 {
		reflected = reflected.Add(vecmath.RandomUnitVector(rng).Scale(scuff))
	}
	reflected = reflected.Unit()

	if reflected.Dot(normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(position, reflected),
		Attenuation: r.Albedo.Sample(u, v),
	}, true
}
