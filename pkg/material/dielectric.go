package material

import (
	"math/rand"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Dielectric is a transparent material like glass or water: it always
// refracts according to Snell's law (air n1=1 outside, RefractionIndex
// inside) and absorbs on total internal reflection.
type Dielectric struct {
	noEmission
	RefractionIndex float64
}

// NewDielectric creates a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements core.Material.
func (d *Dielectric) Scatter(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64, rng *rand.Rand) (core.ScatterResult, bool) {
	n1, n2 := 1.0, d.RefractionIndex

	// FrontFace: incident opposes the outward normal, entering the medium.
	frontFace := incident.Dot(normal) < 0
	effectiveNormal := normal
	if !frontFace {
		effectiveNormal = normal.Negate()
		n1, n2 = n2, n1
	}

	refracted, ok := vecmath.Refract(incident, effectiveNormal, n1/n2)
	if !ok {
		return core.ScatterResult{}, false // total internal reflection: absorbed
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(position, refracted),
		Attenuation: color.White,
	}, true
}
