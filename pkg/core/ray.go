// Package core holds the primitives (Ray, BoundingBox) and the small
// closed set of interfaces (Object, Material, Texture) that every
// polymorphic variant in the engine implements.
package core

import "github.com/kestrelrender/raytracer/pkg/vecmath"

// Ray is an immutable origin + unit direction, with a precomputed
// componentwise inverse direction for bounding-box slab tests.
type Ray struct {
	Origin           vecmath.Vector
	Direction        vecmath.Vector
	InverseDirection vecmath.Vector
}

// NewRay normalizes direction and precomputes InverseDirection. Zero
// components of direction produce +/-Inf inverse components, which
// the slab test in BoundingBox.Intersect tolerates by construction.
func NewRay(origin, direction vecmath.Vector) Ray {
	unit := direction.Unit()
	return Ray{
		Origin:    origin,
		Direction: unit,
		InverseDirection: vecmath.New(
			1/unit.X,
			1/unit.Y,
			1/unit.Z,
		),
	}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) vecmath.Vector {
	return r.Origin.Add(r.Direction.Scale(t))
}
