// Package object implements the Sphere, Plane, Box and Mesh object
// variants: each owns a Transform and a Material and satisfies
// core.Object. Sphere, Plane and Box delegate the geometry-specific
// math to a Primitive; MeshObject implements core.Object directly.
package object

import (
	"math"

	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/transform"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Primitive is the variant-specific geometry implemented in object
// space: unit sphere centered at the origin, infinite XZ plane, or axis
// aligned box from the origin to Size.
type Primitive interface {
	// IntersectLocal tests an object-space ray (unit direction) and
	// returns the nearest local-space parametric distance beyond
	// vecmath.Epsilon, or ok=false.
	IntersectLocal(ray core.Ray) (t float64, ok bool)

	// SurfaceLocal returns the object-space normal and uv at a
	// previously found local-space hit point.
	SurfaceLocal(localPoint vecmath.Vector) (normal vecmath.Vector, u, v float64)

	// LocalBounds returns the object-space bounding box.
	LocalBounds() core.BoundingBox
}

// Base adapts a Primitive plus a Transform and Material into a full
// core.Object, handling the world<->object space plumbing that every
// variant shares.
type Base struct {
	Transform *transform.Transform
	Material  core.Material
	Primitive Primitive
}

// New wraps a Primitive with its placement and shading.
func New(t *transform.Transform, m core.Material, p Primitive) *Base {
	return &Base{Transform: t, Material: m, Primitive: p}
}

// Intersect implements core.Object. It transforms ray into object
// space, tests the primitive there, then re-measures the resulting
// hit point back in world space so the returned distance is correct
// even when Transform.Scale is non-uniform (see SPEC_FULL.md's
// resolution of the object-space-distance open question).
func (b *Base) Intersect(ray core.Ray) (float64, bool) {
	localRay := b.Transform.TransformRay(ray)

	localT, ok := b.Primitive.IntersectLocal(localRay)
	if !ok || localT <= vecmath.Epsilon {
		return 0, false
	}

	localHit := localRay.At(localT)
	worldHit := b.Transform.UntransformPosition(localHit)
	distance := worldHit.Sub(ray.Origin).Length()
	if distance <= vecmath.Epsilon || math.IsNaN(distance) {
		return 0, false
	}
	return distance, true
}

// SurfaceAt implements core.Object.
func (b *Base) SurfaceAt(ray core.Ray, distance float64) core.SurfaceHit {
	worldPosition := ray.At(distance)
	localPosition := b.Transform.TransformPosition(worldPosition)

	localNormal, u, v := b.Primitive.SurfaceLocal(localPosition)
	worldNormal := b.Transform.UntransformNormal(localNormal)

	tangent, bitangent := orthonormalBasis(worldNormal)

	return core.SurfaceHit{
		Position:  worldPosition,
		Normal:    worldNormal,
		Tangent:   tangent,
		Bitangent: bitangent,
		U:         u,
		V:         v,
	}
}

// Mat implements core.Object.
func (b *Base) Mat() core.Material {
	return b.Material
}

// BoundingBox implements core.Object.
func (b *Base) BoundingBox() core.BoundingBox {
	return b.Transform.UntransformBoundingBox(b.Primitive.LocalBounds())
}

// orthonormalBasis builds an arbitrary tangent/bitangent pair
// orthogonal to n. The basis is reserved for normal mapping (see
// spec.md's GLOSSARY); no component of this engine reads it back.
func orthonormalBasis(n vecmath.Vector) (tangent, bitangent vecmath.Vector) {
	up := vecmath.New(0, 1, 0)
	if math.Abs(n.Dot(up)) > 0.99 {
		up = vecmath.New(1, 0, 0)
	}
	tangent = up.Cross(n).Unit()
	bitangent = n.Cross(tangent)
	return tangent, bitangent
}
