// Package transform implements the affine placement of objects in
// world space: a position, Euler rotation and non-zero scale, with
// cached forward (world->object) and reverse (object->world) matrices.
package transform

import (
	"fmt"

	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/rterr"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Transform holds a position/rotation/scale triple and the matrices
// derived from it.
type Transform struct {
	Position vecmath.Vector
	Rotation vecmath.Vector // Euler angles, radians
	Scale    vecmath.Vector

	forward vecmath.Matrix4 // world -> object
	reverse vecmath.Matrix4 // object -> world
}

// Identity is the transform that leaves world space unchanged.
func Identity() *Transform {
	t, _ := New(vecmath.Vector{}, vecmath.Vector{}, vecmath.New(1, 1, 1))
	return t
}

// New builds a Transform, rejecting a scale with any zero axis.
//
// forward = R(-rotation) . S(1/scale) . T(-position): translate the
// world point into object-local space, undo scale, then undo
// rotation. reverse is its algebraic inverse, built directly rather
// than by general matrix inversion: T(position) . S(scale) . R(-rotation)^-1.
// Euler rotations about different axes don't commute, so the inverse
// of R(-rotation) is R(-rotation)'s transpose, not R(rotation) built
// from the same combined-angle formula with the signs flipped back.
func New(position, rotation, scale vecmath.Vector) (*Transform, error) {
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return nil, fmt.Errorf("transform: scale %v has a zero axis: %w", scale, rterr.ErrInvalidArgument)
	}

	inverseScale := vecmath.New(1/scale.X, 1/scale.Y, 1/scale.Z)

	forward := vecmath.NewRotationEuler(rotation.Negate()).
		Multiply(vecmath.NewScale(inverseScale)).
		Multiply(vecmath.NewTranslation(position.Negate()))

	reverse := vecmath.NewTranslation(position).
		Multiply(vecmath.NewScale(scale)).
		Multiply(vecmath.NewRotationEuler(rotation.Negate()).Transpose())

	return &Transform{
		Position: position,
		Rotation: rotation,
		Scale:    scale,
		forward:  forward,
		reverse:  reverse,
	}, nil
}

// TransformPosition maps a world-space point into object space.
func (t *Transform) TransformPosition(v vecmath.Vector) vecmath.Vector {
	return t.forward.TransformPoint(v)
}

// TransformDirection maps a world-space direction into object space
// and renormalizes (scale may change length).
func (t *Transform) TransformDirection(v vecmath.Vector) vecmath.Vector {
	return t.forward.TransformDirection(v).Unit()
}

// TransformRay maps a world-space ray into object space.
func (t *Transform) TransformRay(ray core.Ray) core.Ray {
	return core.NewRay(t.TransformPosition(ray.Origin), t.TransformDirection(ray.Direction))
}

// UntransformPosition maps an object-space point back into world space.
func (t *Transform) UntransformPosition(v vecmath.Vector) vecmath.Vector {
	return t.reverse.TransformPoint(v)
}

// UntransformDirection maps an object-space direction back into world
// space and renormalizes.
func (t *Transform) UntransformDirection(v vecmath.Vector) vecmath.Vector {
	return t.reverse.TransformDirection(v).Unit()
}

// UntransformNormal maps an object-space surface normal back into
// world space. Normals do not transform like positions or directions
// under non-uniform scale: they require the inverse-transpose of the
// object->world matrix, which is forward's transpose here since
// forward already is the inverse of the object->world placement.
func (t *Transform) UntransformNormal(n vecmath.Vector) vecmath.Vector {
	return t.forward.Transpose().TransformDirection(n).Unit()
}

// UntransformBoundingBox maps an object-space axis-aligned box back
// into world space by transforming all eight corners and rebuilding
// the bound; this stays correct under rotation, unlike transforming
// only the two extreme corners.
func (t *Transform) UntransformBoundingBox(b core.BoundingBox) core.BoundingBox {
	if !b.Set {
		return b
	}
	var out core.BoundingBox
	for i := 0; i < 8; i++ {
		corner := vecmath.New(
			pick(i&1 != 0, b.Lower.X, b.Upper.X),
			pick(i&2 != 0, b.Lower.Y, b.Upper.Y),
			pick(i&4 != 0, b.Lower.Z, b.Upper.Z),
		)
		out = out.Include(t.UntransformPosition(corner))
	}
	return out
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return b
	}
	return a
}
