package object

import (
	"math"

	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/transform"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// boxPrimitive is an axis-aligned box from the object-space origin to Size.
type boxPrimitive struct {
	Size vecmath.Vector
}

// NewBox creates an axis-aligned box from the origin to size, placed
// by t and shaded by m.
func NewBox(t *transform.Transform, m core.Material, size vecmath.Vector) *Base {
	return New(t, m, boxPrimitive{Size: size})
}

// IntersectLocal performs the slab test against [0, Size].
func (b boxPrimitive) IntersectLocal(ray core.Ray) (float64, bool) {
	t1 := vecmath.Zero.Sub(ray.Origin).Mul(ray.InverseDirection)
	t2 := b.Size.Sub(ray.Origin).Mul(ray.InverseDirection)

	lo := vecmath.Min(t1, t2)
	hi := vecmath.Max(t1, t2)

	tMin := math.Max(lo.X, math.Max(lo.Y, lo.Z))
	tMax := math.Min(hi.X, math.Min(hi.Y, hi.Z))

	if tMax < 0 || tMin > tMax {
		return 0, false
	}
	if tMin > vecmath.Epsilon {
		return tMin, true
	}
	if tMax > vecmath.Epsilon {
		return tMax, true
	}
	return 0, false
}

const boxFaceEpsilon = 1e-6

// SurfaceLocal identifies which of the six faces was struck by
// comparing the hit position to 0 and Size on each axis, then looks
// up the uv in a cross-shaped 4x3 unwrap (front, left, top, bottom,
// right, back), matching the source engine's BoxObject::uvAt table.
func (b boxPrimitive) SurfaceLocal(p vecmath.Vector) (normal vecmath.Vector, u, v float64) {
	const stepU = 1.0 / 4
	const stepV = 1.0 / 3

	dLower := p.Div(b.Size)
	dUpper := b.Size.Sub(p).Div(b.Size)

	switch {
	case math.Abs(p.Z) < boxFaceEpsilon: // front
		normal = vecmath.New(0, 0, -1)
		u, v = stepU*(1+dLower.X), stepV*(1+dLower.Y)
	case math.Abs(p.X) < boxFaceEpsilon: // left
		normal = vecmath.New(-1, 0, 0)
		u, v = stepU*(0+dUpper.Z), stepV*(1+dLower.Y)
	case math.Abs(p.Y) < boxFaceEpsilon: // top
		normal = vecmath.New(0, -1, 0)
		u, v = stepU*(1+dUpper.Z), stepV*(0+dLower.X)
	case math.Abs(p.Y-b.Size.Y) < boxFaceEpsilon: // bottom
		normal = vecmath.New(0, 1, 0)
		u, v = stepU*(1+dLower.X), stepV*(2+dLower.Z)
	case math.Abs(p.X-b.Size.X) < boxFaceEpsilon: // right
		normal = vecmath.New(1, 0, 0)
		u, v = stepU*(2+dLower.Z), stepV*(1+dLower.Y)
	default: // back
		normal = vecmath.New(0, 0, 1)
		u, v = stepU*(3+dUpper.X), stepV*(1+dLower.Y)
	}
	return normal, u, v
}

// LocalBounds returns [0, Size].
func (b boxPrimitive) LocalBounds() core.BoundingBox {
	return core.NewBoundingBox(vecmath.Zero, b.Size)
}
