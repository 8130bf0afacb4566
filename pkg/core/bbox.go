package core

import (
	"math"

	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// NoHit is the sentinel distance returned for a ray that does not
// intersect something.
const NoHit = math.MaxFloat64

// BoundingBox is an axis-aligned box. The zero value is "unset" and
// grows to bound whatever is first included in it.
type BoundingBox struct {
	Lower, Upper vecmath.Vector
	Set          bool
}

// EmptyBoundingBox returns an unset bounding box.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{}
}

// NewBoundingBox returns a bounding box with the given corners.
func NewBoundingBox(lower, upper vecmath.Vector) BoundingBox {
	return BoundingBox{Lower: lower, Upper: upper, Set: true}
}

// Include grows the box so it also bounds p.
func (b BoundingBox) Include(p vecmath.Vector) BoundingBox {
	if !b.Set {
		return BoundingBox{Lower: p, Upper: p, Set: true}
	}
	return BoundingBox{
		Lower: vecmath.Min(b.Lower, p),
		Upper: vecmath.Max(b.Upper, p),
		Set:   true,
	}
}

// Union returns a bounding box that bounds both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if !b.Set {
		return o
	}
	if !o.Set {
		return b
	}
	return BoundingBox{
		Lower: vecmath.Min(b.Lower, o.Lower),
		Upper: vecmath.Max(b.Upper, o.Upper),
		Set:   true,
	}
}

// Contains reports whether p lies within the box on every axis.
func (b BoundingBox) Contains(p vecmath.Vector) bool {
	if !b.Set {
		return false
	}
	return p.X >= b.Lower.X && p.X <= b.Upper.X &&
		p.Y >= b.Lower.Y && p.Y <= b.Upper.Y &&
		p.Z >= b.Lower.Z && p.Z <= b.Upper.Z
}

// Intersect performs the slab test and returns the entry distance, or
// NoHit if the ray misses the box (or the box is unset, or the box
// lies entirely behind the ray origin).
func (b BoundingBox) Intersect(ray Ray) float64 {
	if !b.Set {
		return NoHit
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		invDir := ray.InverseDirection.Component(axis)
		lower := b.Lower.Component(axis)
		upper := b.Upper.Component(axis)

		t1 := (lower - origin) * invDir
		t2 := (upper - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	if tMax < 0 || tMin > tMax {
		return NoHit
	}
	return tMin
}
