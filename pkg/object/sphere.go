package object

import (
	"math"

	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/transform"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// spherePrimitive is a unit sphere centered at the object-space origin.
type spherePrimitive struct{}

// NewSphere creates a unit sphere placed by t and shaded by m.
func NewSphere(t *transform.Transform, m core.Material) *Base {
	return New(t, m, spherePrimitive{})
}

// IntersectLocal solves |o + t*d|^2 = 1 for the object-space ray.
func (spherePrimitive) IntersectLocal(ray core.Ray) (float64, bool) {
	o := ray.Origin
	d := ray.Direction

	b := 2 * o.Dot(d)
	c := o.LengthSquared() - 1
	discriminant := b*b - 4*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t0 := (-b - sqrtDisc) / 2
	if t0 > vecmath.Epsilon {
		return t0, true
	}
	t1 := (-b + sqrtDisc) / 2
	if t1 > vecmath.Epsilon {
		return t1, true
	}
	return 0, false
}

// SurfaceLocal returns the radial normal and the equirectangular uv
// of a point on the unit sphere.
func (spherePrimitive) SurfaceLocal(p vecmath.Vector) (normal vecmath.Vector, u, v float64) {
	normal = p.Unit()
	u = 0.5 + math.Atan2(normal.Z, normal.X)/(2*math.Pi)
	v = 0.5 + math.Asin(clamp(normal.Y, -1, 1))/math.Pi
	return normal, u, v
}

// LocalBounds returns the unit sphere's axis-aligned bound.
func (spherePrimitive) LocalBounds() core.BoundingBox {
	return core.NewBoundingBox(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EquirectangularUV maps a unit direction to the same (u, v)
// parameterization as a sphere's surface, used by the integrator to
// sample the background texture by ray direction.
func EquirectangularUV(direction vecmath.Vector) (u, v float64) {
	n := direction.Unit()
	u = 0.5 + math.Atan2(n.Z, n.X)/(2*math.Pi)
	v = 0.5 + math.Asin(clamp(n.Y, -1, 1))/math.Pi
	return u, v
}
