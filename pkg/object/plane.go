package object

import (
	"math"

	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/transform"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// planePrimitive is the infinite XZ plane at y=0 with normal +Y.
type planePrimitive struct {
	UVScale float64 // tiles-per-world-unit for (x, z) -> (u, v)
}

// NewPlane creates the infinite ground plane placed by t and shaded
// by m. uvScale controls how many texture tiles fit per world unit.
func NewPlane(t *transform.Transform, m core.Material, uvScale float64) *Base {
	if uvScale == 0 {
		uvScale = 1
	}
	return New(t, m, planePrimitive{UVScale: uvScale})
}

// IntersectLocal solves o.y + t*d.y = 0.
func (p planePrimitive) IntersectLocal(ray core.Ray) (float64, bool) {
	if math.Abs(ray.Direction.Y) < vecmath.Epsilon {
		return 0, false
	}
	t := -ray.Origin.Y / ray.Direction.Y
	if t <= vecmath.Epsilon {
		return 0, false
	}
	return t, true
}

// SurfaceLocal returns the fixed +Y normal and a tiled (x, z) uv.
func (p planePrimitive) SurfaceLocal(point vecmath.Vector) (normal vecmath.Vector, u, v float64) {
	normal = vecmath.New(0, 1, 0)
	u = fractional(point.X * p.UVScale)
	v = fractional(point.Z * p.UVScale)
	return normal, u, v
}

// LocalBounds returns an infinitely thin slab, since the plane extends
// without bound in X and Z.
func (p planePrimitive) LocalBounds() core.BoundingBox {
	const inf = math.MaxFloat64 / 4
	return core.NewBoundingBox(vecmath.New(-inf, -vecmath.Epsilon, -inf), vecmath.New(inf, vecmath.Epsilon, inf))
}

func fractional(v float64) float64 {
	f := v - math.Floor(v)
	return f
}
