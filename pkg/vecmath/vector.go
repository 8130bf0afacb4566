// Package vecmath implements the double-precision vector and matrix
// primitives shared by every downstream package: geometry, transforms,
// shading and the integrator all build on Vector and Matrix4.
package vecmath

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used throughout the engine to cull
// self-intersections and reject near-parallel/near-degenerate cases.
const Epsilon = 1e-10

// Vector is a 3-component double-precision vector. It is used both as
// a point and as a direction; direction vectors intended for shading
// are unit-length by the time they reach a Material or Object.
type Vector struct {
	X, Y, Z float64
}

// Zero is the zero vector.
var Zero = Vector{}

// New creates a Vector from its three components.
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X, v.Y, v.Z)
}

// Add returns the componentwise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the componentwise difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the componentwise product of v and o.
func (v Vector) Mul(o Vector) Vector {
	return Vector{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div returns the componentwise quotient of v and o.
func (v Vector) Div(o Vector) Vector {
	return Vector{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Scale returns v scaled by a constant factor.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared Euclidean length of v, avoiding a
// sqrt where only comparisons are needed.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unit returns v normalized to length 1. The zero vector normalizes
// to itself; callers on the hot path are expected not to pass it.
func (v Vector) Unit() Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1.0 / length)
}

// NearZero reports whether every component of v is within Epsilon of 0.
func (v Vector) NearZero() bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon && math.Abs(v.Z) < Epsilon
}

// Component indexes v by axis, 0=X, 1=Y, 2=Z.
func (v Vector) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Reflect reflects d (pointing toward the surface) about normal n.
func Reflect(d, n Vector) Vector {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// Refract bends incident unit vector d across a surface with unit
// normal n (pointing against d) using Snell's law with ratio
// niOverNt = n1/n2. ok is false on total internal reflection.
func Refract(d, n Vector, niOverNt float64) (refracted Vector, ok bool) {
	cosTheta := math.Min(d.Negate().Dot(n), 1.0)
	sinTheta2 := 1.0 - cosTheta*cosTheta
	sin2Out := niOverNt * niOverNt * sinTheta2
	if sin2Out > 1.0 {
		return Vector{}, false
	}
	perp := d.Add(n.Scale(cosTheta)).Scale(niOverNt)
	parallel := n.Scale(-math.Sqrt(math.Abs(1.0 - perp.LengthSquared())))
	return perp.Add(parallel), true
}

// Min returns the componentwise minimum of v and o.
func Min(v, o Vector) Vector {
	return Vector{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func Max(v, o Vector) Vector {
	return Vector{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}
