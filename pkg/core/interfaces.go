package core

import (
	"math/rand"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Texture samples a color at a surface parameterization (u, v) in
// [0, 1]^2.
type Texture interface {
	Sample(u, v float64) color.Color
}

// SurfaceHit carries the world-space surface properties at a ray/object
// intersection: the hit point, the shading normal, an orthonormal
// tangent basis (tangent, bitangent, normal — reserved for normal
// mapping, not otherwise consumed by this engine), and the uv
// parameterization for texture lookup.
type SurfaceHit struct {
	Position  vecmath.Vector
	Normal    vecmath.Vector
	Tangent   vecmath.Vector
	Bitangent vecmath.Vector
	U, V      float64
}

// ScatterResult is what a Material returns from Scatter: the ray
// continuing the light path and the multiplicative attenuation to
// apply to whatever that ray returns.
type ScatterResult struct {
	Scattered   Ray
	Attenuation color.Color
}

// Material is the closed capability set every shading variant
// implements: self-emission and an optional scattered ray.
type Material interface {
	// Emit returns this material's self-emission back along incident,
	// the direction of the arriving ray (pointing toward the surface,
	// i.e. ray.Direction).
	Emit(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64) color.Color

	// Scatter returns the outgoing ray and its attenuation, or ok=false
	// if the incident ray is absorbed. rng is the calling worker's
	// per-worker PRNG (see pkg/renderer); materials never maintain
	// their own random state so that the same worker/seed combination
	// renders bit-identically.
	Scatter(incident vecmath.Vector, position, normal vecmath.Vector, u, v float64, rng *rand.Rand) (result ScatterResult, ok bool)
}

// PreviewSampler is an optional capability: materials with a
// representative surface color implement it so the integrator's
// unlit preview mode has something to show besides black. Dielectric
// and Debug do not implement it and fall back to their emission.
type PreviewSampler interface {
	PreviewColor(u, v float64) color.Color
}

// Object is the closed capability set every geometric primitive
// implements: world-space intersection and the surface properties at
// a previously found hit.
type Object interface {
	// Intersect transforms ray into object space, tests the
	// variant-specific geometry, and returns the world-space distance
	// to the closest surviving hit (distance > Epsilon), or ok=false.
	Intersect(ray Ray) (distance float64, ok bool)

	// SurfaceAt returns the world-space surface properties of the hit
	// previously reported by Intersect at the given distance.
	SurfaceAt(ray Ray, distance float64) SurfaceHit

	// Mat returns the material attached to this object.
	Mat() Material

	// BoundingBox returns a world-space axis-aligned bound, used by
	// the scene's BVH.
	BoundingBox() BoundingBox
}
