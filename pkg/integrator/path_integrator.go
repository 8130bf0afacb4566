// Package integrator implements the recursive light-transport
// algorithm: given a scene and a ray, walk the bounce chain and
// return the accumulated radiance. It also owns per-pixel
// multisampling, since both are defined by the same recursion depth
// and sample-jitter contract.
package integrator

import (
	"math/rand"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/object"
	"github.com/kestrelrender/raytracer/pkg/scene"
)

// PathIntegrator walks a ray through a scene: closest-hit, emission,
// and (unless the scene is in unlit-preview mode) recursive scatter.
// It carries no state of its own; all randomness comes from the
// caller's per-worker PRNG so two workers never share mutable state.
type PathIntegrator struct{}

// New creates a PathIntegrator. It has no configuration: depth and
// sample count live on the Scene, since they are scene-level
// quality knobs, not integrator behavior.
func New() *PathIntegrator {
	return &PathIntegrator{}
}

// Trace returns the radiance arriving along ray, recursing up to
// depthRemaining bounces. It never mutates s or ray.
func (pi *PathIntegrator) Trace(s *scene.Scene, ray core.Ray, depthRemaining int, rng *rand.Rand) color.Color {
	if depthRemaining <= 0 {
		return color.Black
	}

	hitObj, distance, ok := s.BVH.Intersect(ray)
	if !ok {
		u, v := object.EquirectangularUV(ray.Direction)
		return s.Background.Sample(u, v)
	}

	hit := hitObj.SurfaceAt(ray, distance)
	mat := hitObj.Mat()

	emit := mat.Emit(ray.Direction, hit.Position, hit.Normal, hit.U, hit.V)

	if !s.Config.LightingEnabled {
		if preview, ok := mat.(core.PreviewSampler); ok {
			return preview.PreviewColor(hit.U, hit.V)
		}
		return emit
	}

	scattered, ok := mat.Scatter(ray.Direction, hit.Position, hit.Normal, hit.U, hit.V, rng)
	if !ok {
		return emit
	}

	incoming := pi.Trace(s, scattered.Scattered, depthRemaining-1, rng)
	return emit.Add(scattered.Attenuation.Mul(incoming))
}

// RenderPixel returns the averaged, clamped color for the pixel at
// column x, row y (row 0 at the top) of a width x height image,
// spending s.Config.SamplesPerPixel jittered primary rays.
func (pi *PathIntegrator) RenderPixel(s *scene.Scene, x, y, width, height int, rng *rand.Rand) color.Color {
	samples := s.Config.SamplesPerPixel
	sum := color.Black
	for i := 0; i < samples; i++ {
		jitterS := rng.Float64()
		jitterT := rng.Float64()
		sCoord := (float64(x) + jitterS) / float64(width)
		tCoord := 1 - (float64(y)+jitterT)/float64(height)

		ray := s.Camera.Ray(sCoord, tCoord, rng)
		sum = sum.Add(pi.Trace(s, ray, s.Config.MaxRayDepth, rng))
	}
	return sum.Scale(1 / float64(samples)).Clamp()
}
