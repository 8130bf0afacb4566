// Package scene holds the declarative Scene value handed to the
// renderer: a background, a camera, the object list and the
// render-quality knobs. A Scene is immutable once constructed; the
// renderer never mutates it mid-render.
package scene

import (
	"fmt"

	"github.com/kestrelrender/raytracer/pkg/camera"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/rterr"
)

// Config holds the render-quality knobs that are orthogonal to scene
// geometry: how many bounces and samples to spend, and whether
// lighting is evaluated at all.
type Config struct {
	MaxRayDepth     int
	SamplesPerPixel int
	LightingEnabled bool
}

// DefaultConfig returns a production-quality config: deep enough
// bounces for glass and indirect light, and a sample count that
// converges to low noise in a batch render.
func DefaultConfig() Config {
	return Config{
		MaxRayDepth:     50,
		SamplesPerPixel: 100,
		LightingEnabled: true,
	}
}

// MergeConfig overlays the non-zero MaxRayDepth and SamplesPerPixel of
// override onto base, so a scene builder's caller can tweak one count
// without restating the other. LightingEnabled is always taken from
// override, including when it is false.
func MergeConfig(base, override Config) Config {
	merged := base
	if override.MaxRayDepth != 0 {
		merged.MaxRayDepth = override.MaxRayDepth
	}
	if override.SamplesPerPixel != 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	merged.LightingEnabled = override.LightingEnabled
	return merged
}

// Scene is the render-ready description: background, camera, object
// list and quality config. Constructed by a scene builder and handed
// wholesale to the renderer; never mutated during a render. The BVH
// is built once here, up front, since the object list is immutable
// for the Scene's lifetime.
type Scene struct {
	Background core.Texture
	Camera     *camera.Camera
	Objects    []core.Object
	Config     Config
	BVH        *core.BVH
}

// New validates and constructs a Scene. At least one camera and a
// non-nil background are required; zero objects is legal (an empty
// scene renders pure background).
func New(background core.Texture, cam *camera.Camera, objects []core.Object, cfg Config) (*Scene, error) {
	if background == nil {
		return nil, fmt.Errorf("scene: background texture is required: %w", rterr.ErrInvalidArgument)
	}
	if cam == nil {
		return nil, fmt.Errorf("scene: camera is required: %w", rterr.ErrInvalidArgument)
	}
	if cfg.MaxRayDepth < 1 {
		return nil, fmt.Errorf("scene: MaxRayDepth must be >= 1: %w", rterr.ErrInvalidArgument)
	}
	if cfg.SamplesPerPixel < 1 {
		return nil, fmt.Errorf("scene: SamplesPerPixel must be >= 1: %w", rterr.ErrInvalidArgument)
	}

	return &Scene{
		Background: background,
		Camera:     cam,
		Objects:    objects,
		Config:     cfg,
		BVH:        core.NewBVH(objects),
	}, nil
}

// RecommendedConfig returns the quality knobs this Scene was built
// with, the same "a scene suggests its own defaults" role the
// teacher's SamplingConfigProvider interface plays: a caller can ask
// the scene rather than hardcode depth/sample counts for it.
func (s *Scene) RecommendedConfig() Config {
	return s.Config
}
