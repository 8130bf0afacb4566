// Package camera implements the pinhole camera with optional
// depth-of-field used to generate primary rays for each pixel.
package camera

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/rterr"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// Config describes a camera's placement and lens. FocusDistance of 0
// auto-calculates from Center/LookAt.
type Config struct {
	Center        vecmath.Vector
	LookAt        vecmath.Vector
	Up            vecmath.Vector
	AspectRatio   float64
	VFov          float64 // vertical field of view, degrees
	Aperture      float64 // lens diameter; 0 disables depth of field
	FocusDistance float64
}

// Camera generates primary rays for normalized screen coordinates.
type Camera struct {
	origin          vecmath.Vector
	lowerLeftCorner vecmath.Vector
	horizontal      vecmath.Vector
	vertical        vecmath.Vector
	u, v, w         vecmath.Vector // camera basis: right, up, back
	lensRadius      float64
}

// New builds a Camera from cfg, rejecting a degenerate Center==LookAt
// or zero Up.
func New(cfg Config) (*Camera, error) {
	viewDir := cfg.LookAt.Sub(cfg.Center)
	if viewDir.NearZero() {
		return nil, fmt.Errorf("camera: LookAt coincides with Center: %w", rterr.ErrInvalidArgument)
	}
	if cfg.Up.NearZero() {
		return nil, fmt.Errorf("camera: Up is the zero vector: %w", rterr.ErrInvalidArgument)
	}
	if cfg.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera: AspectRatio must be positive: %w", rterr.ErrInvalidArgument)
	}

	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = viewDir.Length()
	}

	theta := cfg.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2 * halfHeight * focusDistance
	viewportWidth := viewportHeight * cfg.AspectRatio

	// w, u, v follow the source engine's Camera::update exactly:
	// w = -direction, u = orientation x (-w), v = w x u.
	w := viewDir.Negate().Unit()
	u := cfg.Up.Cross(w.Negate()).Unit()
	v := w.Cross(u)

	horizontal := u.Scale(viewportWidth)
	vertical := v.Scale(viewportHeight)
	lowerLeftCorner := cfg.Center.
		Sub(horizontal.Scale(0.5)).
		Sub(vertical.Scale(0.5)).
		Sub(w.Scale(focusDistance))

	return &Camera{
		origin:          cfg.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
	}, nil
}

// Ray generates a primary ray for screen coordinates (s, t) in [0, 1],
// jittering the origin across the lens disk when depth of field is
// enabled.
func (c *Camera) Ray(s, t float64, rng *rand.Rand) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		lx, ly := vecmath.RandomInUnitDisk(rng)
		offset := c.u.Scale(lx * c.lensRadius).Add(c.v.Scale(ly * c.lensRadius))
		origin = origin.Add(offset)
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t))

	return core.NewRay(origin, target.Sub(origin))
}
