package camera

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/kestrelrender/raytracer/pkg/rterr"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

func TestNewRejectsDegenerateLookAt(t *testing.T) {
	_, err := New(Config{
		Center:      vecmath.New(0, 0, 0),
		LookAt:      vecmath.New(0, 0, 0),
		Up:          vecmath.New(0, 1, 0),
		AspectRatio: 1,
		VFov:        60,
	})
	if !errors.Is(err, rterr.ErrInvalidArgument) {
		t.Fatalf("degenerate LookAt: err = %v, want ErrInvalidArgument", err)
	}
}

func TestNewRejectsZeroUp(t *testing.T) {
	_, err := New(Config{
		Center:      vecmath.New(0, 0, 0),
		LookAt:      vecmath.New(0, 0, -1),
		Up:          vecmath.Vector{},
		AspectRatio: 1,
		VFov:        60,
	})
	if !errors.Is(err, rterr.ErrInvalidArgument) {
		t.Fatalf("zero Up: err = %v, want ErrInvalidArgument", err)
	}
}

func TestRayThroughCenterAimsAtLookAt(t *testing.T) {
	cam, err := New(Config{
		Center:        vecmath.New(0, 0, 0),
		LookAt:        vecmath.New(0, 0, -1),
		Up:            vecmath.New(0, 1, 0),
		AspectRatio:   1,
		VFov:          90,
		FocusDistance: 1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	ray := cam.Ray(0.5, 0.5, rng)
	want := vecmath.New(0, 0, -1)
	if ray.Direction.Sub(want).Length() > 1e-9 {
		t.Errorf("center ray direction = %v, want %v", ray.Direction, want)
	}
}

func TestRayDirectionIsNormalized(t *testing.T) {
	cam, err := New(Config{
		Center:        vecmath.New(1, 2, 3),
		LookAt:        vecmath.New(4, 2, 3),
		Up:            vecmath.New(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40,
		FocusDistance: 5,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(2))
	ray := cam.Ray(0.1, 0.9, rng)
	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("ray direction length = %v, want 1", ray.Direction.Length())
	}
}

func TestApertureJitterStaysWithinLensRadius(t *testing.T) {
	cam, err := New(Config{
		Center:        vecmath.New(0, 0, 0),
		LookAt:        vecmath.New(0, 0, -1),
		Up:            vecmath.New(0, 1, 0),
		AspectRatio:   1,
		VFov:          90,
		Aperture:      0.2,
		FocusDistance: 1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		ray := cam.Ray(0.5, 0.5, rng)
		offset := ray.Origin.Sub(cam.origin).Length()
		if offset > cam.lensRadius+1e-9 {
			t.Fatalf("origin offset %v exceeds lens radius %v", offset, cam.lensRadius)
		}
	}
}

func TestZeroApertureNeverJitters(t *testing.T) {
	cam, err := New(Config{
		Center:        vecmath.New(0, 0, 0),
		LookAt:        vecmath.New(0, 0, -1),
		Up:            vecmath.New(0, 1, 0),
		AspectRatio:   1,
		VFov:          90,
		FocusDistance: 1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rng := rand.New(rand.NewSource(4))
	ray := cam.Ray(0.2, 0.8, rng)
	if ray.Origin.Sub(cam.origin).Length() > 1e-12 {
		t.Errorf("zero-aperture ray origin moved: %v", ray.Origin)
	}
}
