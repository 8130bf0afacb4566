package scene

import (
	"fmt"

	"github.com/kestrelrender/raytracer/pkg/camera"
	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/material"
	"github.com/kestrelrender/raytracer/pkg/object"
	"github.com/kestrelrender/raytracer/pkg/texture"
	"github.com/kestrelrender/raytracer/pkg/transform"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// DefaultCameraConfig returns the camera placement NewDefaultScene
// renders with.
func DefaultCameraConfig(aspectRatio float64) camera.Config {
	return camera.Config{
		Center:        vecmath.New(0, 0.75, 2),
		LookAt:        vecmath.New(0, 0.5, -1),
		Up:            vecmath.New(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          40,
		Aperture:      0.05,
		FocusDistance: 0,
	}
}

// NewDefaultScene builds a small showcase scene: a diffuse, a mirror
// and a glass sphere over a checkered ground plane, lit by a single
// emissive sphere, against a sky-gradient-like solid background.
func NewDefaultScene(aspectRatio float64) (*Scene, error) {
	cam, err := camera.New(DefaultCameraConfig(aspectRatio))
	if err != nil {
		return nil, fmt.Errorf("scene: default scene camera: %w", err)
	}

	ground := object.NewPlane(
		transform.Identity(),
		material.NewDiffuse(texture.NewCheckerboard(
			color.New(0.2, 0.3, 0.1),
			color.New(0.9, 0.9, 0.9),
			10,
		)),
		4,
	)

	centerTransform, err := transform.New(vecmath.New(0, 0.5, -1), vecmath.Zero, vecmath.New(0.5, 0.5, 0.5))
	if err != nil {
		return nil, err
	}
	center := object.NewSphere(centerTransform, material.NewDiffuse(texture.NewSolid(color.New(0.65, 0.25, 0.2))))

	leftTransform, err := transform.New(vecmath.New(-1, 0.5, -1), vecmath.Zero, vecmath.New(0.5, 0.5, 0.5))
	if err != nil {
		return nil, err
	}
	left := object.NewSphere(leftTransform, material.NewReflective(texture.NewSolid(color.New(0.8, 0.8, 0.8)), 0.9))

	rightTransform, err := transform.New(vecmath.New(1, 0.5, -1), vecmath.Zero, vecmath.New(0.5, 0.5, 0.5))
	if err != nil {
		return nil, err
	}
	right := object.NewSphere(rightTransform, material.NewDielectric(1.5))

	lightTransform, err := transform.New(vecmath.New(3, 5, 1), vecmath.Zero, vecmath.New(1.5, 1.5, 1.5))
	if err != nil {
		return nil, err
	}
	light := object.NewSphere(lightTransform, material.NewLight(texture.NewSolid(color.New(15, 14, 13))))

	objects := []core.Object{ground, center, left, right, light}

	return New(
		texture.NewSolid(color.New(0.5, 0.7, 1.0)),
		cam,
		objects,
		DefaultConfig(),
	)
}
