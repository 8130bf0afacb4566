package scene

import (
	"fmt"
	"math"

	"github.com/kestrelrender/raytracer/pkg/camera"
	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/material"
	"github.com/kestrelrender/raytracer/pkg/object"
	"github.com/kestrelrender/raytracer/pkg/texture"
	"github.com/kestrelrender/raytracer/pkg/transform"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

// cornellBoxSize matches the traditional Cornell box dimensions.
const cornellBoxSize = 555.0

// cornellWallThickness keeps walls finite but thin relative to the
// box, since this engine's Box primitive (unlike the teacher's infinite
// Quad) needs a bounded extent on every axis.
const cornellWallThickness = 5.0

// NewCornellScene builds the classic Cornell box: white floor,
// ceiling and back wall, a red left wall, a green right wall, two
// boxes standing in for the classic tall/short blocks, and a
// rectangular light set into the ceiling.
func NewCornellScene() (*Scene, error) {
	cam, err := camera.New(camera.Config{
		Center:        vecmath.New(278, 278, -800),
		LookAt:        vecmath.New(278, 278, 0),
		Up:            vecmath.New(0, 1, 0),
		AspectRatio:   1,
		VFov:          40,
		Aperture:      0,
		FocusDistance: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("scene: cornell scene camera: %w", err)
	}

	white := material.NewDiffuse(texture.NewSolid(color.New(0.73, 0.73, 0.73)))
	red := material.NewDiffuse(texture.NewSolid(color.New(0.65, 0.05, 0.05)))
	green := material.NewDiffuse(texture.NewSolid(color.New(0.12, 0.45, 0.15)))
	lightEmission := material.NewLight(texture.NewSolid(color.New(15, 15, 15)))

	s := cornellBoxSize
	t := cornellWallThickness

	objects := []core.Object{
		cornellWall(vecmath.New(0, -t, 0), vecmath.New(s, t, s), white),       // floor
		cornellWall(vecmath.New(0, s, 0), vecmath.New(s, t, s), white),        // ceiling
		cornellWall(vecmath.New(0, 0, s), vecmath.New(s, s, t), white),        // back wall
		cornellWall(vecmath.New(-t, 0, 0), vecmath.New(t, s, s), red),         // left wall
		cornellWall(vecmath.New(s, 0, 0), vecmath.New(t, s, s), green),        // right wall
		cornellBlock(vecmath.New(130, 0, 65), vecmath.New(165, 330, 165), 18, white),
		cornellBlock(vecmath.New(265, 0, 295), vecmath.New(165, 165, 165), -15, white),
		cornellWall(vecmath.New(213, s-1, 227), vecmath.New(130, 1, 105), lightEmission),
	}

	return New(
		texture.NewSolid(color.Black),
		cam,
		objects,
		MergeConfig(DefaultConfig(), Config{MaxRayDepth: 40, SamplesPerPixel: 150, LightingEnabled: true}),
	)
}

// cornellWall places an axis-aligned box of the given size with its
// lower corner at corner.
func cornellWall(corner, size vecmath.Vector, m core.Material) core.Object {
	tr, err := transform.New(corner, vecmath.Zero, vecmath.New(1, 1, 1))
	if err != nil {
		panic(err) // unreachable: scale is always (1,1,1)
	}
	return object.NewBox(tr, m, size)
}

// cornellBlock places a box rotated about Y by rotationDegrees, its
// lower corner at corner.
func cornellBlock(corner, size vecmath.Vector, rotationDegrees float64, m core.Material) core.Object {
	radians := rotationDegrees * (math.Pi / 180)
	tr, err := transform.New(corner, vecmath.New(0, radians, 0), vecmath.New(1, 1, 1))
	if err != nil {
		panic(err) // unreachable: scale is always (1,1,1)
	}
	return object.NewBox(tr, m, size)
}
