package object

import (
	"testing"

	"github.com/kestrelrender/raytracer/pkg/color"
	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/material"
	"github.com/kestrelrender/raytracer/pkg/texture"
	"github.com/kestrelrender/raytracer/pkg/transform"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

func testBoxDiffuse() core.Material {
	return material.NewDiffuse(texture.NewSolid(color.White))
}

func TestBoxFrontFaceNormal(t *testing.T) {
	tr := transform.Identity()
	size := vecmath.New(2, 2, 2)
	box := NewBox(tr, testBoxDiffuse(), size)

	ray := core.NewRay(vecmath.New(1, 1, -5), vecmath.New(0, 0, 1))
	distance, ok := box.Intersect(ray)
	if !ok {
		t.Fatalf("expected hit on front face")
	}
	hit := box.SurfaceAt(ray, distance)
	want := vecmath.New(0, 0, -1)
	if hit.Normal.Sub(want).Length() > 1e-9 {
		t.Errorf("front face normal = %v, want %v", hit.Normal, want)
	}
	if hit.U < 0 || hit.U > 1 || hit.V < 0 || hit.V > 1 {
		t.Errorf("uv out of [0,1]^2: (%v, %v)", hit.U, hit.V)
	}
}

func TestBoxRightFaceNormal(t *testing.T) {
	tr := transform.Identity()
	size := vecmath.New(2, 2, 2)
	box := NewBox(tr, testBoxDiffuse(), size)

	ray := core.NewRay(vecmath.New(5, 1, 1), vecmath.New(-1, 0, 0))
	distance, ok := box.Intersect(ray)
	if !ok {
		t.Fatalf("expected hit on right face")
	}
	hit := box.SurfaceAt(ray, distance)
	want := vecmath.New(1, 0, 0)
	if hit.Normal.Sub(want).Length() > 1e-9 {
		t.Errorf("right face normal = %v, want %v", hit.Normal, want)
	}
}

func TestBoxMissesWhenRayPassesOutside(t *testing.T) {
	tr := transform.Identity()
	size := vecmath.New(2, 2, 2)
	box := NewBox(tr, testBoxDiffuse(), size)

	ray := core.NewRay(vecmath.New(10, 10, -5), vecmath.New(0, 0, 1))
	if _, ok := box.Intersect(ray); ok {
		t.Errorf("expected miss for ray outside box extents")
	}
}

func TestBoxBoundingBoxMatchesSize(t *testing.T) {
	tr := transform.Identity()
	size := vecmath.New(2, 3, 4)
	box := NewBox(tr, testBoxDiffuse(), size)

	bb := box.BoundingBox()
	if bb.Lower.Sub(vecmath.Zero).Length() > 1e-9 {
		t.Errorf("lower = %v, want origin", bb.Lower)
	}
	if bb.Upper.Sub(size).Length() > 1e-9 {
		t.Errorf("upper = %v, want %v", bb.Upper, size)
	}
}
