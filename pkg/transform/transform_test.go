package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/kestrelrender/raytracer/pkg/core"
	"github.com/kestrelrender/raytracer/pkg/rterr"
	"github.com/kestrelrender/raytracer/pkg/vecmath"
)

func TestNewRejectsZeroScale(t *testing.T) {
	_, err := New(vecmath.Vector{}, vecmath.Vector{}, vecmath.New(1, 0, 1))
	if !errors.Is(err, rterr.ErrInvalidArgument) {
		t.Fatalf("New with zero scale axis: err = %v, want ErrInvalidArgument", err)
	}
}

func TestForwardReverseRoundTripPosition(t *testing.T) {
	tr, err := New(vecmath.New(1, 2, 3), vecmath.New(0.4, -0.7, 1.1), vecmath.New(2, 0.5, 3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := vecmath.New(5, -2, 7)
	object := tr.TransformPosition(p)
	back := tr.UntransformPosition(object)
	if back.Sub(p).Length() > 1e-9 {
		t.Errorf("round trip = %v, want %v", back, p)
	}
}

func TestForwardReverseRoundTripDirection(t *testing.T) {
	tr, err := New(vecmath.New(1, 2, 3), vecmath.New(0.2, 0.9, -0.3), vecmath.New(1, 1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d := vecmath.New(0, 1, 0)
	object := tr.TransformDirection(d)
	back := tr.UntransformDirection(object)
	if back.Sub(d).Length() > 1e-9 {
		t.Errorf("round trip direction = %v, want %v", back, d)
	}
}

func TestIdentityIsNoOp(t *testing.T) {
	tr := Identity()
	p := vecmath.New(3, 4, 5)
	if got := tr.TransformPosition(p); got.Sub(p).Length() > 1e-12 {
		t.Errorf("Identity transform changed position: %v", got)
	}
}

func TestTranslationOnlyMovesPoints(t *testing.T) {
	tr, err := New(vecmath.New(10, 0, 0), vecmath.Vector{}, vecmath.New(1, 1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	world := vecmath.New(12, 0, 0)
	object := tr.TransformPosition(world)
	want := vecmath.New(2, 0, 0)
	if object.Sub(want).Length() > 1e-9 {
		t.Errorf("TransformPosition = %v, want %v", object, want)
	}
}

func TestTransformRayDirectionStaysUnit(t *testing.T) {
	tr, err := New(vecmath.New(1, 1, 1), vecmath.New(0.1, 0.2, 0.3), vecmath.New(2, 4, 0.5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ray := core.NewRay(vecmath.New(0, 0, -5), vecmath.New(0, 0, 1))
	objectRay := tr.TransformRay(ray)
	if math.Abs(objectRay.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("transformed ray direction length = %v, want 1", objectRay.Direction.Length())
	}
}

func TestUntransformNormalUnderNonUniformScale(t *testing.T) {
	// Scaling a sphere by 2 along X stretches it along X: normals
	// off the axes bend away from X, while the normal at the +X pole
	// stays (1,0,0).
	tr, err := New(vecmath.Vector{}, vecmath.Vector{}, vecmath.New(2, 1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	localNormal := vecmath.New(1, 0, 0) // pole of the unit sphere along +X
	worldNormal := tr.UntransformNormal(localNormal)
	if math.Abs(worldNormal.Length()-1.0) > 1e-9 {
		t.Errorf("UntransformNormal did not return a unit vector: %v", worldNormal)
	}
	// At this particular pole the inverse-transpose still points along X,
	// so check a non-axis-aligned normal actually gets bent.
	localNormal2 := vecmath.New(1, 1, 0).Unit()
	worldNormal2 := tr.UntransformNormal(localNormal2)
	if worldNormal2.X > localNormal2.X {
		t.Errorf("expected non-uniform scale to bend the normal toward Y; got %v from %v", worldNormal2, localNormal2)
	}
}

func TestUntransformBoundingBoxUnderRotation(t *testing.T) {
	tr, err := New(vecmath.Vector{}, vecmath.New(0, math.Pi/4, 0), vecmath.New(1, 1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	box := core.NewBoundingBox(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	world := tr.UntransformBoundingBox(box)
	// A unit cube rotated 45 degrees about Y needs a wider world-space
	// bound along X and Z to still contain every corner.
	if world.Upper.X < 1.0 {
		t.Errorf("rotated bounding box too tight: %v", world)
	}
}

func TestForwardReverseComposeToIdentityUnderMultiAxisRotation(t *testing.T) {
	tr, err := New(vecmath.New(2, -3, 1), vecmath.New(0.3, 0.5, 0.7), vecmath.New(1.5, 2, 0.5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	probes := []vecmath.Vector{
		vecmath.New(1, 0, 0), vecmath.New(0, 1, 0), vecmath.New(0, 0, 1), vecmath.New(3, -2, 5),
	}
	for _, p := range probes {
		world := tr.UntransformPosition(tr.TransformPosition(p))
		if world.Sub(p).Length() > 1e-9 {
			t.Errorf("forward then reverse on %v = %v, want %v (reverse is not forward's inverse)", p, world, p)
		}
		object := tr.TransformPosition(tr.UntransformPosition(p))
		if object.Sub(p).Length() > 1e-9 {
			t.Errorf("reverse then forward on %v = %v, want %v (reverse is not forward's inverse)", p, object, p)
		}
	}
}

func TestUntransformNormalUnderMultiAxisRotation(t *testing.T) {
	// A sphere with rotation applied about all three axes: a
	// world-space normal pushed into object space and back must
	// recover the original direction, since rotation alone (no scale)
	// never bends a normal.
	tr, err := New(vecmath.Vector{}, vecmath.New(0.3, 0.5, 0.7), vecmath.New(1, 1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n := vecmath.New(0.2, 0.6, 0.77).Unit()
	objectNormal := tr.TransformDirection(n)
	worldNormal := tr.UntransformNormal(objectNormal)
	if worldNormal.Sub(n).Length() > 1e-9 {
		t.Errorf("UntransformNormal round trip under multi-axis rotation = %v, want %v", worldNormal, n)
	}
}

func TestUntransformBoundingBoxUnderMultiAxisRotation(t *testing.T) {
	tr, err := New(vecmath.Vector{}, vecmath.New(0.3, 0.5, 0.7), vecmath.New(1, 1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	box := core.NewBoundingBox(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))
	world := tr.UntransformBoundingBox(box)
	// Every corner of the rotated cube must land inside the rebuilt
	// world-space bound; a wrong reverse matrix would place some
	// corners outside it.
	for i := 0; i < 8; i++ {
		corner := vecmath.New(
			pick(i&1 != 0, box.Lower.X, box.Upper.X),
			pick(i&2 != 0, box.Lower.Y, box.Upper.Y),
			pick(i&4 != 0, box.Lower.Z, box.Upper.Z),
		)
		worldCorner := tr.UntransformPosition(corner)
		const eps = 1e-9
		if worldCorner.X < world.Lower.X-eps || worldCorner.X > world.Upper.X+eps ||
			worldCorner.Y < world.Lower.Y-eps || worldCorner.Y > world.Upper.Y+eps ||
			worldCorner.Z < world.Lower.Z-eps || worldCorner.Z > world.Upper.Z+eps {
			t.Errorf("corner %v maps to %v, outside rebuilt bound %v", corner, worldCorner, world)
		}
	}
}
