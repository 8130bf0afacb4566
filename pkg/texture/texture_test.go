package texture

import (
	"testing"

	"github.com/kestrelrender/raytracer/pkg/color"
)

func TestSolidSampleConstant(t *testing.T) {
	s := NewSolid(color.New(0.2, 0.4, 0.6))
	for _, uv := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 1}} {
		if got := s.Sample(uv[0], uv[1]); got != s.Color {
			t.Errorf("Sample(%v) = %v, want %v", uv, got, s.Color)
		}
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	c := NewCheckerboard(color.Black, color.White, 2)
	// Tile (0,0) and (1,1) share parity; (0,1) and (1,0) share the other.
	if got := c.Sample(0.1, 0.1); got != color.Black {
		t.Errorf("tile (0,0) = %v, want Black", got)
	}
	if got := c.Sample(0.6, 0.1); got != color.White {
		t.Errorf("tile (1,0) = %v, want White", got)
	}
	if got := c.Sample(0.6, 0.6); got != color.Black {
		t.Errorf("tile (1,1) = %v, want Black", got)
	}
}

func TestImageNearestSamplesExactTexel(t *testing.T) {
	// 2x2 image: red, green on top row; blue, white on bottom.
	pixels := []uint32{
		color.New(1, 0, 0).Pack(), color.New(0, 1, 0).Pack(),
		color.New(0, 0, 1).Pack(), color.White.Pack(),
	}
	img, err := NewImage(2, 2, pixels, NearestNeighbor, 1.0)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	// v=1 is the top row (row 0), u=0 is the left column.
	got := img.Sample(0.01, 0.99)
	if got.R < 0.9 || got.G > 0.1 {
		t.Errorf("top-left sample = %v, want ~red", got)
	}
}

func TestImageInvalidDimensions(t *testing.T) {
	if _, err := NewImage(0, 2, nil, NearestNeighbor, 1.0); err == nil {
		t.Errorf("expected error for zero width")
	}
}

func TestImageMismatchedPixelCount(t *testing.T) {
	if _, err := NewImage(2, 2, []uint32{1, 2, 3}, NearestNeighbor, 1.0); err == nil {
		t.Errorf("expected error for mismatched pixel buffer length")
	}
}

func TestImageBilinearWrapsAtEdges(t *testing.T) {
	pixels := []uint32{
		color.New(1, 0, 0).Pack(), color.New(0, 1, 0).Pack(),
		color.New(0, 0, 1).Pack(), color.White.Pack(),
	}
	img, err := NewImage(2, 2, pixels, Bilinear, 1.0)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	// Sampling right at the seam should not panic and should blend,
	// not index out of range, thanks to modulo wrap.
	got := img.Sample(0.999, 0.001)
	if got.R < 0 || got.R > 1 {
		t.Errorf("wrapped sample out of range: %v", got)
	}
}

func TestImageMultiplierScales(t *testing.T) {
	pixels := []uint32{color.New(0.5, 0.5, 0.5).Pack()}
	img, err := NewImage(1, 1, pixels, NearestNeighbor, 2.0)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	got := img.Sample(0.5, 0.5)
	if got.R < 0.95 || got.R > 1.05 {
		t.Errorf("multiplier not applied: %v", got)
	}
}
