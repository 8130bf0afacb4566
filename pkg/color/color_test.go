package color

import "testing"

func TestPackAlphaAlwaysOpaque(t *testing.T) {
	colors := []Color{Black, White, New(0.5, 1.5, -0.2)}
	for _, c := range colors {
		packed := c.Pack()
		alpha := (packed >> 24) & 0xFF
		if alpha != 0xFF {
			t.Errorf("Pack(%v) alpha = %#x, want 0xFF", c, alpha)
		}
	}
}

func TestPackClampsOutOfRange(t *testing.T) {
	c := New(2, -1, 0.5)
	packed := c.Pack()
	r := packed & 0xFF
	g := (packed >> 8) & 0xFF
	if r != 255 {
		t.Errorf("red channel = %v, want 255 (clamped)", r)
	}
	if g != 0 {
		t.Errorf("green channel = %v, want 0 (clamped)", g)
	}
}

func TestPackByteOrder(t *testing.T) {
	c := New(1, 0, 0) // pure red
	packed := c.Pack()
	if packed != 0xFF0000FF {
		t.Errorf("Pack(red) = %#08x, want %#08x (R in byte 0)", packed, 0xFF0000FF)
	}
}

func TestUnpackRoundTrip(t *testing.T) {
	c := New(0.4, 0.6, 0.8)
	packed := c.Pack()
	back := Unpack(packed)
	const tol = 1.0 / 255
	if absf(back.R-c.R) > tol || absf(back.G-c.G) > tol || absf(back.B-c.B) > tol {
		t.Errorf("Unpack(Pack(%v)) = %v, too far off", c, back)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
