package sprite

import (
	"image/color"
	"testing"
)

func TestNewSizeAndMask(t *testing.T) {
	img := New(75, 1)

	if b := img.Bounds(); b.Dx() != 75 || b.Dy() != 75 {
		t.Fatalf("bounds = %v, want 75x75", b)
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := img.NRGBAAt(74, 74).A; a != 0 {
		t.Errorf("far corner alpha = %d, want 0", a)
	}
	c := img.NRGBAAt(37, 37)
	if c.A != 255 {
		t.Errorf("centre alpha = %d, want 255", c.A)
	}
	if c.R != c.G || c.G != c.B {
		t.Errorf("centre = %v, want grey", c)
	}
	if c.R < 50 {
		t.Errorf("centre = %v, want a light tone", c)
	}
}

func TestNewDeterministic(t *testing.T) {
	a, b := New(32, 7), New(32, 7)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel byte %d differs between identical seeds", i)
		}
	}
}

func TestNewZeroSize(t *testing.T) {
	if img := New(0, 1); !img.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", img.Bounds())
	}
}

func TestTint(t *testing.T) {
	src := New(16, 3)
	red := color.NRGBA{R: 255, G: 0, B: 0, A: 128}

	got := Tint(src, red)

	for i := 0; i < len(src.Pix); i += 4 {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("red channel at %d = %d, want %d", i, got.Pix[i], src.Pix[i])
		}
		if got.Pix[i+1] != 0 || got.Pix[i+2] != 0 {
			t.Fatalf("green/blue at %d = %d/%d, want 0", i, got.Pix[i+1], got.Pix[i+2])
		}
	}
	if a := got.NRGBAAt(8, 8).A; a != 128 {
		t.Errorf("centre alpha = %d, want 128", a)
	}
	if a := got.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}
