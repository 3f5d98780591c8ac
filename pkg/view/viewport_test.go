package view

import (
	"math"
	"math/rand"
	"testing"
)

func TestZoomSteps(t *testing.T) {
	v := New()
	v.ZoomIn()
	if math.Abs(v.Scale-1.2) > 1e-9 {
		t.Errorf("scale after one zoom in = %g, want 1.2", v.Scale)
	}
	v.ZoomOut()
	if math.Abs(v.Scale-1.0) > 1e-9 {
		t.Errorf("scale after zoom in + out = %g, want 1", v.Scale)
	}
}

func TestScaleAlwaysClamped(t *testing.T) {
	v := New()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		if rng.Intn(2) == 0 {
			v.ZoomIn()
		} else {
			v.ZoomOut()
		}
		if v.Scale < MinScale || v.Scale > MaxScale {
			t.Fatalf("scale %g escaped [%g, %g] after %d ops", v.Scale, MinScale, MaxScale, i+1)
		}
	}

	for i := 0; i < 50; i++ {
		v.ZoomIn()
	}
	if v.Scale != MaxScale {
		t.Errorf("scale pinned at %g, want %g", v.Scale, MaxScale)
	}
	for i := 0; i < 50; i++ {
		v.ZoomOut()
	}
	if v.Scale != MinScale {
		t.Errorf("scale pinned at %g, want %g", v.Scale, MinScale)
	}
}

func TestPanAccumulates(t *testing.T) {
	v := New()
	v.Pan(10, -5)
	v.Pan(2.5, 7)
	if v.OffsetX != 12.5 || v.OffsetY != 2 {
		t.Errorf("offset = (%g, %g), want (12.5, 2)", v.OffsetX, v.OffsetY)
	}
}

func TestReset(t *testing.T) {
	v := New()
	v.ZoomIn()
	v.Pan(30, 40)
	v.Reset()
	if v.Scale != 1 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("after reset: scale %g offset (%g, %g)", v.Scale, v.OffsetX, v.OffsetY)
	}
}

func TestToWorld(t *testing.T) {
	v := &Viewport{Scale: 2, OffsetX: 100, OffsetY: 50}
	wx, wy := v.ToWorld(300, 250)
	if wx != 100 || wy != 100 {
		t.Errorf("ToWorld(300, 250) = (%g, %g), want (100, 100)", wx, wy)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	v := New()
	v.ZoomIn()
	v.ZoomIn()
	v.Pan(-37, 81)

	sx, sy := 123.0, 456.0
	wx, wy := v.ToWorld(sx, sy)
	gx, gy := v.ToScreen(wx, wy)
	if math.Abs(gx-sx) > 1e-9 || math.Abs(gy-sy) > 1e-9 {
		t.Errorf("round trip (%g, %g) -> (%g, %g)", sx, sy, gx, gy)
	}
}
