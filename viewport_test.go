package koch

import (
	"testing"

	"honnef.co/go/curve"
)

func TestViewport(t *testing.T) {
	v := NewViewport(curve.Rect{X0: 0, Y0: 0, X1: 100, Y1: 50}, 200, 200, 10)

	if got := v.Scale(); got != 1.8 {
		t.Errorf("Scale = %g, want 1.8", got)
	}
	diff(t, curve.Pt(10, 145), v.Apply(curve.Pt(0, 0)), approx)
	diff(t, curve.Pt(190, 55), v.Apply(curve.Pt(100, 50)), approx)
	diff(t, curve.Pt(100, 100), v.Apply(curve.Pt(50, 25)), approx)
}

func TestViewportDegenerate(t *testing.T) {
	v := NewViewport(curve.NewRectFromPoints(curve.Pt(3, 3), curve.Pt(3, 3)), 64, 32, 4)
	if got := v.Scale(); got != 1 {
		t.Errorf("Scale = %g, want 1", got)
	}
	diff(t, curve.Pt(32, 16), v.Apply(curve.Pt(3, 3)))

	// a horizontal line is scaled by its width only
	v = NewViewport(curve.Rect{X0: 0, Y0: 5, X1: 10, Y1: 5}, 120, 40, 10)
	diff(t, curve.Pt(10, 20), v.Apply(curve.Pt(0, 5)), approx)
	diff(t, curve.Pt(110, 20), v.Apply(curve.Pt(10, 5)), approx)
}

func TestViewportKeepsFractalInside(t *testing.T) {
	f, err := DefaultParams.Build(4, 400)
	if err != nil {
		t.Fatal(err)
	}
	const w, h = 640, 480
	v := NewViewport(Bounds(f.Pairs), w, h, 8)
	for _, pt := range f.Pairs {
		p := v.Apply(pt)
		if p.X < 8-1e-9 || p.X > w-8+1e-9 || p.Y < 8-1e-9 || p.Y > h-8+1e-9 {
			t.Fatalf("%v maps to %v, outside the margin", pt, p)
		}
	}
}
