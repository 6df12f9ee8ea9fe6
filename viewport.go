package koch

import (
	"math"

	"honnef.co/go/curve"
)

// Viewport maps curve coordinates, with y pointing up, onto a pixel grid with
// y pointing down. The mapping is uniform so the curve keeps its aspect ratio.
type Viewport struct {
	scale float64
	// source point mapped to the image centre
	center curve.Point
	width  float64
	height float64
}

// NewViewport fits bounds into a width×height image, keeping margin pixels free on every side.
func NewViewport(bounds curve.Rect, width, height int, margin float64) Viewport {
	w := float64(width) - 2*margin
	h := float64(height) - 2*margin
	scale := 1.0
	bw, bh := bounds.Width(), bounds.Height()
	switch {
	case bw > 0 && bh > 0:
		scale = math.Min(w/bw, h/bh)
	case bw > 0:
		scale = w / bw
	case bh > 0:
		scale = h / bh
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return Viewport{
		scale:  scale,
		center: bounds.Center(),
		width:  float64(width),
		height: float64(height),
	}
}

// Apply maps pt into pixel space.
func (v Viewport) Apply(pt curve.Point) curve.Point {
	return curve.Pt(
		v.width/2+(pt.X-v.center.X)*v.scale,
		v.height/2-(pt.Y-v.center.Y)*v.scale,
	)
}

// Scale is the number of pixels per curve unit.
func (v Viewport) Scale() float64 {
	return v.scale
}
