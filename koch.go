package koch

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/curve"
)

var (
	ErrNegativeOrder = errors.New("order must not be negative")
	ErrOrderTooLarge = errors.New("order exceeds the configured maximum")
	ErrLength        = errors.New("length must be a positive finite number")
)

// Params holds the constants that place the two snowflake sides and the clip line.
type Params struct {
	Start      curve.Point // first point of the first side
	Heading    float64     // degrees, heading of the first side
	SideTurn   float64     // degrees, turn applied between the two sides
	ClipOffset float64     // clip line sits this far below the middle of the y-extent
	MaxOrder   int
}

// DefaultParams reproduce the classic drawing: two upper sides of the snowflake,
// cut 60 units below their vertical middle.
var DefaultParams = Params{
	Start:      curve.Pt(-200, -50),
	Heading:    60,
	SideTurn:   -120,
	ClipOffset: 60,
	MaxOrder:   10,
}

// Fractal is the result of one generation.
type Fractal struct {
	Points []curve.Point // raw two-sided sequence
	YLimit float64
	Pairs  []curve.Point // clipped, flat list of point pairs
}

// Trace appends the endpoints of one Koch side of the given order to pts,
// walking from origin at heading (degrees). It returns the final position and heading.
func Trace(order int, length, heading float64, origin curve.Point, pts []curve.Point) (curve.Point, float64, []curve.Point) {
	if order <= 0 {
		rad := heading * math.Pi / 180
		end := curve.Pt(origin.X+length*math.Cos(rad), origin.Y+length*math.Sin(rad))
		return end, heading, append(pts, end)
	}

	order--
	length /= 3
	pos := origin
	pos, heading, pts = Trace(order, length, heading, pos, pts)
	heading += 60
	pos, heading, pts = Trace(order, length, heading, pos, pts)
	heading -= 120
	pos, heading, pts = Trace(order, length, heading, pos, pts)
	heading += 60
	pos, heading, pts = Trace(order, length, heading, pos, pts)
	return pos, heading, pts
}

// Generate traces a single side starting at origin. The returned sequence
// begins with origin.
func Generate(order int, length, heading float64, origin curve.Point) (curve.Point, float64, []curve.Point) {
	pts := make([]curve.Point, 1, sidePoints(order)+1)
	pts[0] = origin
	return Trace(order, length, heading, origin, pts)
}

// TwoSides builds the two adjacent upper sides of the snowflake.
func (p Params) TwoSides(order int, length float64) []curve.Point {
	pts := make([]curve.Point, 1, 2*sidePoints(order)+1)
	pts[0] = p.Start
	pos, hdg, pts := Trace(order, length, p.Heading, p.Start, pts)
	hdg += p.SideTurn
	_, _, pts = Trace(order, length, hdg, pos, pts)
	return pts
}

// Threshold returns the clip line: the middle of the y-extent of pts minus offset.
func Threshold(pts []curve.Point, offset float64) float64 {
	b := Bounds(pts)
	return (b.MaxY()+b.MinY())/2 - offset
}

// Bounds returns the bounding box of pts. It is the zero Rect for no points.
func Bounds(pts []curve.Point) curve.Rect {
	if len(pts) == 0 {
		return curve.Rect{}
	}
	b := curve.NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		b = b.UnionPoint(pt)
	}
	return b
}

// Clip keeps the parts of each consecutive segment of pts lying at or above
// yLimit. The result is a flat list of point pairs, one pair per visible stroke.
func Clip(pts []curve.Point, yLimit float64) []curve.Point {
	var out []curve.Point
	for i := 0; i+1 < len(pts); i++ {
		p1, p2 := pts[i], pts[i+1]
		above1, above2 := p1.Y >= yLimit, p2.Y >= yLimit

		switch {
		case above1 && above2:
			out = append(out, p1, p2)
		case !above1 && !above2:
		case p2.Y != p1.Y:
			t := (yLimit - p1.Y) / (p2.Y - p1.Y)
			cross := curve.Pt(p1.Lerp(p2, t).X, yLimit)
			if above1 {
				out = append(out, p1, cross)
			} else {
				out = append(out, cross, p2)
			}
		}
	}
	return out
}

// Validate checks order and length against p.
func (p Params) Validate(order int, length float64) error {
	if order < 0 {
		return fmt.Errorf("order %d: %w", order, ErrNegativeOrder)
	}
	if p.MaxOrder > 0 && order > p.MaxOrder {
		return fmt.Errorf("order %d > %d: %w", order, p.MaxOrder, ErrOrderTooLarge)
	}
	if !(length > 0) || math.IsInf(length, 0) {
		return fmt.Errorf("length %g: %w", length, ErrLength)
	}
	return nil
}

// Build validates the input, generates both sides and clips them.
func (p Params) Build(order int, length float64) (Fractal, error) {
	if err := p.Validate(order, length); err != nil {
		return Fractal{}, err
	}
	pts := p.TwoSides(order, length)
	yLimit := Threshold(pts, p.ClipOffset)
	return Fractal{
		Points: pts,
		YLimit: yLimit,
		Pairs:  Clip(pts, yLimit),
	}, nil
}

// BuildFractal returns the clipped point pairs for the default parameters.
// It performs no validation; order must be non-negative.
func BuildFractal(order int, length float64) []curve.Point {
	p := DefaultParams
	pts := p.TwoSides(order, length)
	return Clip(pts, Threshold(pts, p.ClipOffset))
}

// Guide returns the horizontal clip line spanning the raw points, widened by margin on each side.
func (f Fractal) Guide(margin float64) curve.Line {
	b := Bounds(f.Points)
	return curve.Line{
		P0: curve.Pt(b.MinX()-margin, f.YLimit),
		P1: curve.Pt(b.MaxX()+margin, f.YLimit),
	}
}

// sidePoints is the number of points one side of the given order appends.
func sidePoints(order int) int {
	if order < 0 || order > 12 {
		return 0
	}
	return 1 << (2 * order)
}
