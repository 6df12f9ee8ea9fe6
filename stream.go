package koch

import (
	"honnef.co/go/curve"
)

// StreamHeader is the first message of a live drawing stream.
type StreamHeader struct {
	Color   string     `json:"color"`
	Rapidez int        `json:"rapidez"`
	Bounds  [4]float64 `json:"bounds"` // x0, y0, x1, y1 of the drawn pairs
	YLimit  float64    `json:"ylimit"`
	Total   int        `json:"total"` // number of StreamCommand messages that follow
}

// StreamCommand is one pen command on the wire.
type StreamCommand struct {
	Op string  `json:"op"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func NewStreamHeader(f Fractal, color string, speed int) StreamHeader {
	b := Bounds(f.Pairs)
	return StreamHeader{
		Color:   color,
		Rapidez: speed,
		Bounds:  [4]float64{b.X0, b.Y0, b.X1, b.Y1},
		YLimit:  f.YLimit,
		Total:   len(f.Pairs) &^ 1,
	}
}

// Rect returns the header bounds.
func (h StreamHeader) Rect() curve.Rect {
	return curve.Rect{X0: h.Bounds[0], Y0: h.Bounds[1], X1: h.Bounds[2], Y1: h.Bounds[3]}
}

func NewStreamCommand(c Command) StreamCommand {
	return StreamCommand{Op: c.Op.String(), X: c.Pt.X, Y: c.Pt.Y}
}

// Command converts the wire form back. Unknown ops decode as MoveTo so a
// malformed message never draws a stray line.
func (sc StreamCommand) Command() Command {
	op := MoveTo
	if sc.Op == LineTo.String() {
		op = LineTo
	}
	return Command{Op: op, Pt: curve.Pt(sc.X, sc.Y)}
}
