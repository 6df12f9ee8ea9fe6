package koch

import (
	"fmt"

	"honnef.co/go/curve"
)

type Op uint8

const (
	MoveTo Op = iota
	LineTo
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "move"
	case LineTo:
		return "line"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Command is one pen operation. A MoveTo lifts the pen and places it at Pt,
// a LineTo draws from the current position to Pt.
type Command struct {
	Op Op
	Pt curve.Point
}

// Commands converts a flat pair list, as returned by Clip, into pen commands:
// a MoveTo to the first point of each pair followed by a LineTo to the second.
// A trailing unpaired point is ignored.
func Commands(pairs []curve.Point) []Command {
	cmds := make([]Command, 0, len(pairs)&^1)
	for i := 0; i+1 < len(pairs); i += 2 {
		cmds = append(cmds,
			Command{Op: MoveTo, Pt: pairs[i]},
			Command{Op: LineTo, Pt: pairs[i+1]},
		)
	}
	return cmds
}

// Segments returns the pair list as lines.
func Segments(pairs []curve.Point) []curve.Line {
	lines := make([]curve.Line, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		lines = append(lines, curve.Line{P0: pairs[i], P1: pairs[i+1]})
	}
	return lines
}

// Replay feeds cmds to d in order.
func Replay(d Drawer, cmds []Command) {
	for _, c := range cmds {
		switch c.Op {
		case MoveTo:
			d.MoveTo(c.Pt)
		case LineTo:
			d.LineTo(c.Pt)
		}
	}
}
