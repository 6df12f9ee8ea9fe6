package koch

import (
	"testing"

	"honnef.co/go/curve"
)

type recorder struct {
	log []Command
}

func (r *recorder) MoveTo(pt curve.Point) { r.log = append(r.log, Command{MoveTo, pt}) }
func (r *recorder) LineTo(pt curve.Point) { r.log = append(r.log, Command{LineTo, pt}) }

func TestCommands(t *testing.T) {
	pairs := []curve.Point{curve.Pt(0, 0), curve.Pt(1, 1), curve.Pt(2, 2), curve.Pt(3, 3)}
	want := []Command{
		{MoveTo, curve.Pt(0, 0)},
		{LineTo, curve.Pt(1, 1)},
		{MoveTo, curve.Pt(2, 2)},
		{LineTo, curve.Pt(3, 3)},
	}
	diff(t, want, Commands(pairs))

	// a dangling point has no partner to draw to
	diff(t, want, Commands(append(pairs, curve.Pt(9, 9))))
	diff(t, []Command{}, Commands(nil))
}

func TestSegments(t *testing.T) {
	pairs := []curve.Point{curve.Pt(0, 0), curve.Pt(1, 1), curve.Pt(2, 2), curve.Pt(3, 3)}
	want := []curve.Line{
		{P0: curve.Pt(0, 0), P1: curve.Pt(1, 1)},
		{P0: curve.Pt(2, 2), P1: curve.Pt(3, 3)},
	}
	diff(t, want, Segments(pairs))
}

func TestReplay(t *testing.T) {
	cmds := Commands(BuildFractal(2, 300))
	var r recorder
	Replay(&r, cmds)
	diff(t, cmds, r.log)
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{MoveTo: "move", LineTo: "line", Op(7): "Op(7)"} {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", uint8(op), got, want)
		}
	}
}
