package koch

import (
	"testing"

	"honnef.co/go/curve"
)

func TestStreamHeader(t *testing.T) {
	f, err := DefaultParams.Build(2, 300)
	if err != nil {
		t.Fatal(err)
	}
	h := NewStreamHeader(f, "#00ffff", 4)
	if h.Total != len(Commands(f.Pairs)) {
		t.Errorf("Total = %d, want %d", h.Total, len(Commands(f.Pairs)))
	}
	diff(t, Bounds(f.Pairs), h.Rect())
	if h.YLimit != f.YLimit || h.Rapidez != 4 || h.Color != "#00ffff" {
		t.Errorf("unexpected header %+v", h)
	}
}

func TestStreamCommandRoundTrip(t *testing.T) {
	for _, c := range []Command{{MoveTo, curve.Pt(1, 2)}, {LineTo, curve.Pt(-3, 4.5)}} {
		diff(t, c, NewStreamCommand(c).Command())
	}
	diff(t, Command{MoveTo, curve.Pt(1, 1)}, StreamCommand{Op: "jump", X: 1, Y: 1}.Command())
}
