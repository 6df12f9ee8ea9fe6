package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"honnef.co/go/curve"

	koch "github.com/marben/koch_snowflake"
)

const (
	DefaultSize      = 1200
	DefaultMargin    = 24
	DefaultLineWidth = 1.5
	GuideMargin      = 20 // curve units the guide line extends past the curve
)

var ErrSize = errors.New("image size must be positive")

// Renderer rasterizes command lists onto a solid background.
type Renderer struct {
	Width, Height int
	Margin        float64 // pixels kept free around the curve
	LineWidth     float64
	Background    color.Color // black when nil
	// Supersample renders at this multiple of the target size and scales
	// the result down, smoothing the strokes. Values below 2 disable it.
	Supersample int

	// OnRender, if set, is called before rasterizing with the number of commands.
	OnRender func(cmds int)
}

var _ koch.Renderer = Renderer{}

// Render draws cmds, whose coordinates lie within bounds, in col.
func (r Renderer) Render(cmds []koch.Command, bounds curve.Rect, col color.Color) (image.Image, error) {
	return r.render(bounds, func(dc *gg.Context, vp koch.Viewport) error {
		return stroke(dc, vp, cmds, col)
	}, len(cmds))
}

// RenderFractal draws the clipped curve of f in col. When guide is not nil the
// clip line is drawn first, in that colour.
func (r Renderer) RenderFractal(f koch.Fractal, col, guide color.Color) (image.Image, error) {
	cmds := koch.Commands(f.Pairs)
	bounds := koch.Bounds(f.Pairs)
	var guideCmds []koch.Command
	if guide != nil {
		l := f.Guide(GuideMargin)
		guideCmds = []koch.Command{{Op: koch.MoveTo, Pt: l.P0}, {Op: koch.LineTo, Pt: l.P1}}
		if len(f.Pairs) == 0 {
			bounds = curve.NewRectFromPoints(l.P0, l.P1)
		} else {
			bounds = bounds.UnionPoint(l.P0).UnionPoint(l.P1)
		}
	}

	return r.render(bounds, func(dc *gg.Context, vp koch.Viewport) error {
		if err := stroke(dc, vp, guideCmds, guide); err != nil {
			return fmt.Errorf("guide: %w", err)
		}
		return stroke(dc, vp, cmds, col)
	}, len(cmds)+len(guideCmds))
}

func (r Renderer) render(bounds curve.Rect, draw func(*gg.Context, koch.Viewport) error, n int) (image.Image, error) {
	w, h := r.Width, r.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrSize)
	}
	ss := max(r.Supersample, 1)
	lw := r.LineWidth
	if lw <= 0 {
		lw = DefaultLineWidth
	}
	bg := r.Background
	if bg == nil {
		bg = color.Black
	}

	if r.OnRender != nil {
		r.OnRender(n)
	}

	dc := gg.NewContext(w*ss, h*ss)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(bg))
	dc.SetLineWidth(lw * float64(ss))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	vp := koch.NewViewport(bounds, w*ss, h*ss, r.Margin*float64(ss))
	if err := draw(dc, vp); err != nil {
		return nil, err
	}

	img := dc.Image()
	if ss > 1 {
		return imaging.Resize(img, w, h, imaging.Lanczos), nil
	}
	return img, nil
}

// stroke replays cmds as one path and strokes it in col.
func stroke(dc *gg.Context, vp koch.Viewport, cmds []koch.Command, col color.Color) error {
	if len(cmds) == 0 {
		return nil
	}
	dc.SetColor(col)
	koch.Replay(pen{dc: dc, vp: vp}, cmds)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke %d commands: %w", len(cmds), err)
	}
	return nil
}

// pen adapts a gg context to koch.Drawer, mapping curve coordinates to pixels.
type pen struct {
	dc *gg.Context
	vp koch.Viewport
}

func (p pen) MoveTo(pt curve.Point) {
	p.dc.MoveTo(p.vp.Apply(pt).Splat())
}

func (p pen) LineTo(pt curve.Point) {
	p.dc.LineTo(p.vp.Apply(pt).Splat())
}
