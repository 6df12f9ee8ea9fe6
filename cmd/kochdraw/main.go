// kochdraw draws the clipped Koch snowflake progressively in a window, the way
// a turtle would: a few pen commands per frame.

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/curve"

	koch "github.com/marben/koch_snowflake"
	"github.com/marben/koch_snowflake/render"
)

var (
	order     = flag.Int("n", 4, "iterations")
	length    = flag.Float64("len", 400, "initial segment length")
	colorHex  = flag.String("color", "00ffff", "stroke colour, hex without #")
	guideHex  = flag.String("guide", "", "draw the clip line in this hex colour")
	speed     = flag.Int("speed", 8, "pen commands per frame, 0 draws everything at once")
	offset    = flag.Float64("offset", koch.DefaultParams.ClipOffset, "clip line distance below the middle of the curve")
	width     = flag.Int("width", 800, "window width")
	height    = flag.Int("height", 600, "window height")
	lineWidth = flag.Float64("line-width", 1.5, "stroke width in pixels")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	col, err := render.ParseColor(*colorHex)
	if err != nil {
		return err
	}

	params := koch.DefaultParams
	params.ClipOffset = *offset
	f, err := params.Build(*order, *length)
	if err != nil {
		return err
	}

	d := &drawer{
		pacer:     koch.NewPacer(koch.Commands(f.Pairs), *speed),
		vp:        koch.NewViewport(koch.Bounds(f.Points), *width, *height, 20),
		col:       col,
		lineWidth: float32(*lineWidth),
		width:     *width,
		height:    *height,
	}
	if *guideHex != "" {
		g, err := render.ParseColor(*guideHex)
		if err != nil {
			return fmt.Errorf("guide: %w", err)
		}
		l := f.Guide(render.GuideMargin)
		d.guide, d.guideCol = &l, g
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(fmt.Sprintf("Koch snowflake, order %d", *order))

	log.Printf("drawing %d segments, clip line at y=%g", len(f.Pairs)/2, f.YLimit)
	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// drawer implements ebiten.Game and koch.Drawer. Each Update replays the next
// batch of commands onto an off-screen canvas.
type drawer struct {
	pacer     *koch.Pacer
	vp        koch.Viewport
	col       color.Color
	lineWidth float32
	guide     *curve.Line
	guideCol  color.Color

	width, height int
	canvas        *ebiten.Image
	pen           curve.Point
}

func (d *drawer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if d.canvas == nil || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.reset()
	}

	koch.Replay(d, d.pacer.Next())
	return nil
}

func (d *drawer) reset() {
	if d.canvas == nil {
		d.canvas = ebiten.NewImage(d.width, d.height)
	}
	d.canvas.Fill(color.Black)
	d.pacer.Reset()

	if d.guide != nil {
		p0, p1 := d.vp.Apply(d.guide.P0), d.vp.Apply(d.guide.P1)
		vector.StrokeLine(d.canvas, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), 1, d.guideCol, true)
	}
}

func (d *drawer) MoveTo(pt curve.Point) {
	d.pen = d.vp.Apply(pt)
}

func (d *drawer) LineTo(pt curve.Point) {
	to := d.vp.Apply(pt)
	vector.StrokeLine(d.canvas, float32(d.pen.X), float32(d.pen.Y), float32(to.X), float32(to.Y), d.lineWidth, d.col, true)
	d.pen = to
}

func (d *drawer) Draw(screen *ebiten.Image) {
	if d.canvas == nil {
		return
	}
	screen.DrawImage(d.canvas, nil)
}

func (d *drawer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width, d.height
}
