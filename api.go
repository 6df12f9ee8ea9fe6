package koch

import (
	"image"
	"image/color"

	"honnef.co/go/curve"
)

// Renderer rasterizes a command list whose coordinates lie within bounds.
type Renderer interface {
	Render(cmds []Command, bounds curve.Rect, col color.Color) (image.Image, error)
}

// Drawer consumes commands one at a time, the way a pen plotter or a turtle would.
type Drawer interface {
	MoveTo(pt curve.Point)
	LineTo(pt curve.Point)
}
