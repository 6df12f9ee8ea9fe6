//go:build js && wasm

package main

import (
	"syscall/js"

	"honnef.co/go/curve"

	koch "github.com/marben/koch_snowflake"
)

// canvas draws pen commands onto an HTML canvas. It implements koch.Drawer.
type canvas struct {
	ctx js.Value
	vp  koch.Viewport
}

// initCanvas sizes the canvas element and fills it with the background colour.
func initCanvas(id string, width, height int, background string) canvas {
	doc := js.Global().Get("document")
	el := doc.Call("getElementById", id)

	el.Set("width", width)
	el.Set("height", height)

	ctx := el.Call("getContext", "2d")
	ctx.Set("fillStyle", background)
	ctx.Call("fillRect", 0, 0, width, height)
	ctx.Set("lineCap", "round")
	return canvas{ctx: ctx}
}

func (c canvas) setStroke(color string, width float64) {
	c.ctx.Set("strokeStyle", color)
	c.ctx.Set("lineWidth", width)
}

func (c canvas) MoveTo(pt curve.Point) {
	p := c.vp.Apply(pt)
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", p.X, p.Y)
}

func (c canvas) LineTo(pt curve.Point) {
	p := c.vp.Apply(pt)
	c.ctx.Call("lineTo", p.X, p.Y)
	c.ctx.Call("stroke")
}
