//go:build js && wasm

// webclient.go is a WASM client for the Koch snowflake server.
// It opens a live drawing stream and replays the received pen commands on a canvas.

package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"syscall/js"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	koch "github.com/marben/koch_snowflake"
)

const (
	canvasWidth  = 800
	canvasHeight = 600
)

// main reads the drawing parameters from the page URL, e.g.
// /draw.html?n=4&len=400&speed=8&color=00ffff, and streams the drawing.
func main() {
	logScreenf("Starting WASM web client...")

	loc := js.Global().Get("window").Get("location")
	q, err := url.ParseQuery(trimQuestionMark(loc.Get("search").String()))
	if err != nil {
		logFatalf("Failed to parse query: %v", err)
	}

	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	wsURL := fmt.Sprintf("%s://%s/ws/%s/%s/%s/%s", proto, loc.Get("host").String(),
		param(q, "n", "4"), param(q, "len", "400"), param(q, "speed", "8"), param(q, "color", "00ffff"))

	if err := draw(context.Background(), wsURL); err != nil {
		logFatalf("draw: %v", err)
	}
	logScreenf("Done.")

	// Prevent Go program from exiting
	select {}
}

// draw connects to the stream at wsURL and replays every command it receives.
func draw(ctx context.Context, wsURL string) error {
	logScreenf("Connecting to %s...", wsURL)
	c, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer c.CloseNow()

	var header koch.StreamHeader
	if err := wsjson.Read(ctx, c, &header); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	logScreenf("Drawing %d commands, clip line at y=%g", header.Total, header.YLimit)

	cv := initCanvas("myCanvas", canvasWidth, canvasHeight, "#000000")
	cv.vp = koch.NewViewport(header.Rect(), canvasWidth, canvasHeight, 20)
	cv.setStroke(header.Color, 1.5)

	for i := 0; i < header.Total; i++ {
		var sc koch.StreamCommand
		if err := wsjson.Read(ctx, c, &sc); err != nil {
			return fmt.Errorf("read command %d: %w", i, err)
		}
		koch.Replay(cv, []koch.Command{sc.Command()})
		hudSetProgress(i+1, header.Total)
	}

	c.Close(websocket.StatusNormalClosure, "")
	return nil
}

func param(q url.Values, key, def string) string {
	if v := q.Get(key); v != "" {
		return url.PathEscape(v)
	}
	return def
}

func trimQuestionMark(s string) string {
	if len(s) > 0 && s[0] == '?' {
		return s[1:]
	}
	return s
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetProgress shows how many commands were drawn so far.
func hudSetProgress(drawn, total int) {
	js.Global().Get("document").Call("getElementById", "progress").Set("textContent", fmt.Sprintf("%d / %d", drawn, total))
}
