package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	koch "github.com/marben/koch_snowflake"
)

// streamTracker counts live drawing streams.
type streamTracker struct {
	active   int
	finished int
	m        sync.Mutex
}

func (st *streamTracker) inc() {
	st.m.Lock()
	st.active++
	a := st.active
	st.m.Unlock()

	log.Printf("streams: %d", a)
}

func (st *streamTracker) dec() {
	st.m.Lock()
	st.active--
	st.finished++
	a, f := st.active, st.finished
	st.m.Unlock()

	log.Printf("streams: %d, finished: %d", a, f)
}

func (st *streamTracker) counts() (active, finished int) {
	st.m.Lock()
	defer st.m.Unlock()
	return st.active, st.finished
}

type statusResponse struct {
	ActiveStreams   int `json:"active_streams"`
	FinishedStreams int `json:"finished_streams"`
	MaxOrder        int `json:"max_order"`
}

func (fs *fractalServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	var resp statusResponse
	resp.ActiveStreams, resp.FinishedStreams = fs.streams.counts()
	resp.MaxOrder = fs.params.MaxOrder

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode status: %v", err)
	}
}

// handleStream upgrades to a websocket and sends the pen commands of the
// fractal progressively, speed commands per tick.
func (fs *fractalServer) handleStream(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r, true)
	if err != nil {
		httpError(w, err)
		return
	}
	f, err := fs.build(req)
	if err != nil {
		httpError(w, err)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	fs.streams.inc()
	defer fs.streams.dec()

	header := koch.NewStreamHeader(f, "#"+req.hex, req.speed)
	if err := streamCommands(r.Context(), c, header, koch.Commands(f.Pairs), req.speed, fs.tick); err != nil {
		log.Printf("stream %s: %v", r.URL.Path, err)
		return
	}
	c.Close(websocket.StatusNormalClosure, "done")
}

// streamCommands writes header followed by cmds, batch commands every tick.
// A batch of zero or less sends everything at once.
func streamCommands(ctx context.Context, c *websocket.Conn, header koch.StreamHeader, cmds []koch.Command, batch int, tick time.Duration) error {
	if err := wsjson.Write(ctx, c, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if tick <= 0 {
		tick = time.Millisecond
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	pacer := koch.NewPacer(cmds, batch)
	for {
		for _, cmd := range pacer.Next() {
			if err := wsjson.Write(ctx, c, koch.NewStreamCommand(cmd)); err != nil {
				sent, _ := pacer.Progress()
				return fmt.Errorf("write command batch ending at %d: %w", sent, err)
			}
		}
		if pacer.Done() {
			return nil
		}
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticker.C:
		}
	}
}
