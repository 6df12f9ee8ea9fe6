package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"honnef.co/go/curve"

	koch "github.com/marben/koch_snowflake"
)

var (
	addr      = flag.String("addr", ":8080", "HTTP listen address")
	staticDir = flag.String("static", "./static", "directory served at /")
	offset    = flag.Float64("offset", koch.DefaultParams.ClipOffset, "clip line distance below the middle of the curve")
	heading   = flag.Float64("heading", koch.DefaultParams.Heading, "heading of the first side, degrees")
	startX    = flag.Float64("start-x", koch.DefaultParams.Start.X, "x of the first point")
	startY    = flag.Float64("start-y", koch.DefaultParams.Start.Y, "y of the first point")
	maxOrder  = flag.Int("max-order", koch.DefaultParams.MaxOrder, "largest accepted iteration count")
	tick      = flag.Duration("tick", 16*time.Millisecond, "interval between batches of a live stream")
)

// main is the entry point for the Koch snowflake server.
func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	params := koch.DefaultParams
	params.ClipOffset = *offset
	params.Heading = *heading
	params.Start = curve.Pt(*startX, *startY)
	params.MaxOrder = *maxOrder

	fs := newFractalServer(params)
	fs.tick = *tick

	httpServer := webServer(*addr, *staticDir, fs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on http://localhost%s", *addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("httpServer: %w", err)
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
