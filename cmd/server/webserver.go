package main

import (
	"bufio"
	"log"
	"net"
	"net/http"
	"time"
)

// webServer creates a server for the fractal routes. Everything else is
// served from staticDir.
func webServer(addr, staticDir string, fs *fractalServer) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /fractal/{iterations}/{length}/{speed}/{color}", fs.handlePoints)
	mux.HandleFunc("GET /koch/{iterations}/{length}/{speed}/{color}", fs.handlePoints)
	mux.HandleFunc("GET /export/{iterations}/{length}/{color}", fs.handleExport)
	mux.HandleFunc("GET /ws/{iterations}/{length}/{speed}/{color}", fs.handleStream)
	mux.HandleFunc("GET /status", fs.handleStatus)
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	return &http.Server{
		Addr:              addr,
		Handler:           logRequests(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// Hijack is needed by websocket.Accept.
func (sr *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	sr.status = http.StatusSwitchingProtocols
	return http.NewResponseController(sr.ResponseWriter).Hijack()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, sr.status, time.Since(start))
	})
}
