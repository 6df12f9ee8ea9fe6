package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/disintegration/imaging"

	koch "github.com/marben/koch_snowflake"
	"github.com/marben/koch_snowflake/render"
)

const (
	minExportSize = 16
	maxExportSize = 4096
)

// errBadRequest marks errors caused by the client's input.
var errBadRequest = errors.New("bad request")

type fractalServer struct {
	params  koch.Params
	tick    time.Duration
	streams streamTracker
}

func newFractalServer(params koch.Params) *fractalServer {
	return &fractalServer{
		params: params,
		tick:   16 * time.Millisecond,
	}
}

// fractalRequest holds the decoded path parameters of a fractal route.
type fractalRequest struct {
	order  int
	length float64
	speed  int
	hex    string
	color  color.Color
}

func parseRequest(r *http.Request, withSpeed bool) (fractalRequest, error) {
	var req fractalRequest
	var err error

	if req.order, err = strconv.Atoi(r.PathValue("iterations")); err != nil {
		return req, fmt.Errorf("%w: iterations %q is not an integer", errBadRequest, r.PathValue("iterations"))
	}
	if req.length, err = strconv.ParseFloat(r.PathValue("length"), 64); err != nil {
		return req, fmt.Errorf("%w: length %q is not a number", errBadRequest, r.PathValue("length"))
	}
	if withSpeed {
		if req.speed, err = strconv.Atoi(r.PathValue("speed")); err != nil {
			return req, fmt.Errorf("%w: speed %q is not an integer", errBadRequest, r.PathValue("speed"))
		}
	}
	req.hex = r.PathValue("color")
	if req.color, err = render.ParseColor(req.hex); err != nil {
		return req, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return req, nil
}

// build validates and generates the fractal for req.
func (fs *fractalServer) build(req fractalRequest) (koch.Fractal, error) {
	f, err := fs.params.Build(req.order, req.length)
	if err != nil {
		return f, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return f, nil
}

func httpError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBadRequest) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("internal error: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

type pointsResponse struct {
	Points  [][2]float64 `json:"points"`
	Rapidez int          `json:"rapidez"`
	Color   string       `json:"color"`
}

// handlePoints returns the clipped point pairs as JSON for client-side drawing.
func (fs *fractalServer) handlePoints(w http.ResponseWriter, r *http.Request) {
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

	resp := pointsResponse{
		Points:  make([][2]float64, len(f.Pairs)),
		Rapidez: req.speed,
		Color:   "#" + req.hex,
	}
	for i, pt := range f.Pairs {
		resp.Points[i] = [2]float64{pt.X, pt.Y}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode points: %v", err)
	}
}

// handleExport renders the clipped curve on black and returns it as a download.
func (fs *fractalServer) handleExport(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r, false)
	if err != nil {
		httpError(w, err)
		return
	}
	format, size, guide, err := parseExportQuery(r)
	if err != nil {
		httpError(w, err)
		return
	}
	f, err := fs.build(req)
	if err != nil {
		httpError(w, err)
		return
	}

	rd := render.Renderer{
		Width:       size,
		Height:      size,
		Margin:      render.DefaultMargin,
		LineWidth:   render.DefaultLineWidth,
		Supersample: 2,
	}
	img, err := rd.RenderFractal(f, req.color, guide)
	if err != nil {
		httpError(w, fmt.Errorf("render: %w", err))
		return
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, img, format); err != nil {
		httpError(w, err)
		return
	}

	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "fractal."+render.Extension(format)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write export: %v", err)
	}
}

// parseExportQuery reads the optional format, size and guide query parameters.
func parseExportQuery(r *http.Request) (imaging.Format, int, color.Color, error) {
	q := r.URL.Query()

	format, err := render.ParseFormat(q.Get("format"))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %w", errBadRequest, err)
	}

	size := render.DefaultSize
	if s := q.Get("size"); s != "" {
		size, err = strconv.Atoi(s)
		if err != nil || size < minExportSize || size > maxExportSize {
			return 0, 0, nil, fmt.Errorf("%w: size %q must be an integer in [%d, %d]", errBadRequest, s, minExportSize, maxExportSize)
		}
	}

	var guide color.Color
	if g := q.Get("guide"); g != "" {
		if guide, err = render.ParseColor(g); err != nil {
			return 0, 0, nil, fmt.Errorf("%w: guide: %w", errBadRequest, err)
		}
	}
	return format, size, guide, nil
}
