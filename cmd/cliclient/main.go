// cliclient downloads a rendered Koch snowflake from a running server and
// saves it to a file, or writes it to stdout when the output is "-".

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

var (
	server  = flag.String("server", "http://localhost:8080", "Koch server base URL")
	order   = flag.Int("n", 4, "iterations")
	length  = flag.Float64("len", 400, "initial segment length")
	color   = flag.String("color", "00ffff", "stroke colour, hex without #")
	size    = flag.Int("size", 0, "square image size in pixels, 0 for the server default")
	format  = flag.String("format", "", "png, jpg, gif, tiff or bmp; derived from -out when empty")
	guide   = flag.String("guide", "", "draw the clip line in this hex colour")
	out     = flag.String("out", "fractal.png", "destination file, - for stdout")
	timeout = flag.Duration("timeout", time.Minute, "request timeout")
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run asks the server for the rendered image and saves it.
func run() error {
	u, err := exportURL(*server, *order, *length, *color, exportOptions{
		format: formatFor(*format, *out),
		size:   *size,
		guide:  *guide,
	})
	if err != nil {
		return err
	}

	dst, closeDst, err := destination(*out)
	if err != nil {
		return err
	}
	defer closeDst()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Printf("Requesting %s", u)
	n, err := download(ctx, http.DefaultClient, u, dst)
	if err != nil {
		return err
	}

	if *out != pipeName {
		log.Printf("Saved %d bytes to %q", n, *out)
	}
	return nil
}

type exportOptions struct {
	format string
	size   int
	guide  string
}

// exportURL builds the /export URL for the given parameters.
func exportURL(base string, order int, length float64, color string, opts exportOptions) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("server url: %w", err)
	}
	u = u.JoinPath("export", strconv.Itoa(order), strconv.FormatFloat(length, 'g', -1, 64), color)

	q := url.Values{}
	if opts.format != "" {
		q.Set("format", opts.format)
	}
	if opts.size > 0 {
		q.Set("size", strconv.Itoa(opts.size))
	}
	if opts.guide != "" {
		q.Set("guide", opts.guide)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// formatFor returns the explicit format, or the one implied by the output file name.
func formatFor(explicit, out string) string {
	if explicit != "" || out == pipeName {
		return explicit
	}
	return strings.TrimPrefix(filepath.Ext(out), ".")
}

// destination opens the output file, refusing to write binary data to a terminal.
func destination(out string) (io.Writer, func(), error) {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(out)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("close %q: %v", out, err)
		}
	}, nil
}

// download copies the body of a successful GET of u into dst.
func download(ctx context.Context, client *http.Client, u string, dst io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("server: %s: %s", resp.Status, msg)
	}

	n, err := io.Copy(dst, resp.Body)
	if err != nil {
		return n, fmt.Errorf("read image: %w", err)
	}
	return n, nil
}
