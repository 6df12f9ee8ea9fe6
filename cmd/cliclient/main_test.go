package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExportURL(t *testing.T) {
	tests := []struct {
		base string
		opts exportOptions
		want string
	}{
		{"http://localhost:8080", exportOptions{}, "http://localhost:8080/export/4/400/00ffff"},
		{"http://example.com/koch/", exportOptions{format: "jpg", size: 256},
			"http://example.com/koch/export/4/400/00ffff?format=jpg&size=256"},
		{"http://localhost:8080", exportOptions{guide: "f00"}, "http://localhost:8080/export/4/400/00ffff?guide=f00"},
	}
	for _, tt := range tests {
		got, err := exportURL(tt.base, 4, 400, "00ffff", tt.opts)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("exportURL(%q, %+v) = %q, want %q", tt.base, tt.opts, got, tt.want)
		}
	}

	got, err := exportURL("http://localhost", 2, 12.5, "fff", exportOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "http://localhost/export/2/12.5/fff"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct{ explicit, out, want string }{
		{"", "fractal.png", "png"},
		{"", "out/snow.flake.jpg", "jpg"},
		{"gif", "fractal.png", "gif"},
		{"", "-", ""},
		{"", "noext", ""},
	}
	for _, tt := range tests {
		if got := formatFor(tt.explicit, tt.out); got != tt.want {
			t.Errorf("formatFor(%q, %q) = %q, want %q", tt.explicit, tt.out, got, tt.want)
		}
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/export/") {
			w.Write([]byte("PNGDATA"))
			return
		}
		http.Error(w, "no such route", http.StatusNotFound)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	n, err := download(context.Background(), srv.Client(), srv.URL+"/export/1/2/fff", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 || buf.String() != "PNGDATA" {
		t.Errorf("got %d bytes %q", n, buf.String())
	}

	_, err = download(context.Background(), srv.Client(), srv.URL+"/nope", &buf)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("got %v, want a 404 error", err)
	}
}
