package render

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// ParseFormat maps a file extension ("png", "jpg", ...) to an image format.
// The empty string selects PNG.
func ParseFormat(ext string) (imaging.Format, error) {
	if ext == "" {
		return imaging.PNG, nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("format %q: %w", ext, err)
	}
	return f, nil
}

// ContentType returns the MIME type for f.
func ContentType(f imaging.Format) string {
	switch f {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.GIF:
		return "image/gif"
	case imaging.TIFF:
		return "image/tiff"
	case imaging.BMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}

// Extension returns the canonical file extension for f, without the dot.
func Extension(f imaging.Format) string {
	switch f {
	case imaging.JPEG:
		return "jpg"
	case imaging.GIF:
		return "gif"
	case imaging.TIFF:
		return "tiff"
	case imaging.BMP:
		return "bmp"
	default:
		return "png"
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f imaging.Format) error {
	if err := imaging.Encode(w, img, f, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("encode %s: %w", Extension(f), err)
	}
	return nil
}
