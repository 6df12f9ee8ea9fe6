package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
)

var ErrColor = errors.New("color must be 3, 4, 6 or 8 hex digits")

// ParseColor parses a hex colour such as "0ff", "00ffff" or "#00ffff80".
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("%q: %w", s, ErrColor)
	}
	for _, c := range hex {
		if !isHexDigit(c) {
			return nil, fmt.Errorf("%q: %w", s, ErrColor)
		}
	}
	return gg.Hex(hex).Color(), nil
}

func isHexDigit(c rune) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
