package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a hex color string cannot be parsed.
var ErrInvalidFormat = errors.New("invalid hex color")

// ParseHex parses a hex color string into an RGB color.
//
// The string may carry a leading # and is case-insensitive. Surrounding
// whitespace is ignored. At least six hex digits are required; anything
// past the first six is ignored.
//
// Errors wrap ErrInvalidFormat, so callers can test with errors.Is.
//
// Examples:
//
//	ParseHex("#F97316") // RGB{249, 115, 22}
//	ParseHex("f97316")  // RGB{249, 115, 22}
func ParseHex(s string) (RGB, error) {
	h := strings.TrimLeft(strings.TrimSpace(s), "#")

	if len(h) < 6 {
		return RGB{}, fmt.Errorf("%w %q: need at least 6 hex digits", ErrInvalidFormat, s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w %q: bad digits %q", ErrInvalidFormat, s, h[2*i:2*i+2])
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// FromHex parses a hex color string into a Color in the RGB form.
func FromHex(s string) (Color, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return Color{}, err
	}
	return rgb.Color(), nil
}

// MustHex is like FromHex but panics on error. Use it for static color
// tables; parse anything else with FromHex or ParseHex.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
