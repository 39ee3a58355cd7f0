// Package color provides the core color types of the Molten Labs brand
// system: 8-bit RGB and RGBA values and a Color union over the two.
package color

import (
	"fmt"
	"math"
)

// RGB is a solid color with 8-bit components.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// NewRGB creates a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Hex formats the color as a hex string with # prefix.
//
// Examples:
//
//	NewRGB(249, 115, 22).Hex() // "#F97316"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ToRGBA converts to an RGBA color with full opacity.
func (c RGB) ToRGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// WithAlpha converts to an RGBA color with the given opacity (0.0 - 1.0).
// Opacity outside that range is clamped.
func (c RGB) WithAlpha(alpha float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(alpha) * 255.0)}
}

// Normalized returns the components as floating-point values (0.0 - 1.0).
func (c RGB) Normalized() (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// Color wraps the value in the RGB form of Color.
func (c RGB) Color() Color {
	return FromRGB(c.R, c.G, c.B)
}

// RGBA implements the image/color.Color interface. The color is fully
// opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String formats the color as "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA is a color with an 8-bit alpha component. Alpha 0 is fully
// transparent, 255 fully opaque.
type RGBA struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// NewRGBA creates a new RGBA color.
func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ToRGB converts to an RGB color, discarding alpha.
func (c RGBA) ToRGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Alpha returns the alpha as a normalized value (0.0 - 1.0).
func (c RGBA) Alpha() float64 {
	return float64(c.A) / 255.0
}

// CSS formats the color in CSS rgba() notation.
//
// Examples:
//
//	NewRGBA(124, 58, 237, 77).CSS() // "rgba(124, 58, 237, 0.30)"
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, c.Alpha())
}

// Color wraps the value in the RGBA form of Color.
func (c RGBA) Color() Color {
	return FromRGBA(c.R, c.G, c.B, c.A)
}

// RGBA implements the image/color.Color interface with the usual
// alpha-premultiplied components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return r, g, b, a
}

// String formats the color in CSS rgba() notation.
func (c RGBA) String() string {
	return c.CSS()
}

type form uint8

const (
	formRGB form = iota
	formRGBA
)

// Color is a color that is either RGB or RGBA. The zero value is opaque
// black in the RGB form.
//
// Color values are comparable: two colors are equal only when they hold
// the same form and the same components. The RGB form keeps its alpha
// byte at zero so constructed values compare equal to the zero value.
type Color struct {
	form       form
	r, g, b, a uint8
}

// FromRGB creates a Color in the RGB form.
func FromRGB(r, g, b uint8) Color {
	return Color{form: formRGB, r: r, g: g, b: b}
}

// FromRGBA creates a Color in the RGBA form.
func FromRGBA(r, g, b, a uint8) Color {
	return Color{form: formRGBA, r: r, g: g, b: b, a: a}
}

// Transparent, Black and White are shared by every product palette.
var (
	Transparent = FromRGBA(0, 0, 0, 0)
	Black       = FromRGB(0, 0, 0)
	White       = FromRGB(255, 255, 255)
)

// Hex formats the RGB components as a hex string with # prefix. Alpha is
// never encoded.
func (c Color) Hex() string {
	return c.ToRGB().Hex()
}

// ToRGB returns the RGB components, discarding alpha if present.
func (c Color) ToRGB() RGB {
	return RGB{R: c.r, G: c.g, B: c.b}
}

// ToRGBA returns the RGBA components. The RGB form maps to full opacity.
func (c Color) ToRGBA() RGBA {
	if c.form == formRGBA {
		return RGBA{R: c.r, G: c.g, B: c.b, A: c.a}
	}
	return RGBA{R: c.r, G: c.g, B: c.b, A: 255}
}

// WithAlpha returns the color in the RGBA form with the given opacity
// (0.0 - 1.0) applied to its RGB components. Any existing alpha is
// discarded first.
func (c Color) WithAlpha(alpha float64) Color {
	return c.ToRGB().WithAlpha(alpha).Color()
}

// IsRGBA reports whether the color carries an alpha component.
func (c Color) IsRGBA() bool {
	return c.form == formRGBA
}

// RGBA implements the image/color.Color interface for the active form.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c.form == formRGBA {
		return c.ToRGBA().RGBA()
	}
	return c.ToRGB().RGBA()
}

// String formats the color after its active form, either "rgb(r, g, b)"
// or "rgba(r, g, b, a)".
func (c Color) String() string {
	if c.form == formRGBA {
		return c.ToRGBA().String()
	}
	return c.ToRGB().String()
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
