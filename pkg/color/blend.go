package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lighten blends the color toward white by t (0.0 - 1.0). The result is
// in the RGB form; re-apply opacity with WithAlpha if needed.
func (c Color) Lighten(t float64) Color {
	return c.blend(colorful.Color{R: 1, G: 1, B: 1}, t)
}

// Darken blends the color toward black by t (0.0 - 1.0). The result is
// in the RGB form.
func (c Color) Darken(t float64) Color {
	return c.blend(colorful.Color{}, t)
}

// Mix blends the color toward other by t (0.0 - 1.0). t = 0 keeps the
// receiver's RGB components, t = 1 lands on other's. The result is in
// the RGB form.
func (c Color) Mix(other Color, t float64) Color {
	return c.blend(other.colorful(), t)
}

func (c Color) blend(target colorful.Color, t float64) Color {
	r, g, b := c.colorful().BlendRgb(target, clamp01(t)).RGB255()
	return FromRGB(r, g, b)
}

func (c Color) colorful() colorful.Color {
	r, g, b := c.ToRGB().Normalized()
	return colorful.Color{R: r, G: g, B: b}
}
