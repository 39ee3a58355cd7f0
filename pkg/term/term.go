// Package term adapts brand colors to what the running terminal can
// actually display.
//
// Capability detection is delegated to termenv, so NO_COLOR,
// CLICOLOR_FORCE, COLORTERM and TERM are all honored. Colors degrade
// from truecolor through the 256-color cube down to plain text.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/moltenlabs/molten-brand/pkg/color"
)

var envProfile = sync.OnceValue(func() termenv.Profile {
	return termenv.EnvColorProfile()
})

// Profile returns the color profile of the attached terminal. The
// detection runs once and is cached for the life of the process.
func Profile() termenv.Profile {
	return envProfile()
}

// Termenv converts a brand color to a termenv truecolor value.
// Translucent tokens are projected to their RGB channels; terminal
// cells have no alpha to composite against.
func Termenv(c color.Color) termenv.Color {
	return termenv.RGBColor(c.Hex())
}

// Adapt converts a brand color and degrades it to the detected
// profile: truecolor terminals keep the exact channels, 256-color
// terminals get the nearest palette entry, and dumb terminals get no
// color at all.
func Adapt(c color.Color) termenv.Color {
	return Profile().Convert(Termenv(c))
}

// ANSI256 returns the nearest xterm-256 palette index for a brand
// color.
func ANSI256(c color.Color) uint8 {
	v, ok := termenv.ANSI256.Convert(Termenv(c)).(termenv.ANSI256Color)
	if !ok {
		return 7 // white
	}
	return uint8(v)
}

// Tcell converts a brand color for tcell-based UIs such as the Lair
// terminal.
func Tcell(c color.Color) tcell.Color {
	rgb := c.ToRGB()
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
