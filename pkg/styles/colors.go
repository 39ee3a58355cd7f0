// Package styles renders Molten Labs brand tokens through lipgloss for
// terminal UIs. The lipgloss values are derived from pkg/palette,
// pkg/products and pkg/semantic so the hex tables stay single-source.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/moltenlabs/molten-brand/pkg/color"
	"github.com/moltenlabs/molten-brand/pkg/palette"
	"github.com/moltenlabs/molten-brand/pkg/products"
	"github.com/moltenlabs/molten-brand/pkg/semantic"
)

// Lipgloss converts a brand color to a lipgloss terminal color.
// Translucent colors are projected to their RGB channels; terminal
// cells have no alpha to composite against.
func Lipgloss(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Adaptive pairs a light-background and a dark-background color so
// lipgloss can pick the right one for the detected terminal background.
func Adaptive(light, dark color.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light.Hex(), Dark: dark.Hex()}
}

// Brand colors as lipgloss values.
var (
	// Molten scale - the signature orange
	Molten50  = Lipgloss(palette.Molten50)
	Molten100 = Lipgloss(palette.Molten100)
	Molten200 = Lipgloss(palette.Molten200)
	Molten300 = Lipgloss(palette.Molten300)
	Molten400 = Lipgloss(palette.Molten400)
	Molten500 = Lipgloss(palette.Molten500)
	Molten600 = Lipgloss(palette.Molten600)
	Molten700 = Lipgloss(palette.Molten700)
	Molten800 = Lipgloss(palette.Molten800)
	Molten900 = Lipgloss(palette.Molten900)
	Molten950 = Lipgloss(palette.Molten950)

	// Neutral scale - zinc grays for text and surfaces
	Neutral0   = Lipgloss(palette.Neutral0)
	Neutral50  = Lipgloss(palette.Neutral50)
	Neutral100 = Lipgloss(palette.Neutral100)
	Neutral200 = Lipgloss(palette.Neutral200)
	Neutral300 = Lipgloss(palette.Neutral300)
	Neutral400 = Lipgloss(palette.Neutral400)
	Neutral500 = Lipgloss(palette.Neutral500)
	Neutral600 = Lipgloss(palette.Neutral600)
	Neutral700 = Lipgloss(palette.Neutral700)
	Neutral800 = Lipgloss(palette.Neutral800)
	Neutral900 = Lipgloss(palette.Neutral900)
	Neutral950 = Lipgloss(palette.Neutral950)

	// Product identities
	LairPrimary   = Lipgloss(products.Lair.Primary)
	HearthPrimary = Lipgloss(products.Hearth.Primary)
	AlloyPrimary  = Lipgloss(products.Alloy.Primary)

	// Semantic colors
	ColorPrimary   = Molten500
	ColorSecondary = Molten400
	ColorAccent    = Molten600
	ColorSuccess   = Lipgloss(semantic.Success)
	ColorWarning   = Lipgloss(semantic.Warning)
	ColorError     = Lipgloss(semantic.Error)
	ColorInfo      = Lipgloss(semantic.Info)

	// Text colors
	ColorText       = Lipgloss(palette.TextPrimary)
	ColorTextMuted  = Lipgloss(palette.TextMuted)
	ColorTextBright = Neutral0

	// Background colors
	ColorBg        = Lipgloss(palette.SurfaceBase)
	ColorBgSurface = Lipgloss(palette.SurfaceRaised)
	ColorBgMuted   = Lipgloss(palette.SurfaceOverlay)

	// Border colors
	ColorBorder      = Neutral700
	ColorBorderMuted = Neutral800
)
