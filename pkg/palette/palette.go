// Package palette contains the foundational color palettes shared across
// all Molten Labs products.
package palette

import (
	"github.com/moltenlabs/molten-brand/pkg/color"
)

// Forge brand colors, the parent company palette.
var (
	ForgeBlack  = color.FromRGB(10, 10, 10)    // #0A0A0A
	ForgeSteel  = color.FromRGB(113, 113, 122) // #71717A
	ForgeWhite  = color.FromRGB(250, 250, 250) // #FAFAFA
	ForgeMolten = color.FromRGB(249, 115, 22)  // #F97316
	ForgeEmber  = color.FromRGB(239, 68, 68)   // #EF4444
	ForgeIron   = color.FromRGB(59, 130, 246)  // #3B82F6
)

// Molten orange scale, the primary brand color.
var (
	Molten50  = color.FromRGB(255, 247, 237) // #FFF7ED
	Molten100 = color.FromRGB(255, 237, 213) // #FFEDD5
	Molten200 = color.FromRGB(254, 215, 170) // #FED7AA
	Molten300 = color.FromRGB(253, 186, 116) // #FDBA74
	Molten400 = color.FromRGB(251, 146, 60)  // #FB923C
	Molten500 = color.FromRGB(249, 115, 22)  // #F97316
	Molten600 = color.FromRGB(234, 88, 12)   // #EA580C
	Molten700 = color.FromRGB(194, 65, 12)   // #C2410C
	Molten800 = color.FromRGB(154, 52, 18)   // #9A3412
	Molten900 = color.FromRGB(124, 45, 18)   // #7C2D12
	Molten950 = color.FromRGB(67, 20, 7)     // #431407
)

// Primary is the brand color, an alias for Molten500.
var Primary = Molten500

// Neutral gray scale for text, borders and backgrounds.
var (
	Neutral0   = color.FromRGB(255, 255, 255) // #FFFFFF
	Neutral50  = color.FromRGB(250, 250, 250) // #FAFAFA
	Neutral100 = color.FromRGB(244, 244, 245) // #F4F4F5
	Neutral200 = color.FromRGB(228, 228, 231) // #E4E4E7
	Neutral300 = color.FromRGB(212, 212, 216) // #D4D4D8
	Neutral400 = color.FromRGB(161, 161, 170) // #A1A1AA
	Neutral500 = color.FromRGB(113, 113, 122) // #71717A
	Neutral600 = color.FromRGB(82, 82, 91)    // #52525B
	Neutral700 = color.FromRGB(63, 63, 70)    // #3F3F46
	Neutral800 = color.FromRGB(39, 39, 42)    // #27272A
	Neutral900 = color.FromRGB(24, 24, 27)    // #18181B
	Neutral950 = color.FromRGB(10, 10, 10)    // #0A0A0A
)

// Surface colors for dark mode UI.
var (
	SurfaceBase    = color.FromRGB(10, 10, 10) // #0A0A0A
	SurfaceRaised  = color.FromRGB(24, 24, 27) // #18181B
	SurfaceOverlay = color.FromRGB(39, 39, 42) // #27272A
	SurfaceMuted   = color.FromRGB(63, 63, 70) // #3F3F46
)

// Text colors.
var (
	TextPrimary   = color.FromRGB(250, 250, 250) // #FAFAFA
	TextSecondary = color.FromRGB(161, 161, 170) // #A1A1AA
	TextMuted     = color.FromRGB(113, 113, 122) // #71717A
	TextInverse   = color.FromRGB(10, 10, 10)    // #0A0A0A
	TextBrand     = color.FromRGB(249, 115, 22)  // #F97316
)

// Glass transparency effects.
var (
	GlassBackground      = color.FromRGBA(255, 255, 255, 8)  // ~3% white
	GlassBackgroundHover = color.FromRGBA(249, 115, 22, 13)  // ~5% molten
	GlassBorder          = color.FromRGBA(255, 255, 255, 15) // ~6% white
	GlassBorderHover     = color.FromRGBA(249, 115, 22, 77)  // ~30% molten
)

// neutralByStep maps scale steps to their neutral colors.
var neutralByStep = map[int]color.Color{
	0:   Neutral0,
	50:  Neutral50,
	100: Neutral100,
	200: Neutral200,
	300: Neutral300,
	400: Neutral400,
	500: Neutral500,
	600: Neutral600,
	700: Neutral700,
	800: Neutral800,
	900: Neutral900,
	950: Neutral950,
}

// moltenByStep maps scale steps to their molten colors.
var moltenByStep = map[int]color.Color{
	50:  Molten50,
	100: Molten100,
	200: Molten200,
	300: Molten300,
	400: Molten400,
	500: Molten500,
	600: Molten600,
	700: Molten700,
	800: Molten800,
	900: Molten900,
	950: Molten950,
}

// NeutralScale returns the neutral color for a scale step (0 - 950).
// Unknown steps fall back to the mid gray Neutral500.
func NeutralScale(step int) color.Color {
	if c, ok := neutralByStep[step]; ok {
		return c
	}
	return Neutral500
}

// MoltenScale returns the molten color for a scale step (50 - 950).
// Unknown steps fall back to the primary Molten500.
func MoltenScale(step int) color.Color {
	if c, ok := moltenByStep[step]; ok {
		return c
	}
	return Molten500
}
