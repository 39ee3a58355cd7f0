// Package products provides the product-specific design tokens. Each
// Molten Labs product has its own visual identity while sharing the core
// brand DNA.
package products

import (
	"strings"

	"github.com/moltenlabs/molten-brand/pkg/color"
)

// Meta describes a product's identity.
type Meta struct {
	Name        string `json:"name" yaml:"name"`
	Tagline     string `json:"tagline" yaml:"tagline"`
	Description string `json:"description" yaml:"description"`
}

// LairTokens is the token set for Lair, built around the mystical
// Goblin Purple theme.
type LairTokens struct {
	Primary   color.Color  `json:"primary" yaml:"primary"`
	Secondary color.Color  `json:"secondary" yaml:"secondary"`
	Accent    color.Color  `json:"accent" yaml:"accent"`
	Terminal  LairTerminal `json:"terminal" yaml:"terminal"`
	Goblin    LairGoblin   `json:"goblin" yaml:"goblin"`
	Surface   LairSurface  `json:"surface" yaml:"surface"`
	Meta      Meta         `json:"meta" yaml:"meta"`
}

// LairTerminal holds the terminal-specific colors.
type LairTerminal struct {
	Background color.Color `json:"background" yaml:"background"`
	Foreground color.Color `json:"foreground" yaml:"foreground"`
	Cursor     color.Color `json:"cursor" yaml:"cursor"`
	Selection  color.Color `json:"selection" yaml:"selection"`
}

// LairGoblin holds the goblin effect colors.
type LairGoblin struct {
	Primary color.Color `json:"primary" yaml:"primary"`
	Glow    color.Color `json:"glow" yaml:"glow"`
	Shadow  color.Color `json:"shadow" yaml:"shadow"`
	Pulse   color.Color `json:"pulse" yaml:"pulse"`
}

// LairSurface holds the surface colors for Lair UI.
type LairSurface struct {
	Base        color.Color `json:"base" yaml:"base"`
	Raised      color.Color `json:"raised" yaml:"raised"`
	Tinted      color.Color `json:"tinted" yaml:"tinted"`
	Border      color.Color `json:"border" yaml:"border"`
	BorderHover color.Color `json:"border_hover" yaml:"border_hover"`
}

// Lair is the GPU-rendered terminal and multi-agent orchestration
// platform: the terminal where goblins ship code.
var Lair = LairTokens{
	Primary:   color.FromRGB(124, 58, 237),  // #7C3AED goblin purple
	Secondary: color.FromRGB(167, 139, 250), // #A78BFA purple light
	Accent:    color.FromRGB(91, 33, 182),   // #5B21B6 purple dark
	Terminal: LairTerminal{
		Background: color.FromRGB(15, 15, 26),        // #0F0F1A cave dark
		Foreground: color.FromRGB(228, 228, 231),     // #E4E4E7
		Cursor:     color.FromRGB(124, 58, 237),      // #7C3AED
		Selection:  color.FromRGBA(124, 58, 237, 77), // ~30% opacity
	},
	Goblin: LairGoblin{
		Primary: color.FromRGB(124, 58, 237),       // #7C3AED
		Glow:    color.FromRGBA(124, 58, 237, 102), // ~40% opacity
		Shadow:  color.FromRGBA(124, 58, 237, 51),  // ~20% opacity
		Pulse:   color.FromRGBA(124, 58, 237, 153), // ~60% opacity
	},
	Surface: LairSurface{
		Base:        color.FromRGB(15, 15, 26),         // #0F0F1A
		Raised:      color.FromRGB(26, 26, 46),         // #1A1A2E
		Tinted:      color.FromRGB(37, 37, 56),         // #252538 purple tint
		Border:      color.FromRGBA(124, 58, 237, 51),  // ~20% opacity
		BorderHover: color.FromRGBA(124, 58, 237, 102), // ~40% opacity
	},
	Meta: Meta{
		Name:        "Lair",
		Tagline:     "The terminal where goblins ship code",
		Description: "GPU-rendered terminal and multi-agent orchestration platform",
	},
}

// HearthTokens is the token set for Hearth. Iron Blue gives it a
// trustworthy, editorial feel.
type HearthTokens struct {
	Primary   color.Color     `json:"primary" yaml:"primary"`
	Secondary color.Color     `json:"secondary" yaml:"secondary"`
	Accent    color.Color     `json:"accent" yaml:"accent"`
	Editorial HearthEditorial `json:"editorial" yaml:"editorial"`
	Content   HearthContent   `json:"content" yaml:"content"`
	Meta      Meta            `json:"meta" yaml:"meta"`
}

// HearthEditorial holds the editorial text colors.
type HearthEditorial struct {
	Text      color.Color `json:"text" yaml:"text"`
	Secondary color.Color `json:"secondary" yaml:"secondary"`
	Tertiary  color.Color `json:"tertiary" yaml:"tertiary"`
	Border    color.Color `json:"border" yaml:"border"`
}

// HearthContent holds the content surface colors.
type HearthContent struct {
	Background color.Color `json:"background" yaml:"background"`
	Card       color.Color `json:"card" yaml:"card"`
	CardHover  color.Color `json:"card_hover" yaml:"card_hover"`
	Border     color.Color `json:"border" yaml:"border"`
}

// Hearth is the content-first editorial platform for the Molten Labs
// community.
var Hearth = HearthTokens{
	Primary:   color.FromRGB(59, 130, 246),  // #3B82F6 iron blue
	Secondary: color.FromRGB(96, 165, 250),  // #60A5FA blue light
	Accent:    color.FromRGB(37, 99, 235),   // #2563EB blue dark
	Editorial: HearthEditorial{
		Text:      color.FromRGB(229, 229, 229), // #E5E5E5
		Secondary: color.FromRGB(163, 163, 163), // #A3A3A3
		Tertiary:  color.FromRGB(82, 82, 82),    // #525252
		Border:    color.FromRGB(38, 38, 38),    // #262626
	},
	Content: HearthContent{
		Background: color.FromRGB(10, 10, 10), // #0A0A0A
		Card:       color.FromRGB(17, 17, 17), // #111111
		CardHover:  color.FromRGB(22, 22, 22), // #161616
		Border:     color.FromRGB(38, 38, 38), // #262626
	},
	Meta: Meta{
		Name:        "Hearth",
		Tagline:     "The warm center where the community gathers",
		Description: "Content marketing platform and community hub",
	},
}

// AlloyTokens is the token set for Alloy. It uses Molten Orange as its
// primary color.
type AlloyTokens struct {
	Primary   color.Color `json:"primary" yaml:"primary"`
	Secondary color.Color `json:"secondary" yaml:"secondary"`
	Accent    color.Color `json:"accent" yaml:"accent"`
	System    AlloySystem `json:"system" yaml:"system"`
	Glass     AlloyGlass  `json:"glass" yaml:"glass"`
	Meta      Meta        `json:"meta" yaml:"meta"`
}

// AlloySystem holds the system surface colors.
type AlloySystem struct {
	Primary color.Color `json:"primary" yaml:"primary"`
	Neutral color.Color `json:"neutral" yaml:"neutral"`
	Surface color.Color `json:"surface" yaml:"surface"`
}

// AlloyGlass holds the glass effects for Alloy.
type AlloyGlass struct {
	Background      color.Color `json:"background" yaml:"background"`
	BackgroundHover color.Color `json:"background_hover" yaml:"background_hover"`
	Border          color.Color `json:"border" yaml:"border"`
	BorderHover     color.Color `json:"border_hover" yaml:"border_hover"`
}

// Alloy is the official design system for Molten Labs, the foundation
// for all products.
var Alloy = AlloyTokens{
	Primary:   color.FromRGB(249, 115, 22), // #F97316 molten orange
	Secondary: color.FromRGB(251, 146, 60), // #FB923C orange light
	Accent:    color.FromRGB(234, 88, 12),  // #EA580C orange dark
	System: AlloySystem{
		Primary: color.FromRGB(249, 115, 22),  // #F97316
		Neutral: color.FromRGB(113, 113, 122), // #71717A
		Surface: color.FromRGB(24, 24, 27),    // #18181B
	},
	Glass: AlloyGlass{
		Background:      color.FromRGBA(255, 255, 255, 8),  // ~3%
		BackgroundHover: color.FromRGBA(249, 115, 22, 13),  // ~5%
		Border:          color.FromRGBA(255, 255, 255, 15), // ~6%
		BorderHover:     color.FromRGBA(249, 115, 22, 77),  // ~30%
	},
	Meta: Meta{
		Name:        "Alloy",
		Tagline:     "Components forged together",
		Description: "The official design system for Molten Labs",
	},
}

// PrimaryByName returns a product's primary color. The name is matched
// case-insensitively; unknown products fall back to Alloy.
//
// Examples:
//
//	PrimaryByName("lair")   // goblin purple
//	PrimaryByName("HEARTH") // iron blue
func PrimaryByName(name string) color.Color {
	switch strings.ToLower(name) {
	case "lair":
		return Lair.Primary
	case "hearth":
		return Hearth.Primary
	default:
		return Alloy.Primary
	}
}

// TaglineByName returns a product's tagline with the same matching and
// fallback as PrimaryByName.
func TaglineByName(name string) string {
	switch strings.ToLower(name) {
	case "lair":
		return Lair.Meta.Tagline
	case "hearth":
		return Hearth.Meta.Tagline
	default:
		return Alloy.Meta.Tagline
	}
}
