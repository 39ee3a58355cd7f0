// Package typography provides the font families, sizes, weights and line
// heights for consistent typography across Molten Labs products.
package typography

// Font family stacks.
const (
	// FamilySans is the primary sans-serif stack (Geist Sans).
	FamilySans = `"Geist Sans", system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`

	// FamilyMono is the monospace stack (Geist Mono).
	FamilyMono = `"Geist Mono", "SF Mono", Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace`

	// FamilyDisplay is the headline stack (Space Grotesk).
	FamilyDisplay = `"Space Grotesk", "Geist Sans", system-ui, -apple-system, sans-serif`

	// FamilySerif is the editorial stack for Hearth (Fraunces).
	FamilySerif = `"Fraunces", "Georgia", "Times New Roman", "Times", serif`
)

// Font size scale in pixels.
const (
	SizeTiny      = 12 // footnotes, legal
	SizeSmall     = 14 // captions, labels
	SizeBase      = 16 // body text
	SizeLarge     = 18 // large body
	SizeLead      = 20 // lead paragraph
	SizeH4        = 22 // subsection
	SizeH3        = 24
	SizeH2        = 28 // section headers
	SizeH1        = 36 // page titles
	SizeDisplay   = 48 // hero headlines
	SizeDisplayLG = 60
	SizeDisplayXL = 72
)

// Font weights.
const (
	WeightThin       = 100
	WeightExtraLight = 200
	WeightLight      = 300
	WeightRegular    = 400
	WeightMedium     = 500
	WeightSemiBold   = 600
	WeightBold       = 700
	WeightExtraBold  = 800
	WeightBlack      = 900
)

// Line height multipliers.
const (
	LineHeightTight   = 1.1   // headings
	LineHeightSnug    = 1.25  // subheadings
	LineHeightNormal  = 1.5   // body text
	LineHeightRelaxed = 1.625 // comfortable reading
	LineHeightLoose   = 2.0   // emphasis
)

// Letter spacing (tracking) adjustments in em units.
const (
	TrackingTighter = -0.025 // large headings
	TrackingTight   = -0.015 // headings
	TrackingNormal  = 0.0    // body text
	TrackingWide    = 0.025  // small caps, labels
	TrackingWider   = 0.05   // all caps
	TrackingWidest  = 0.1    // extreme emphasis
)

// TextStyle is a typography preset for a text style.
type TextStyle struct {
	Family        string  `json:"family" yaml:"family"`
	Size          int     `json:"size" yaml:"size"`
	Weight        int     `json:"weight" yaml:"weight"`
	LineHeight    float64 `json:"line_height" yaml:"line_height"`
	LetterSpacing float64 `json:"letter_spacing" yaml:"letter_spacing"`
}

// Pre-defined text style presets.
var (
	// Display is the hero heading style.
	Display = TextStyle{
		Family:        FamilyDisplay,
		Size:          SizeDisplay,
		Weight:        WeightBold,
		LineHeight:    LineHeightTight,
		LetterSpacing: TrackingTighter,
	}

	// H1 is the page title style.
	H1 = TextStyle{
		Family:        FamilySans,
		Size:          SizeH1,
		Weight:        WeightBold,
		LineHeight:    LineHeightTight,
		LetterSpacing: TrackingTight,
	}

	// H2 is the section header style.
	H2 = TextStyle{
		Family:        FamilySans,
		Size:          SizeH2,
		Weight:        WeightSemiBold,
		LineHeight:    LineHeightSnug,
		LetterSpacing: TrackingTight,
	}

	// H3 is the subsection header style.
	H3 = TextStyle{
		Family:        FamilySans,
		Size:          SizeH3,
		Weight:        WeightSemiBold,
		LineHeight:    LineHeightSnug,
		LetterSpacing: TrackingNormal,
	}

	// Body is the default text style.
	Body = TextStyle{
		Family:        FamilySans,
		Size:          SizeBase,
		Weight:        WeightRegular,
		LineHeight:    LineHeightNormal,
		LetterSpacing: TrackingNormal,
	}

	// Small is the caption and label style.
	Small = TextStyle{
		Family:        FamilySans,
		Size:          SizeSmall,
		Weight:        WeightRegular,
		LineHeight:    LineHeightNormal,
		LetterSpacing: TrackingNormal,
	}

	// Code is the monospace style.
	Code = TextStyle{
		Family:        FamilyMono,
		Size:          SizeSmall,
		Weight:        WeightRegular,
		LineHeight:    LineHeightRelaxed,
		LetterSpacing: TrackingNormal,
	}

	// Label is the small caps style.
	Label = TextStyle{
		Family:        FamilySans,
		Size:          SizeTiny,
		Weight:        WeightMedium,
		LineHeight:    LineHeightNormal,
		LetterSpacing: TrackingWide,
	}
)
