// Package spacing provides the spacing scale shared across all Molten
// Labs products. The scale sits on a 4px base unit with deliberate gaps
// for visual rhythm.
package spacing

// Base is the spacing unit in pixels.
const Base = 4

// Spacing scale values in pixels. The scale runs
// 0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24, 32, 40, 48, 64
// which keeps rhythm while allowing fine-grained control.
const (
	S0  = 0   // no spacing
	S1  = 4   // tiny
	S2  = 8   // extra small
	S3  = 12  // small
	S4  = 16  // medium-small
	S5  = 20  // medium
	S6  = 24  // medium-large
	S8  = 32  // large
	S10 = 40  // extra large
	S12 = 48  // 2x large
	S16 = 64  // 3x large
	S20 = 80  // 4x large
	S24 = 96  // 5x large
	S32 = 128 // 6x large
	S40 = 160 // 7x large
	S48 = 192 // 8x large
	S64 = 256 // 9x large
)

// Semantic spacing aliases.
const (
	Inline      = S1  // padding for inline elements
	ComponentSM = S2  // padding for small components (buttons, inputs)
	ComponentMD = S3  // padding for medium components
	ComponentLG = S4  // padding for large components
	GapSM       = S2  // gap between related items
	GapMD       = S4  // standard gap
	GapLG       = S6  // large gap
	Section     = S8  // section padding
	Page        = S16 // page margin
)

// byIndex maps scale indices to their pixel values.
var byIndex = map[int]int{
	0:  S0,
	1:  S1,
	2:  S2,
	3:  S3,
	4:  S4,
	5:  S5,
	6:  S6,
	8:  S8,
	10: S10,
	12: S12,
	16: S16,
	20: S20,
	24: S24,
	32: S32,
	40: S40,
	48: S48,
	64: S64,
}

// Get returns the pixel value for a scale index. Indices outside the
// scale fall back to the medium S4.
//
// Examples:
//
//	Get(4) // 16
//	Get(8) // 32
func Get(index int) int {
	if px, ok := byIndex[index]; ok {
		return px
	}
	return S4
}

// Units converts spacing units to pixels.
func Units(n int) int {
	return n * Base
}
