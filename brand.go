// Package brand is the single source of truth for Molten Labs branding.
// It mirrors the TypeScript tokens in @moltenlabs/alloy so terminal
// tools and services stay consistent with the web.
//
// The token packages live under pkg/:
//
//	pkg/color      - RGB/RGBA primitives, hex parsing, blending
//	pkg/palette    - core palettes and scales
//	pkg/products   - Lair, Hearth and Alloy token sets
//	pkg/semantic   - status and feedback colors
//	pkg/spacing    - the 4px spacing scale
//	pkg/typography - font stacks and text styles
//	pkg/styles     - lipgloss styles for terminal UIs
//	pkg/term       - terminal color adapters
//	pkg/playground - interactive token browser component
package brand

// Brand metadata.
const (
	// Company is the company name.
	Company = "Molten Labs"

	// Tagline is the primary tagline.
	Tagline = "Let them cook"

	// Website is the website URL.
	Website = "https://molten.dev"

	// GitHub is the GitHub organization URL.
	GitHub = "https://github.com/moltenlabs"
)
