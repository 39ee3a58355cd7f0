package styles

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/moltenlabs/molten-brand/pkg/palette"
	"github.com/moltenlabs/molten-brand/pkg/products"
)

func TestLipgloss(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#F97316"), Lipgloss(palette.Primary))
	assert.Equal(t, lipgloss.Color("#7C3AED"), Lipgloss(products.Lair.Primary))

	// Translucent tokens project to their RGB channels.
	assert.Equal(t, lipgloss.Color("#F97316"), Lipgloss(palette.GlassBorderHover))
}

func TestAdaptive(t *testing.T) {
	ac := Adaptive(palette.ForgeBlack, palette.ForgeWhite)
	assert.Equal(t, "#0A0A0A", ac.Light)
	assert.Equal(t, "#FAFAFA", ac.Dark)
}

func TestScalesMirrorPalette(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#FFF7ED"), Molten50)
	assert.Equal(t, lipgloss.Color("#431407"), Molten950)
	assert.Equal(t, lipgloss.Color("#FFFFFF"), Neutral0)
	assert.Equal(t, lipgloss.Color("#0A0A0A"), Neutral950)

	assert.Equal(t, Molten500, ColorPrimary)
	assert.Equal(t, Neutral950, ColorBg)
	assert.Equal(t, Neutral700, ColorBorder)
}

func TestForProductAccent(t *testing.T) {
	tests := []struct {
		name   string
		accent lipgloss.Color
	}{
		{name: "lair", accent: LairPrimary},
		{name: "Hearth", accent: HearthPrimary},
		{name: "alloy", accent: AlloyPrimary},
		{name: "forge-unknown", accent: AlloyPrimary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := ForProduct(tt.name)
			assert.Equal(t, tt.accent, theme.Title.GetForeground())
			assert.Equal(t, tt.accent, theme.HelpKey.GetForeground())
			assert.Equal(t, tt.accent, theme.BannerTitle.GetForeground())
		})
	}
}

func TestDefaultThemeUsesHouseAccent(t *testing.T) {
	theme := Default()
	assert.Equal(t, ColorPrimary, theme.Title.GetForeground())
	assert.Equal(t, ColorSuccess, theme.Success.GetForeground())
	assert.Equal(t, ColorTextMuted, theme.Muted.GetForeground())
}

func TestRenderBadgePicksStyleByStatus(t *testing.T) {
	theme := Default()

	assert.Equal(t, theme.BadgeSuccess.Render("running"), theme.RenderBadge("running"))
	assert.Equal(t, theme.BadgeError.Render("failed"), theme.RenderBadge("failed"))
	assert.Equal(t, theme.BadgeWarning.Render("thinking"), theme.RenderBadge("thinking"))
	assert.Equal(t, theme.BadgePending.Render("spawning"), theme.RenderBadge("spawning"))
	assert.Equal(t, theme.BadgePending.Render("idle"), theme.RenderBadge("idle"))
	assert.Equal(t, theme.BadgeInfo.Render("paused"), theme.RenderBadge("paused"))

	// Matching is case-insensitive, like every lookup in this library.
	assert.Equal(t, theme.BadgeSuccess.Render("OK"), theme.RenderBadge("OK"))
}

func TestRenderHelpers(t *testing.T) {
	theme := ForProduct("lair")

	up := stripANSI(theme.RenderStatus("connected", true))
	assert.Contains(t, up, IconSuccess)
	assert.Contains(t, up, "connected")

	down := stripANSI(theme.RenderStatus("daemon", false))
	assert.Contains(t, down, IconError)

	help := stripANSI(theme.RenderKeyHelp("j/k", "navigate"))
	assert.Equal(t, "j/k navigate", help)

	item := stripANSI(theme.RenderListItem("molten.500", true))
	assert.Contains(t, item, IconBullet)
	assert.Contains(t, item, "molten.500")

	assert.Contains(t, stripANSI(theme.RenderError("boom")), IconError)
	assert.Contains(t, stripANSI(theme.RenderSuccess("done")), IconSuccess)
	assert.Contains(t, stripANSI(theme.RenderWarning("hot")), IconWarning)
	assert.Contains(t, stripANSI(theme.RenderInfo("note")), IconInfo)
}

func TestSwatch(t *testing.T) {
	got := stripANSI(Swatch(palette.Primary, 4))
	assert.Equal(t, strings.Repeat(IconSwatch, 4), got)

	// Width is clamped to at least one cell.
	assert.Equal(t, IconSwatch, stripANSI(Swatch(palette.Primary, 0)))
}

func TestIconsAreSingleGlyphs(t *testing.T) {
	icons := map[string]string{
		"success": IconSuccess,
		"error":   IconError,
		"warning": IconWarning,
		"info":    IconInfo,
		"pending": IconPending,
		"molten":  IconMolten,
		"lair":    IconLair,
		"hearth":  IconHearth,
		"alloy":   IconAlloy,
		"bullet":  IconBullet,
		"chevron": IconChevron,
		"swatch":  IconSwatch,
	}

	for name, icon := range icons {
		assert.Equal(t, 1, utf8.RuneCountInString(icon), "icon %s", name)
	}
}

func stripANSI(input string) string {
	ansiPattern := regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	return ansiPattern.ReplaceAllString(input, "")
}
