package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moltenlabs/molten-brand/pkg/color"
	"github.com/moltenlabs/molten-brand/pkg/products"
)

// Theme is a set of composed styles built around one product accent.
// Every product shares the neutral surfaces, text colors and semantic
// statuses; only the primary accent changes between them.
type Theme struct {
	// Text styles
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Heading   lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Badge styles (compact status indicators)
	BadgeSuccess lipgloss.Style
	BadgeError   lipgloss.Style
	BadgeWarning lipgloss.Style
	BadgeInfo    lipgloss.Style
	BadgePending lipgloss.Style

	// List styles
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListBullet       lipgloss.Style

	// Box/Container styles
	Box          lipgloss.Style
	BoxHighlight lipgloss.Style

	// Banner/Header styles
	Banner      lipgloss.Style
	BannerTitle lipgloss.Style

	// Help styles
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// New builds a Theme accented with the given primary color.
func New(primary lipgloss.Color) Theme {
	return Theme{
		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText),

		Body: lipgloss.NewStyle().
			Foreground(ColorText),

		Muted: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		Highlight: lipgloss.NewStyle().
			Foreground(primary),

		// Status styles
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Info: lipgloss.NewStyle().
			Foreground(ColorInfo),

		// Badge styles
		BadgeSuccess: lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorSuccess).
			Padding(0, 1),

		BadgeError: lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorError).
			Padding(0, 1),

		BadgeWarning: lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorWarning).
			Padding(0, 1),

		BadgeInfo: lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorInfo).
			Padding(0, 1),

		BadgePending: lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorTextMuted).
			Padding(0, 1),

		// List styles
		ListItem: lipgloss.NewStyle().
			Foreground(ColorText).
			PaddingLeft(2),

		ListItemSelected: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(2),

		ListBullet: lipgloss.NewStyle().
			Foreground(primary),

		// Box/Container styles
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),

		BoxHighlight: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		// Banner/Header styles
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 2),

		BannerTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		// Help styles
		HelpKey: lipgloss.NewStyle().
			Foreground(primary),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorTextMuted),
	}
}

// Default returns the house theme, accented with Molten Orange.
func Default() Theme {
	return New(ColorPrimary)
}

// ForProduct returns the theme accented with the named product's
// primary color. Matching is case-insensitive; unknown names get the
// Alloy accent, same as products.PrimaryByName.
func ForProduct(name string) Theme {
	return New(Lipgloss(products.PrimaryByName(name)))
}

// Render helpers for common patterns.

// RenderStatus returns a styled status indicator with icon.
func (t Theme) RenderStatus(status string, ok bool) string {
	if ok {
		return t.Success.Render(IconSuccess + " " + status)
	}
	return t.Error.Render(IconError + " " + status)
}

// RenderBadge returns a styled badge for the given status word.
// The mapping covers generic statuses and the agent lifecycle.
func (t Theme) RenderBadge(status string) string {
	switch strings.ToLower(status) {
	case "success", "running", "complete", "ok", "active":
		return t.BadgeSuccess.Render(status)
	case "error", "failed", "stopped":
		return t.BadgeError.Render(status)
	case "warning", "thinking", "degraded":
		return t.BadgeWarning.Render(status)
	case "pending", "spawning", "starting", "idle":
		return t.BadgePending.Render(status)
	default:
		return t.BadgeInfo.Render(status)
	}
}

// RenderKeyHelp returns formatted key binding help text.
func (t Theme) RenderKeyHelp(key, desc string) string {
	return t.HelpKey.Render(key) + " " + t.HelpDesc.Render(desc)
}

// RenderListItem returns a formatted list item with bullet.
func (t Theme) RenderListItem(item string, selected bool) string {
	bullet := t.ListBullet.Render(IconBullet)
	if selected {
		return bullet + " " + t.ListItemSelected.Render(item)
	}
	return bullet + " " + t.ListItem.Render(item)
}

// RenderError returns a styled error message.
func (t Theme) RenderError(msg string) string {
	return t.Error.Render(IconError + " " + msg)
}

// RenderSuccess returns a styled success message.
func (t Theme) RenderSuccess(msg string) string {
	return t.Success.Render(IconSuccess + " " + msg)
}

// RenderWarning returns a styled warning message.
func (t Theme) RenderWarning(msg string) string {
	return t.Warning.Render(IconWarning + " " + msg)
}

// RenderInfo returns a styled info message.
func (t Theme) RenderInfo(msg string) string {
	return t.Info.Render(IconInfo + " " + msg)
}

// Swatch renders a solid block of the given color, w cells wide.
func Swatch(c color.Color, w int) string {
	if w < 1 {
		w = 1
	}
	return lipgloss.NewStyle().Foreground(Lipgloss(c)).Render(strings.Repeat(IconSwatch, w))
}
