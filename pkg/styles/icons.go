package styles

// Nerd Font icons for terminal UI.
// These icons require a Nerd Font compatible terminal font.
// Fallback ASCII alternatives are provided where practical.
const (
	// Status indicators
	IconSuccess = "" // nf-fa-check (U+F00C)
	IconError   = "" // nf-fa-times (U+F00D)
	IconWarning = "" // nf-fa-exclamation_triangle (U+F071)
	IconInfo    = "" // nf-fa-info_circle (U+F05A)
	IconPending = "" // nf-fa-clock_o (U+F017)

	// Product marks
	IconMolten = "" // nf-fa-fire (U+F06D)
	IconLair   = "" // nf-fa-terminal (U+F120)
	IconHearth = "" // nf-fa-home (U+F015)
	IconAlloy  = "" // nf-fa-cubes (U+F1B3)

	// UI elements
	IconBullet   = "▸" // Simple triangle bullet
	IconDot      = "●" // Filled circle
	IconDotEmpty = "○" // Empty circle
	IconChevron  = "" // nf-fa-chevron_right (U+F054)
	IconSwatch   = "█" // Full block for color swatches
)

// ASCII fallback alternatives for terminals without Nerd Fonts.
const (
	AsciiSuccess = "[OK]"
	AsciiError   = "[X]"
	AsciiWarning = "[!]"
	AsciiInfo    = "[i]"
	AsciiBullet  = ">"
	AsciiDot     = "*"
)
