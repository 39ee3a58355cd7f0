// Package semantic provides the color tokens that convey meaning: status
// indicators, alerts and feedback. They are consistent across all Molten
// Labs products.
package semantic

import (
	"strings"

	"github.com/moltenlabs/molten-brand/pkg/color"
)

// Success indicates positive outcomes.
var (
	Success      = color.FromRGB(16, 185, 129)  // #10B981
	SuccessLight = color.FromRGB(209, 250, 229) // #D1FAE5
	SuccessDark  = color.FromRGB(5, 150, 105)   // #059669
)

// Warning indicates caution needed.
var (
	Warning      = color.FromRGB(245, 158, 11)  // #F59E0B
	WarningLight = color.FromRGB(254, 243, 199) // #FEF3C7
	WarningDark  = color.FromRGB(217, 119, 6)   // #D97706
)

// Error indicates problems or failures.
var (
	Error      = color.FromRGB(239, 68, 68)   // #EF4444
	ErrorLight = color.FromRGB(254, 226, 226) // #FEE2E2
	ErrorDark  = color.FromRGB(220, 38, 38)   // #DC2626
)

// Info indicates neutral information.
var (
	Info      = color.FromRGB(59, 130, 246)  // #3B82F6
	InfoLight = color.FromRGB(219, 234, 254) // #DBEAFE
	InfoDark  = color.FromRGB(37, 99, 235)   // #2563EB
)

// Agent status colors for Lair's goblin agents.
var (
	AgentSpawning = color.FromRGB(124, 58, 237)  // #7C3AED
	AgentRunning  = color.FromRGB(16, 185, 129)  // #10B981
	AgentThinking = color.FromRGB(245, 158, 11)  // #F59E0B
	AgentComplete = color.FromRGB(6, 182, 212)   // #06B6D4
	AgentFailed   = color.FromRGB(239, 68, 68)   // #EF4444
	AgentIdle     = color.FromRGB(113, 113, 122) // #71717A
	AgentPaused   = color.FromRGB(167, 139, 250) // #A78BFA
)

// Colors groups the four semantic colors for use in themes.
type Colors struct {
	Success color.Color `json:"success" yaml:"success"`
	Warning color.Color `json:"warning" yaml:"warning"`
	Error   color.Color `json:"error" yaml:"error"`
	Info    color.Color `json:"info" yaml:"info"`
}

// Defaults returns the standard semantic colors.
func Defaults() Colors {
	return Colors{
		Success: Success,
		Warning: Warning,
		Error:   Error,
		Info:    Info,
	}
}

// Get returns the color for a semantic name. The name is matched
// case-insensitively against "success", "warning", "error" and "info".
func (c Colors) Get(name string) (color.Color, bool) {
	switch strings.ToLower(name) {
	case "success":
		return c.Success, true
	case "warning":
		return c.Warning, true
	case "error":
		return c.Error, true
	case "info":
		return c.Info, true
	default:
		return color.Color{}, false
	}
}
