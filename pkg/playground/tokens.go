// Package playground is an embeddable Bubble Tea component for
// browsing the brand token inventory: categories side by side, a
// swatch with hex and CSS forms per token, and a substring filter.
package playground

import (
	"github.com/moltenlabs/molten-brand/pkg/color"
	"github.com/moltenlabs/molten-brand/pkg/palette"
	"github.com/moltenlabs/molten-brand/pkg/products"
	"github.com/moltenlabs/molten-brand/pkg/semantic"
)

// Token is a single named brand color.
type Token struct {
	Name  string
	Color color.Color
}

// TokenCategory groups related tokens for browsing.
type TokenCategory struct {
	Name   string
	Tokens []Token
}

// Categories returns the full token inventory, grouped the way the
// design system documents it.
func Categories() []TokenCategory {
	return []TokenCategory{
		{
			Name: "Brand",
			Tokens: []Token{
				{"forge.black", palette.ForgeBlack},
				{"forge.steel", palette.ForgeSteel},
				{"forge.white", palette.ForgeWhite},
				{"forge.molten", palette.ForgeMolten},
				{"forge.ember", palette.ForgeEmber},
				{"forge.iron", palette.ForgeIron},
			},
		},
		{
			Name: "Molten",
			Tokens: []Token{
				{"molten.50", palette.Molten50},
				{"molten.100", palette.Molten100},
				{"molten.200", palette.Molten200},
				{"molten.300", palette.Molten300},
				{"molten.400", palette.Molten400},
				{"molten.500", palette.Molten500},
				{"molten.600", palette.Molten600},
				{"molten.700", palette.Molten700},
				{"molten.800", palette.Molten800},
				{"molten.900", palette.Molten900},
				{"molten.950", palette.Molten950},
			},
		},
		{
			Name: "Neutral",
			Tokens: []Token{
				{"neutral.0", palette.Neutral0},
				{"neutral.50", palette.Neutral50},
				{"neutral.100", palette.Neutral100},
				{"neutral.200", palette.Neutral200},
				{"neutral.300", palette.Neutral300},
				{"neutral.400", palette.Neutral400},
				{"neutral.500", palette.Neutral500},
				{"neutral.600", palette.Neutral600},
				{"neutral.700", palette.Neutral700},
				{"neutral.800", palette.Neutral800},
				{"neutral.900", palette.Neutral900},
				{"neutral.950", palette.Neutral950},
			},
		},
		{
			Name: "Products",
			Tokens: []Token{
				{"lair.primary", products.Lair.Primary},
				{"lair.secondary", products.Lair.Secondary},
				{"lair.accent", products.Lair.Accent},
				{"lair.terminal.background", products.Lair.Terminal.Background},
				{"lair.terminal.foreground", products.Lair.Terminal.Foreground},
				{"lair.terminal.cursor", products.Lair.Terminal.Cursor},
				{"lair.terminal.selection", products.Lair.Terminal.Selection},
				{"lair.goblin.primary", products.Lair.Goblin.Primary},
				{"lair.goblin.glow", products.Lair.Goblin.Glow},
				{"lair.goblin.shadow", products.Lair.Goblin.Shadow},
				{"lair.goblin.pulse", products.Lair.Goblin.Pulse},
				{"lair.surface.base", products.Lair.Surface.Base},
				{"lair.surface.raised", products.Lair.Surface.Raised},
				{"lair.surface.tinted", products.Lair.Surface.Tinted},
				{"lair.surface.border", products.Lair.Surface.Border},
				{"lair.surface.border_hover", products.Lair.Surface.BorderHover},
				{"hearth.primary", products.Hearth.Primary},
				{"hearth.secondary", products.Hearth.Secondary},
				{"hearth.accent", products.Hearth.Accent},
				{"hearth.editorial.text", products.Hearth.Editorial.Text},
				{"hearth.editorial.secondary", products.Hearth.Editorial.Secondary},
				{"hearth.editorial.tertiary", products.Hearth.Editorial.Tertiary},
				{"hearth.editorial.border", products.Hearth.Editorial.Border},
				{"hearth.content.background", products.Hearth.Content.Background},
				{"hearth.content.card", products.Hearth.Content.Card},
				{"hearth.content.card_hover", products.Hearth.Content.CardHover},
				{"hearth.content.border", products.Hearth.Content.Border},
				{"alloy.primary", products.Alloy.Primary},
				{"alloy.secondary", products.Alloy.Secondary},
				{"alloy.accent", products.Alloy.Accent},
				{"alloy.system.primary", products.Alloy.System.Primary},
				{"alloy.system.neutral", products.Alloy.System.Neutral},
				{"alloy.system.surface", products.Alloy.System.Surface},
				{"alloy.glass.background", products.Alloy.Glass.Background},
				{"alloy.glass.background_hover", products.Alloy.Glass.BackgroundHover},
				{"alloy.glass.border", products.Alloy.Glass.Border},
				{"alloy.glass.border_hover", products.Alloy.Glass.BorderHover},
			},
		},
		{
			Name: "Semantic",
			Tokens: []Token{
				{"success", semantic.Success},
				{"success.light", semantic.SuccessLight},
				{"success.dark", semantic.SuccessDark},
				{"warning", semantic.Warning},
				{"warning.light", semantic.WarningLight},
				{"warning.dark", semantic.WarningDark},
				{"error", semantic.Error},
				{"error.light", semantic.ErrorLight},
				{"error.dark", semantic.ErrorDark},
				{"info", semantic.Info},
				{"info.light", semantic.InfoLight},
				{"info.dark", semantic.InfoDark},
			},
		},
		{
			Name: "Agent",
			Tokens: []Token{
				{"agent.spawning", semantic.AgentSpawning},
				{"agent.running", semantic.AgentRunning},
				{"agent.thinking", semantic.AgentThinking},
				{"agent.complete", semantic.AgentComplete},
				{"agent.failed", semantic.AgentFailed},
				{"agent.idle", semantic.AgentIdle},
				{"agent.paused", semantic.AgentPaused},
			},
		},
	}
}
