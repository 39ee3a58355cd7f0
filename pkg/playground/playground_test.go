package playground

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltenlabs/molten-brand/pkg/color"
	"github.com/moltenlabs/molten-brand/pkg/palette"
	"github.com/moltenlabs/molten-brand/pkg/products"
	"github.com/moltenlabs/molten-brand/pkg/semantic"
)

func TestCategoriesInventory(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)

	sizes := map[string]int{}
	for _, cat := range cats {
		sizes[cat.Name] = len(cat.Tokens)
	}

	assert.Equal(t, 6, sizes["Brand"])
	assert.Equal(t, 11, sizes["Molten"])
	assert.Equal(t, 12, sizes["Neutral"])
	assert.Equal(t, 37, sizes["Products"])
	assert.Equal(t, 12, sizes["Semantic"])
	assert.Equal(t, 7, sizes["Agent"])
}

func TestCategoriesCoverProductsAndSemantics(t *testing.T) {
	colors := map[string]color.Color{}
	for _, cat := range Categories() {
		for _, tok := range cat.Tokens {
			colors[tok.Name] = tok.Color
		}
	}

	assert.Equal(t, products.Lair.Primary, colors["lair.primary"])
	assert.Equal(t, products.Hearth.Primary, colors["hearth.primary"])
	assert.Equal(t, products.Alloy.Primary, colors["alloy.primary"])
	assert.Equal(t, products.Lair.Goblin.Glow, colors["lair.goblin.glow"])
	assert.Equal(t, semantic.Success, colors["success"])
	assert.Equal(t, semantic.AgentSpawning, colors["agent.spawning"])
	assert.Equal(t, palette.Primary, colors["molten.500"])
}

func TestNavigationMovesCursor(t *testing.T) {
	m := New()

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "forge.black", sel.Name)

	m = press(m, "j")
	m = press(m, "j")
	sel, _ = m.Selected()
	assert.Equal(t, "forge.white", sel.Name)

	m = press(m, "k")
	sel, _ = m.Selected()
	assert.Equal(t, "forge.steel", sel.Name)

	// The cursor stops at both edges.
	for i := 0; i < 10; i++ {
		m = press(m, "k")
	}
	sel, _ = m.Selected()
	assert.Equal(t, "forge.black", sel.Name)

	for i := 0; i < 20; i++ {
		m = press(m, "j")
	}
	sel, _ = m.Selected()
	assert.Equal(t, "forge.iron", sel.Name)
}

func TestCategorySwitchResetsCursor(t *testing.T) {
	m := New()

	m = press(m, "l")
	sel, _ := m.Selected()
	assert.Equal(t, "molten.50", sel.Name)

	m = press(m, "j")
	m = press(m, "h")
	sel, _ = m.Selected()
	assert.Equal(t, "forge.black", sel.Name)

	// Left from the first category wraps to the last.
	m = press(m, "h")
	sel, _ = m.Selected()
	assert.Equal(t, "agent.spawning", sel.Name)

	m = press(m, "right")
	sel, _ = m.Selected()
	assert.Equal(t, "forge.black", sel.Name)
}

func TestFilterNarrowsTokens(t *testing.T) {
	m := New()
	m = press(m, "l")

	m = press(m, "/")
	assert.True(t, m.filtering)

	m = press(m, "95")
	require.Len(t, m.visible(), 1)
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "molten.950", sel.Name)

	// Enter keeps the query applied, esc clears it.
	m = press(m, "enter")
	assert.False(t, m.filtering)
	assert.Len(t, m.visible(), 1)

	m = press(m, "/")
	m = press(m, "esc")
	assert.Len(t, m.visible(), 11)
}

func TestFilterWithNoMatches(t *testing.T) {
	m := New()
	m = press(m, "/")
	m = press(m, "zzz")

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, stripANSI(m.View()), "no tokens match")
}

func TestViewShowsTokenForms(t *testing.T) {
	m := New()
	view := stripANSI(m.View())

	assert.Contains(t, view, "Molten tokens")
	assert.Contains(t, view, "Brand")
	assert.Contains(t, view, "Agent")
	assert.Contains(t, view, "forge.black")
	assert.Contains(t, view, "#0A0A0A")
	assert.Contains(t, view, "rgb(10, 10, 10)")
}

func TestViewShowsTranslucentTokensAsRGBA(t *testing.T) {
	m := New()

	// Move to Products, then narrow down to the glass border token.
	m = press(m, "l")
	m = press(m, "l")
	m = press(m, "l")
	m = press(m, "/")
	m = press(m, "glass.border_hover")

	view := stripANSI(m.View())
	assert.Contains(t, view, "alloy.glass.border_hover")
	assert.Contains(t, view, "rgba(249, 115, 22, 0.30)")
}

func TestViewTruncatesOnNarrowTerminals(t *testing.T) {
	m := New()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 45, Height: 20})
	m = next.(Model)

	view := stripANSI(m.View())
	assert.Contains(t, view, "forge.steel")
	assert.Contains(t, view, "rgb(10, 10, 10)")
	assert.NotContains(t, view, "rgb(113, 113, 122)")
	assert.Contains(t, view, "...")
}

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		maxWidth int
		expected string
	}{
		{name: "zero width passthrough", value: "rgb(10, 10, 10)", maxWidth: 0, expected: "rgb(10, 10, 10)"},
		{name: "short value unchanged", value: "rgb(10, 10, 10)", maxWidth: 20, expected: "rgb(10, 10, 10)"},
		{name: "width three all dots", value: "rgba(124, 58, 237, 0.30)", maxWidth: 3, expected: "..."},
		{name: "truncates with ellipsis", value: "rgba(124, 58, 237, 0.30)", maxWidth: 12, expected: "rgba(124,..."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateCell(tt.value, tt.maxWidth))
		})
	}
}

func TestTruncateCellAnsiPassthrough(t *testing.T) {
	styled := "\x1b[32mrgb(0, 204, 106)\x1b[0m"
	assert.Equal(t, styled, truncateCell(styled, 3))
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	next, _ := m.Update(msg)
	return next.(Model)
}

func stripANSI(input string) string {
	ansiPattern := regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	return ansiPattern.ReplaceAllString(input, "")
}
