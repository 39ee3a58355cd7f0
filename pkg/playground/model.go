package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/moltenlabs/molten-brand/pkg/styles"
)

// Model is the token browser. It implements tea.Model, so it can run
// standalone through Run or be embedded in a larger program.
type Model struct {
	categories []TokenCategory
	category   int
	cursor     int
	filter     textinput.Model
	filtering  bool
	theme      styles.Theme
	width      int
}

// New creates a token browser over the full inventory.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "/ "
	ti.CharLimit = 48
	ti.Width = 24

	return Model{
		categories: Categories(),
		filter:     ti,
		theme:      styles.Default(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "left", "h":
			m.category = (m.category + len(m.categories) - 1) % len(m.categories)
			m.resetView()
		case "right", "l":
			m.category = (m.category + 1) % len(m.categories)
			m.resetView()
		case "/":
			m.filtering = true
			m.cursor = 0
			return m, m.filter.Focus()
		}
	}
	return m, nil
}

// updateFilter routes keys to the filter input while it has focus.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.cursor = 0
		return m, nil
	case "enter":
		// Keep the query applied, just release focus.
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.BannerTitle.Render(styles.IconMolten + " Molten tokens"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(m.theme.Muted.Render("no tokens match"))
		b.WriteString("\n")
	}

	nameWidth := 0
	for _, tok := range visible {
		if w := runewidth.StringWidth(tok.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for i, tok := range visible {
		marker := "  "
		nameStyle := m.theme.Body
		if i == m.cursor {
			marker = m.theme.ListBullet.Render(styles.IconBullet) + " "
			nameStyle = m.theme.Highlight
		}

		css := tok.Color.String()
		// marker + swatch + hex column + the gaps between them
		fixed := 2 + 2 + 1 + nameWidth + 2 + 7 + 2
		if m.width > fixed {
			css = truncateCell(css, m.width-fixed)
		}

		b.WriteString(marker)
		b.WriteString(styles.Swatch(tok.Color, 2))
		b.WriteString(" ")
		b.WriteString(nameStyle.Render(runewidth.FillRight(tok.Name, nameWidth)))
		b.WriteString("  ")
		b.WriteString(m.theme.Muted.Render(tok.Color.Hex()))
		b.WriteString("  ")
		b.WriteString(m.theme.Subtitle.Render(css))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.RenderKeyHelp("j/k", "token") + "  " +
		m.theme.RenderKeyHelp("h/l", "category") + "  " +
		m.theme.RenderKeyHelp("/", "filter") + "  " +
		m.theme.RenderKeyHelp("enter", "select") + "  " +
		m.theme.RenderKeyHelp("q", "quit"))

	return b.String()
}

// renderTabs draws the category strip with the active one accented.
func (m Model) renderTabs() string {
	parts := make([]string, 0, len(m.categories))
	for i, cat := range m.categories {
		if i == m.category {
			parts = append(parts, m.theme.Highlight.Render(styles.IconChevron+" "+cat.Name))
		} else {
			parts = append(parts, m.theme.Muted.Render(cat.Name))
		}
	}
	return strings.Join(parts, "  ")
}

// Selected returns the token under the cursor. The second return is
// false when the filter has narrowed the view to nothing.
func (m Model) Selected() (Token, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return Token{}, false
	}
	return visible[m.cursor], true
}

// visible returns the active category's tokens, narrowed by the
// filter text.
func (m Model) visible() []Token {
	tokens := m.categories[m.category].Tokens
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return tokens
	}

	matched := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if strings.Contains(strings.ToLower(tok.Name), query) {
			matched = append(matched, tok)
		}
	}
	return matched
}

func (m *Model) resetView() {
	m.cursor = 0
	m.filter.SetValue("")
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// truncateCell shortens a cell to maxWidth display columns, keeping
// grapheme clusters intact. Cells that already carry ANSI sequences
// pass through untouched.
func truncateCell(value string, maxWidth int) string {
	if strings.Contains(value, "\x1b[") {
		return value
	}

	if maxWidth <= 0 || runewidth.StringWidth(value) <= maxWidth {
		return value
	}

	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	targetWidth := maxWidth - 3
	b := strings.Builder{}
	currentWidth := 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		grapheme := g.Str()
		graphemeWidth := runewidth.StringWidth(grapheme)
		if currentWidth+graphemeWidth > targetWidth {
			break
		}
		b.WriteString(grapheme)
		currentWidth += graphemeWidth
	}

	if b.Len() == 0 {
		return strings.Repeat(".", maxWidth)
	}

	return b.String() + "..."
}

// Run opens the browser in its own Bubble Tea program and reports the
// token highlighted when the user quit.
func Run() (Token, bool, error) {
	p := tea.NewProgram(New())
	final, err := p.Run()
	if err != nil {
		return Token{}, false, fmt.Errorf("error running token browser: %w", err)
	}
	tok, ok := final.(Model).Selected()
	return tok, ok, nil
}
