// Package grammar is the grammar reference screen: a browsable list of
// TOPIK I patterns with expandable example sentences.
package grammar

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/topikpal/internal/content"
	"github.com/dayoung/topikpal/internal/screen"
	"github.com/dayoung/topikpal/internal/ui/layout"
	"github.com/dayoung/topikpal/internal/ui/theme"
)

// GrammarScreen lists the grammar reference.
type GrammarScreen struct {
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*GrammarScreen)(nil)
var _ screen.KeyHintProvider = (*GrammarScreen)(nil)

// New creates a grammar reference screen.
func New() *GrammarScreen {
	return &GrammarScreen{expanded: make(map[int]bool)}
}

func (s *GrammarScreen) Init() tea.Cmd {
	return nil
}

func (s *GrammarScreen) Title() string {
	return "Grammar Guide"
}

func (s *GrammarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Examples"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GrammarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(content.Grammar)-1 {
			s.selected++
		}
	case "enter", " ", "space":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *GrammarScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	for i, g := range content.Grammar {
		marker := "  "
		if i == s.selected {
			marker = "▸ "
		}

		line := marker + g.Pattern + "  —  " + g.Explanation
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("    "+g.Usage)))
			b.WriteString("\n")
			for _, ex := range g.Examples {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Korean.Render("    "+ex.Korean)+
						theme.Subtitle.Render("  "+ex.English)))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
