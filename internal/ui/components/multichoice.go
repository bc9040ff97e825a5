package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/dayoung/topikpal/internal/ui/theme"
)

// MultiChoice renders a multiple-choice option list. It is a pure view:
// the owning screen drives selection and reveal state so the quiz
// session remains the single source of truth.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int // -1 when nothing is highlighted
	Revealed     bool
	ChosenIndex  int // -1 until an answer is locked in
}

// NewMultiChoice creates a multiple-choice view for the given options.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     -1,
		ChosenIndex:  -1,
	}
}

// View renders the option list.
func (m MultiChoice) View() string {
	labels := []string{"A", "B", "C", "D"}

	var s string
	for i, opt := range m.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Revealed {
			if i == m.CorrectIndex {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if i == m.ChosenIndex {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}
