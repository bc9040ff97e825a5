// Package wordbank is the personal word bank screen: the saved
// vocabulary list with search, learned toggles, deletion, and
// pronunciation.
package wordbank

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/router"
	"github.com/dayoung/topikpal/internal/screen"
	"github.com/dayoung/topikpal/internal/store"
	"github.com/dayoung/topikpal/internal/ui/components"
	"github.com/dayoung/topikpal/internal/ui/layout"
	"github.com/dayoung/topikpal/internal/ui/theme"
)

// speakDoneMsg is sent when pronunciation playback finishes.
type speakDoneMsg struct {
	Err error
}

// WordBankScreen lists and manages saved words.
type WordBankScreen struct {
	st   *store.Adapter
	pron *audio.Pronouncer

	bank     []store.VocabEntry
	selected int

	searching bool
	search    components.TextInput

	status string
}

var _ screen.Screen = (*WordBankScreen)(nil)
var _ screen.KeyHintProvider = (*WordBankScreen)(nil)

// New creates a word bank screen.
func New(st *store.Adapter, pron *audio.Pronouncer) *WordBankScreen {
	return &WordBankScreen{
		st:     st,
		pron:   pron,
		bank:   st.WordBank(),
		search: components.NewTextInput("search korean or english...", 40),
	}
}

func (s *WordBankScreen) Init() tea.Cmd {
	return nil
}

func (s *WordBankScreen) Title() string {
	return "Word Bank"
}

func (s *WordBankScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Cancel search"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "L", Description: "Learned"},
		{Key: "D", Description: "Delete"},
		{Key: "P", Description: "Pronounce"},
		{Key: "Esc", Description: "Back"},
	}
}

// WantsEsc keeps esc inside the screen while the search box is open.
func (s *WordBankScreen) WantsEsc() bool {
	return s.searching
}

// visible returns the bank filtered by the live search query,
// case-insensitive over both the Korean and English sides.
func (s *WordBankScreen) visible() []store.VocabEntry {
	query := strings.ToLower(strings.TrimSpace(s.search.Value()))
	if query == "" {
		return s.bank
	}
	var out []store.VocabEntry
	for _, e := range s.bank {
		if strings.Contains(strings.ToLower(e.Korean), query) ||
			strings.Contains(strings.ToLower(e.English), query) {
			out = append(out, e)
		}
	}
	return out
}

func (s *WordBankScreen) reload() {
	s.bank = s.st.WordBank()
	if s.selected >= len(s.visible()) {
		s.selected = len(s.visible()) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *WordBankScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.RefreshMsg:
		if msg.Event == store.EventWordBankUpdated {
			s.reload()
		}
		return s, nil

	case speakDoneMsg:
		if msg.Err != nil && msg.Err != audio.ErrBusy {
			s.status = "Audio unavailable."
		}
		return s, nil

	case tea.KeyMsg:
		if s.searching {
			switch msg.String() {
			case "enter", "esc":
				s.searching = false
				s.selected = 0
				return s, nil
			}
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			s.selected = 0
			return s, cmd
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *WordBankScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.status = ""
	visible := s.visible()

	switch msg.String() {
	case "/":
		s.searching = true
		return s, s.search.Init()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(visible)-1 {
			s.selected++
		}
	case "l":
		if s.selected < len(visible) {
			if err := s.st.ToggleLearned(visible[s.selected].ID); err != nil {
				s.status = "Could not update the word."
			}
		}
	case "d":
		if s.selected < len(visible) {
			if err := s.st.DeleteWord(visible[s.selected].ID); err != nil {
				s.status = "Could not delete the word."
			}
		}
	case "p":
		if s.selected < len(visible) {
			word := visible[s.selected].Korean
			return s, func() tea.Msg {
				return speakDoneMsg{Err: s.pron.Pronounce(context.Background(), word)}
			}
		}
	}
	return s, nil
}

func (s *WordBankScreen) View(width, height int) string {
	if len(s.bank) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Your word bank is empty.\n  Save words from flashcards or practice questions!")
	}

	var b strings.Builder
	b.WriteString("\n")

	learned := 0
	for _, e := range s.bank {
		if e.Learned {
			learned++
		}
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Learned %d/%d", learned, len(s.bank)),
		float64(learned)/float64(len(s.bank)),
		true,
		components.ContentWidth(width),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if s.searching || s.search.Value() != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			"🔎 "+s.search.View()))
		b.WriteString("\n\n")
	}

	visible := s.visible()
	if len(visible) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No words match your search.")))
		return b.String()
	}

	for i, e := range visible {
		check := "○"
		if e.Learned {
			check = "●"
		}
		marker := "  "
		if i == s.selected && !s.searching {
			marker = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-14s %s", marker, check, e.Korean, e.English)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.Learned {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if i == s.selected && !s.searching {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.status)))
	}
	return b.String()
}
