// Package home is the dashboard: entry menu into every study module
// plus a live summary of checklist progress and the word bank.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/content"
	"github.com/dayoung/topikpal/internal/router"
	"github.com/dayoung/topikpal/internal/screen"
	"github.com/dayoung/topikpal/internal/screens/blueprint"
	"github.com/dayoung/topikpal/internal/screens/flashcards"
	"github.com/dayoung/topikpal/internal/screens/grammar"
	practicescreen "github.com/dayoung/topikpal/internal/screens/practice"
	"github.com/dayoung/topikpal/internal/screens/tutorchat"
	"github.com/dayoung/topikpal/internal/screens/wordbank"
	"github.com/dayoung/topikpal/internal/store"
	"github.com/dayoung/topikpal/internal/tutor"
	"github.com/dayoung/topikpal/internal/ui/components"
	"github.com/dayoung/topikpal/internal/ui/theme"
)

// HomeScreen is the dashboard and main menu.
type HomeScreen struct {
	st   *store.Adapter
	tut  *tutor.Service
	pron *audio.Pronouncer

	menu      components.Menu
	percent   int
	wordCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the dashboard.
func New(st *store.Adapter, tut *tutor.Service, pron *audio.Pronouncer) *HomeScreen {
	s := &HomeScreen{st: st, tut: tut, pron: pron}
	s.refresh()

	items := []components.MenuItem{
		{Label: "EXAM BLUEPRINT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: blueprint.New(st, tut, pron)}
			}
		}},
		{Label: "FLASHCARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: flashcards.New(st, pron)}
			}
		}},
		{Label: "GRAMMAR GUIDE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: grammar.New()}
			}
		}},
		{Label: "PRACTICE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practicescreen.New(st, tut, pron, content.Filter{})}
			}
		}},
		{Label: "WORD BANK", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: wordbank.New(st, pron)}
			}
		}},
		{Label: "AI TUTOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tutorchat.New(tut)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *HomeScreen) refresh() {
	s.percent = store.PercentComplete(s.st.Progress(), len(content.Checklist))
	s.wordCount = len(s.st.WordBank())
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Dashboard"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case router.RefreshMsg:
		s.refresh()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	banner := theme.Title.Render("안녕하세요! Ready to study?")
	sub := theme.Subtitle.Render(fmt.Sprintf(
		"Checklist %d%% complete  •  %d words in your bank  •  %d practice questions",
		s.percent, s.wordCount, len(content.Questions)))

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, banner))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, sub))
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
