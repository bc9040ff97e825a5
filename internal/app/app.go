package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/content"
	"github.com/dayoung/topikpal/internal/router"
	"github.com/dayoung/topikpal/internal/screen"
	"github.com/dayoung/topikpal/internal/screens/home"
	"github.com/dayoung/topikpal/internal/store"
	"github.com/dayoung/topikpal/internal/tutor"
	"github.com/dayoung/topikpal/internal/ui/layout"
)

// Deps bundles the services the TUI runs on.
type Deps struct {
	Store      *store.Adapter
	Tutor      *tutor.Service
	Pronouncer *audio.Pronouncer
}

// storeEventMsg carries one event name off the store's sync channel.
type storeEventMsg struct {
	Event string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	sub    store.Subscription
	width  int
	height int

	// header stats, re-read on every store event
	percent   int
	wordCount int
}

// newAppModel creates a new AppModel with the dashboard screen.
func newAppModel(deps Deps) AppModel {
	m := AppModel{
		deps:   deps,
		router: router.New(home.New(deps.Store, deps.Tutor, deps.Pronouncer)),
		sub:    deps.Store.Subscribe(),
	}
	m.refreshStats()
	return m
}

func (m *AppModel) refreshStats() {
	m.percent = store.PercentComplete(m.deps.Store.Progress(), len(content.Checklist))
	m.wordCount = len(m.deps.Store.WordBank())
}

// waitForStoreEvent blocks on the sync channel until the next write
// lands, then feeds the event into the update loop.
func (m AppModel) waitForStoreEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.sub.C
		if !ok {
			return nil
		}
		return storeEventMsg{Event: event}
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.waitForStoreEvent(), m.router.Active().Init())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case storeEventMsg:
		m.refreshStats()
		return m, tea.Batch(
			m.router.Broadcast(router.RefreshMsg{Event: msg.Event}),
			m.waitForStoreEvent(),
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 && !m.activeWantsEsc() {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escConsumer is implemented by screens that need esc for themselves
// (for example to leave an in-screen search) instead of popping.
type escConsumer interface {
	WantsEsc() bool
}

func (m AppModel) activeWantsEsc() bool {
	if c, ok := m.router.Active().(escConsumer); ok {
		return c.WantsEsc()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.percent, m.wordCount, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
