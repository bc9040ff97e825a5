// Package tutorchat is the AI tutor screen: a scrolling chat transcript
// backed by the LLM provider, with canned suggestions on a fresh chat.
package tutorchat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/topikpal/internal/llm"
	"github.com/dayoung/topikpal/internal/screen"
	"github.com/dayoung/topikpal/internal/tutor"
	"github.com/dayoung/topikpal/internal/ui/components"
	"github.com/dayoung/topikpal/internal/ui/layout"
	"github.com/dayoung/topikpal/internal/ui/theme"
)

// replyMsg carries the tutor's answer back to the screen.
type replyMsg struct {
	Text string
	Err  error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// entry is one rendered transcript line pair.
type entry struct {
	FromTutor bool
	Text      string
}

// TutorScreen is the chat view.
type TutorScreen struct {
	svc *tutor.Service

	transcript []entry
	history    []llm.Message // what actually goes to the model
	input      components.TextInput

	waiting      bool
	spinnerFrame int
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates a tutor chat screen opening with the welcome message.
func New(svc *tutor.Service) *TutorScreen {
	return &TutorScreen{
		svc:        svc,
		transcript: []entry{{FromTutor: true, Text: tutor.WelcomeReply}},
		input:      components.NewTextInput("ask about grammar, vocab, anything...", 200),
	}
}

func (s *TutorScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *TutorScreen) Title() string {
	return "AI Tutor"
}

func (s *TutorScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+L", Description: "Clear chat"},
	}
	if s.freshChat() {
		hints = append([]layout.KeyHint{{Key: "1-4", Description: "Suggestions"}}, hints...)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// freshChat reports whether the learner has not written anything yet.
func (s *TutorScreen) freshChat() bool {
	return len(s.history) == 0 && s.input.Value() == ""
}

func (s *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		s.transcript = append(s.transcript, entry{FromTutor: true, Text: msg.Text})
		if msg.Err == nil {
			s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: msg.Text})
		}
		return s, nil

	case spinnerTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, s.spinnerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+l":
			s.transcript = []entry{{FromTutor: true, Text: tutor.ClearedReply}}
			s.history = nil
			s.waiting = false
			return s, nil
		case "enter":
			return s, s.send(strings.TrimSpace(s.input.Value()))
		case "1", "2", "3", "4":
			if s.freshChat() {
				idx := int(msg.String()[0] - '1')
				if idx < len(tutor.Suggestions) {
					return s, s.send(tutor.Suggestions[idx])
				}
			}
		}
		if s.waiting {
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *TutorScreen) send(text string) tea.Cmd {
	if text == "" || s.waiting {
		return nil
	}

	s.transcript = append(s.transcript, entry{Text: text})
	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: text})
	s.input = components.NewTextInput("ask about grammar, vocab, anything...", 200)
	s.waiting = true

	history := make([]llm.Message, len(s.history))
	copy(history, s.history)

	ask := func() tea.Msg {
		reply, err := s.svc.Chat(context.Background(), history)
		return replyMsg{Text: reply, Err: err}
	}
	return tea.Batch(ask, s.spinnerTick(), s.input.Init())
}

func (s *TutorScreen) spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *TutorScreen) View(width, height int) string {
	cw := components.ContentWidth(width) + 14

	tutorStyle := lipgloss.NewStyle().Foreground(theme.Text).
		Width(cw).Align(lipgloss.Left)
	userStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Width(cw).Align(lipgloss.Right)

	var lines []string
	for _, e := range s.transcript {
		if e.FromTutor {
			lines = append(lines, tutorStyle.Render("🎓 "+e.Text))
		} else {
			lines = append(lines, userStyle.Render(e.Text+" 🙋"))
		}
		lines = append(lines, "")
	}

	if s.waiting {
		lines = append(lines, theme.Hint.Render(spinnerFrames[s.spinnerFrame]+" thinking..."))
	} else if s.freshChat() {
		lines = append(lines, theme.Hint.Render("Try one of these:"))
		for i, sug := range tutor.Suggestions {
			lines = append(lines, theme.Hint.Render("  "+string(rune('1'+i))+". "+sug))
		}
	}

	// Keep the tail of the transcript in view above the input line.
	avail := height - 4
	if avail < 3 {
		avail = 3
	}
	body := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(body) > avail {
		body = body[len(body)-avail:]
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, l := range body {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render("〉"+s.input.View())))
	return b.String()
}
