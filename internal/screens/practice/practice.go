// Package practice is the quiz screen: a session over the filtered
// question pool, with the word-capture workflow layered on top so the
// learner can pull vocabulary out of any question they are reading.
package practice

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/capture"
	"github.com/dayoung/topikpal/internal/content"
	"github.com/dayoung/topikpal/internal/quiz"
	"github.com/dayoung/topikpal/internal/screen"
	"github.com/dayoung/topikpal/internal/store"
	"github.com/dayoung/topikpal/internal/tutor"
	"github.com/dayoung/topikpal/internal/ui/components"
	"github.com/dayoung/topikpal/internal/ui/layout"
	"github.com/dayoung/topikpal/internal/ui/theme"
)

// PracticeScreen runs one quiz session.
type PracticeScreen struct {
	st   *store.Adapter
	tut  *tutor.Service
	pron *audio.Pronouncer

	sess *quiz.Session
	cap  *capture.Workflow

	// Hangul-bearing tokens of the current question, cycled with "w"
	// as the keyboard stand-in for text selection.
	tokens   []string
	tokenIdx int

	showAid bool
	status  string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen over the pool subset matching f.
func New(st *store.Adapter, tut *tutor.Service, pron *audio.Pronouncer, f content.Filter) *PracticeScreen {
	s := &PracticeScreen{
		st:       st,
		tut:      tut,
		pron:     pron,
		sess:     quiz.New(uuid.NewString(), f),
		cap:      capture.New(),
		tokenIdx: -1,
	}
	s.tokens = captureTokens(s.sess.Current())
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice Quiz"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.sess.Phase {
	case quiz.Answering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "W", Description: "Highlight word"},
			{Key: "S", Description: "Save word"},
			{Key: "T", Description: "Translation"},
			{Key: "P", Description: "Listen"},
		}
	case quiz.Revealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "W", Description: "Highlight word"},
			{Key: "S", Description: "Save word"},
		}
	case quiz.Finished:
		return []layout.KeyHint{
			{Key: "R", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceDoneMsg:
		if s.cap.DebounceElapsed(msg.Gen) {
			return s, s.translateCmd(msg.Gen, s.cap.Text())
		}
		return s, nil

	case translationMsg:
		s.cap.TranslationResult(msg.Gen, msg.English, msg.Err)
		if msg.Err != nil && msg.Gen == s.cap.Generation() {
			s.status = "Translation failed. Highlight the word again to retry."
		}
		return s, nil

	case flashDoneMsg:
		s.cap.FlashElapsed(msg.Gen)
		return s, nil

	case speakDoneMsg:
		if msg.Err != nil && msg.Err != audio.ErrBusy {
			s.status = "Audio unavailable."
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.status = ""

	switch s.sess.Phase {
	case quiz.Finished, quiz.Empty:
		if msg.String() == "r" && s.sess.Phase == quiz.Finished {
			s.sess.Restart()
			s.resetCapture()
		}
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.sess.Phase == quiz.Answering {
			if s.sess.Selected == quiz.NoSelection {
				s.sess.Select(0)
			} else {
				s.sess.Select(s.sess.Selected - 1)
			}
		}
	case "down", "j":
		if s.sess.Phase == quiz.Answering {
			s.sess.Select(s.sess.Selected + 1)
		}
	case "enter":
		if s.sess.Phase == quiz.Answering {
			s.sess.Submit()
		} else {
			s.sess.Continue()
			s.resetCapture()
		}
	case "t":
		s.showAid = !s.showAid
	case "p":
		return s, s.speakCmd()
	case "w", "tab":
		return s, s.highlightNext()
	case "x":
		s.cap.Clear()
		s.tokenIdx = -1
	case "s":
		gen, err := s.cap.Save(s.st)
		if err != nil {
			s.status = "Could not save the word."
			return s, nil
		}
		if gen != 0 {
			return s, tea.Tick(capture.SavedFlashDelay, func(time.Time) tea.Msg {
				return flashDoneMsg{Gen: gen}
			})
		}
	}
	return s, nil
}

// highlightNext moves the keyboard "selection" to the next Hangul token
// of the current question and restarts the capture debounce.
func (s *PracticeScreen) highlightNext() tea.Cmd {
	if len(s.tokens) == 0 {
		return nil
	}
	s.tokenIdx = (s.tokenIdx + 1) % len(s.tokens)
	gen, ok := s.cap.Observe(s.tokens[s.tokenIdx])
	if !ok {
		return nil
	}
	return tea.Tick(capture.DebounceDelay, func(time.Time) tea.Msg {
		return debounceDoneMsg{Gen: gen}
	})
}

func (s *PracticeScreen) translateCmd(gen int, text string) tea.Cmd {
	return func() tea.Msg {
		eng, err := s.tut.QuickTranslate(context.Background(), text)
		return translationMsg{Gen: gen, English: eng, Err: err}
	}
}

func (s *PracticeScreen) speakCmd() tea.Cmd {
	q := s.sess.Current()
	if q == nil {
		return nil
	}
	text := q.Script
	if text == "" {
		text = q.Prompt
	}
	return func() tea.Msg {
		err := s.pron.Pronounce(context.Background(), text)
		return speakDoneMsg{Err: err}
	}
}

func (s *PracticeScreen) resetCapture() {
	s.cap.Clear()
	s.tokenIdx = -1
	s.tokens = captureTokens(s.sess.Current())
}

func (s *PracticeScreen) View(width, height int) string {
	switch s.sess.Phase {
	case quiz.Empty:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No questions match this selection yet. Try another range.")
	case quiz.Finished:
		return s.finishedView(width)
	}

	q := s.sess.Current()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	counter := fmt.Sprintf("Question %d of %d   •   %d pts", s.sess.Index+1, len(s.sess.Questions), s.sess.Points)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(counter)))
	b.WriteString("\n\n")

	prompt := s.highlightedText(q.Prompt)
	if q.Type == content.Listening {
		tag := lipgloss.NewStyle().Foreground(theme.Secondary).Render("♪ Listening  ")
		prompt = tag + prompt
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.InfoCard(prompt, cw)))
	b.WriteString("\n\n")

	mc := components.MultiChoice{
		Options:      q.Options[:],
		CorrectIndex: q.Correct,
		Selected:     s.sess.Selected,
		Revealed:     s.sess.Phase == quiz.Revealed,
		ChosenIndex:  s.sess.Selected,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mc.View()))
	b.WriteString("\n")

	if s.sess.Phase == quiz.Revealed {
		verdict := theme.Correct.Render("✔ Correct! +" + fmt.Sprint(q.Points) + " pts")
		if !s.sess.Correct() {
			verdict = theme.Incorrect.Render("✘ Not quite.")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(q.Explanation)))
		b.WriteString("\n")
	}

	if s.showAid || s.sess.Phase == quiz.Revealed {
		if q.Translation != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(q.Translation)))
			b.WriteString("\n")
		}
	}

	if line := s.captureLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.status)))
	}

	return b.String()
}

func (s *PracticeScreen) finishedView(width int) string {
	total := 0
	for _, q := range s.sess.Questions {
		total += q.Points
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Session complete!")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render(fmt.Sprintf("You scored %d of %d points across %d questions.",
			s.sess.Points, total, len(s.sess.Questions)))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press R to run the same set again, or Esc to go back.")))
	return b.String()
}

// captureLine renders the word-capture status strip.
func (s *PracticeScreen) captureLine() string {
	switch s.cap.State() {
	case capture.Debouncing:
		return theme.Hint.Render("Highlighted: " + s.cap.Text())
	case capture.Pending:
		return theme.Hint.Render(s.cap.Text() + "  …translating")
	case capture.Translated:
		return theme.Korean.Render(s.cap.Text()) +
			theme.Body.Render("  —  "+s.cap.Translation()+"  ") +
			theme.Hint.Render("[S] save to word bank")
	case capture.SavedNew:
		return theme.Correct.Render("Saved to your word bank! ✔")
	case capture.SavedDuplicate:
		return theme.Hint.Render("Already in your word bank.")
	}
	return ""
}

// highlightedText renders text with the active capture token inverted.
func (s *PracticeScreen) highlightedText(text string) string {
	if s.tokenIdx < 0 || s.tokenIdx >= len(s.tokens) {
		return theme.Korean.Render(text)
	}
	tok := s.tokens[s.tokenIdx]
	i := strings.Index(text, tok)
	if i < 0 {
		return theme.Korean.Render(text)
	}
	hl := lipgloss.NewStyle().Background(theme.Primary).Foreground(theme.Text).Render(tok)
	return theme.Korean.Render(text[:i]) + hl + theme.Korean.Render(text[i+len(tok):])
}

// captureTokens extracts the Hangul-bearing tokens a learner could
// highlight on this question: prompt, listening script, and options.
func captureTokens(q *content.Question) []string {
	if q == nil {
		return nil
	}
	fields := strings.Fields(q.Prompt)
	fields = append(fields, strings.Fields(q.Script)...)
	for _, opt := range q.Options {
		fields = append(fields, strings.Fields(opt)...)
	}

	seen := make(map[string]bool)
	var tokens []string
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if !capture.Qualifies(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}
