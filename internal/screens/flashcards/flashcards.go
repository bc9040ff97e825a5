// Package flashcards is the vocabulary flashcard screen: flip through
// the built-in deck, filter by category, pronounce the Korean side, and
// save cards into the personal word bank.
package flashcards

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/content"
	"github.com/dayoung/topikpal/internal/screen"
	"github.com/dayoung/topikpal/internal/store"
	"github.com/dayoung/topikpal/internal/ui/components"
	"github.com/dayoung/topikpal/internal/ui/layout"
	"github.com/dayoung/topikpal/internal/ui/theme"
)

// flashDelay is how long the saved/duplicate note stays on screen.
const flashDelay = 1500 * time.Millisecond

// flashDoneMsg clears the saved/duplicate note.
type flashDoneMsg struct {
	Gen int
}

// speakDoneMsg is sent when pronunciation playback finishes.
type speakDoneMsg struct {
	Err error
}

// FlashcardsScreen walks the vocabulary deck one card at a time.
type FlashcardsScreen struct {
	st   *store.Adapter
	pron *audio.Pronouncer

	categories []string
	catIdx     int // 0 = all categories
	deck       []content.Flashcard

	index   int
	flipped bool

	flash    string
	flashGen int
	status   string
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New creates a flashcards screen over the full deck.
func New(st *store.Adapter, pron *audio.Pronouncer) *FlashcardsScreen {
	s := &FlashcardsScreen{
		st:         st,
		pron:       pron,
		categories: deckCategories(),
	}
	s.rebuildDeck()
	return s
}

// deckCategories lists categories in first-appearance order.
func deckCategories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, c := range content.Vocabulary {
		if !seen[c.Category] {
			seen[c.Category] = true
			cats = append(cats, c.Category)
		}
	}
	return cats
}

func (s *FlashcardsScreen) rebuildDeck() {
	if s.catIdx == 0 {
		s.deck = content.Vocabulary
	} else {
		cat := s.categories[s.catIdx-1]
		s.deck = nil
		for _, c := range content.Vocabulary {
			if c.Category == cat {
				s.deck = append(s.deck, c)
			}
		}
	}
	s.index = 0
	s.flipped = false
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "C", Description: "Category"},
		{Key: "P", Description: "Pronounce"},
		{Key: "S", Description: "Save word"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flashDoneMsg:
		if msg.Gen == s.flashGen {
			s.flash = ""
		}
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

func (s *FlashcardsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.status = ""
	if len(s.deck) == 0 {
		return s, nil
	}

	switch msg.String() {
	case " ", "space", "enter":
		s.flipped = !s.flipped
	case "right", "l", "n":
		s.index = (s.index + 1) % len(s.deck)
		s.flipped = false
	case "left", "h":
		s.index = (s.index - 1 + len(s.deck)) % len(s.deck)
		s.flipped = false
	case "c":
		s.catIdx = (s.catIdx + 1) % (len(s.categories) + 1)
		s.rebuildDeck()
	case "p":
		card := s.deck[s.index]
		return s, func() tea.Msg {
			return speakDoneMsg{Err: s.pron.Pronounce(context.Background(), card.Korean)}
		}
	case "s":
		return s, s.save()
	}
	return s, nil
}

func (s *FlashcardsScreen) save() tea.Cmd {
	card := s.deck[s.index]
	_, err := s.st.AddWord(card.Korean, card.English)
	switch {
	case err == nil:
		s.flash = "Saved to your word bank! ✔"
	case errors.Is(err, store.ErrDuplicateWord):
		s.flash = "Already in your word bank."
	default:
		s.status = "Could not save the word."
		return nil
	}
	s.flashGen++
	gen := s.flashGen
	return tea.Tick(flashDelay, func(time.Time) tea.Msg {
		return flashDoneMsg{Gen: gen}
	})
}

func (s *FlashcardsScreen) View(width, height int) string {
	if len(s.deck) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No cards in this category.")
	}

	card := s.deck[s.index]
	cw := components.ContentWidth(width)

	catLabel := "All categories"
	if s.catIdx > 0 {
		catLabel = s.categories[s.catIdx-1]
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(fmt.Sprintf("%s   •   card %d of %d", catLabel, s.index+1, len(s.deck)))))
	b.WriteString("\n\n")

	var face string
	if s.flipped {
		face = theme.Body.Render(card.English)
		if card.Example != "" {
			face += "\n\n" + theme.Hint.Render(card.Example)
		}
	} else {
		face = theme.Korean.Render(card.Korean) + "\n\n" +
			theme.Hint.Render("press Space to flip")
	}

	cardHeight := 9
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.CenteredCard(face, cw, cardHeight)))
	b.WriteString("\n")

	if s.flash != "" {
		style := theme.Correct
		if s.flash == "Already in your word bank." {
			style = theme.Hint
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(s.flash)))
		b.WriteString("\n")
	}
	if s.status != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.status)))
	}
	return b.String()
}
