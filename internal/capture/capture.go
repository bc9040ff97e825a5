// Package capture implements the selection-to-word-bank workflow: a
// highlighted piece of Korean text is debounced, translated remotely,
// then offered for saving into the personal word bank.
package capture

import (
	"errors"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dayoung/topikpal/internal/store"
)

// DebounceDelay is how long a qualifying selection must hold still
// before translation fires.
const DebounceDelay = 250 * time.Millisecond

// SavedFlashDelay is how long the saved/duplicate confirmation shows
// before the workflow returns to Idle.
const SavedFlashDelay = 1500 * time.Millisecond

// MaxSelectionLen is the exclusive rune-count bound on a qualifying
// selection. Longer selections are sentences, not words.
const MaxSelectionLen = 30

// State is the workflow position for the current capture.
type State int

const (
	// Idle means no capture is active.
	Idle State = iota

	// Debouncing means a qualifying selection is waiting out the
	// debounce window. A newer selection restarts the window.
	Debouncing

	// Pending means translation has been requested and has not
	// delivered. A failed request stays Pending until superseded.
	Pending

	// Translated means a translation arrived and can be saved.
	Translated

	// SavedNew means the word was written to the bank.
	SavedNew

	// SavedDuplicate means the word was already in the bank and
	// nothing was written.
	SavedDuplicate
)

// WordSaver is the slice of the store the save step needs.
type WordSaver interface {
	AddWord(korean, english string) (store.VocabEntry, error)
}

// Workflow tracks one transient capture at a time. Every qualifying
// selection supersedes the previous capture; completions carrying a
// stale generation are discarded.
type Workflow struct {
	state       State
	gen         int
	text        string
	translation string
}

// New returns an idle workflow.
func New() *Workflow {
	return &Workflow{}
}

// State returns the current workflow state.
func (w *Workflow) State() State { return w.state }

// Text returns the Korean text of the active capture.
func (w *Workflow) Text() string { return w.text }

// Translation returns the delivered translation, valid from Translated on.
func (w *Workflow) Translation() string { return w.translation }

// Generation returns the token identifying the active capture. Timer and
// translation completions must carry it back; a mismatch means the
// completion belongs to a superseded capture.
func (w *Workflow) Generation() int { return w.gen }

// Qualifies reports whether a selection is worth capturing: non-empty,
// shorter than MaxSelectionLen runes, and containing at least one
// Hangul rune.
func Qualifies(s string) bool {
	if s == "" || utf8.RuneCountInString(s) >= MaxSelectionLen {
		return false
	}
	for _, r := range s {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// Observe feeds a new selection into the workflow. A qualifying
// selection starts (or restarts) the debounce window and returns its
// generation; anything else clears the capture entirely.
func (w *Workflow) Observe(selection string) (gen int, qualified bool) {
	if !Qualifies(selection) {
		w.Clear()
		return 0, false
	}
	w.gen++
	w.state = Debouncing
	w.text = selection
	w.translation = ""
	return w.gen, true
}

// DebounceElapsed marks the debounce window done. Returns true when the
// caller should now request a translation for Text(). A stale generation
// (the selection changed during the window) is ignored.
func (w *Workflow) DebounceElapsed(gen int) bool {
	if gen != w.gen || w.state != Debouncing {
		return false
	}
	w.state = Pending
	return true
}

// TranslationResult delivers a completed translation request. Stale
// completions are discarded. A failed request leaves the workflow
// Pending; re-selecting the text is the retry path.
func (w *Workflow) TranslationResult(gen int, english string, err error) {
	if gen != w.gen || w.state != Pending {
		return
	}
	if err != nil {
		return
	}
	w.translation = english
	w.state = Translated
}

// Save writes the translated capture into the word bank. A duplicate
// resolves to SavedDuplicate with nothing written; both outcomes start
// the confirmation flash and return its generation.
func (w *Workflow) Save(bank WordSaver) (gen int, err error) {
	if w.state != Translated {
		return 0, nil
	}
	_, addErr := bank.AddWord(w.text, w.translation)
	switch {
	case addErr == nil:
		w.state = SavedNew
	case errors.Is(addErr, store.ErrDuplicateWord):
		w.state = SavedDuplicate
	default:
		return 0, addErr
	}
	w.gen++
	return w.gen, nil
}

// FlashElapsed ends the saved/duplicate confirmation and returns to
// Idle. Stale generations (a new capture started meanwhile) are ignored.
func (w *Workflow) FlashElapsed(gen int) {
	if gen != w.gen {
		return
	}
	if w.state == SavedNew || w.state == SavedDuplicate {
		w.Clear()
	}
}

// Clear drops the active capture and returns to Idle. The generation
// still advances so in-flight completions die quietly.
func (w *Workflow) Clear() {
	w.gen++
	w.state = Idle
	w.text = ""
	w.translation = ""
}
