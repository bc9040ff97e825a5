package capture

import (
	"errors"
	"strings"
	"testing"

	"github.com/dayoung/topikpal/internal/store"
)

type fakeBank struct {
	words map[string]bool
	adds  int
}

func newFakeBank() *fakeBank {
	return &fakeBank{words: map[string]bool{}}
}

func (b *fakeBank) AddWord(korean, english string) (store.VocabEntry, error) {
	if b.words[korean] {
		return store.VocabEntry{}, store.ErrDuplicateWord
	}
	b.words[korean] = true
	b.adds++
	return store.VocabEntry{ID: "1", Korean: korean, English: english}, nil
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"single hangul word", "학교", true},
		{"hangul with latin gloss", "학교 school", true},
		{"latin only", "school", false},
		{"digits and punctuation", "30,000!", false},
		{"whitespace only", "   ", false},
		{"29 hangul runes", strings.Repeat("가", 29), true},
		{"30 hangul runes", strings.Repeat("가", 30), false},
		{"long sentence", "여기는 도서관입니다. 사람들이 책을 읽습니다. 아주 조용합니다.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifies(tt.in); got != tt.want {
				t.Errorf("Qualifies(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHappyPath(t *testing.T) {
	w := New()
	bank := newFakeBank()

	gen, ok := w.Observe("도서관")
	if !ok || w.State() != Debouncing {
		t.Fatalf("observe: ok=%v state=%v", ok, w.State())
	}

	if !w.DebounceElapsed(gen) {
		t.Fatal("debounce not accepted")
	}
	if w.State() != Pending {
		t.Fatalf("state = %v, want Pending", w.State())
	}

	w.TranslationResult(gen, "Library", nil)
	if w.State() != Translated || w.Translation() != "Library" {
		t.Fatalf("state = %v translation = %q", w.State(), w.Translation())
	}

	flashGen, err := w.Save(bank)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if w.State() != SavedNew || bank.adds != 1 {
		t.Fatalf("state = %v adds = %d, want SavedNew with one write", w.State(), bank.adds)
	}

	w.FlashElapsed(flashGen)
	if w.State() != Idle {
		t.Fatalf("state = %v, want Idle after flash", w.State())
	}
}

func TestDuplicateSaveWritesNothing(t *testing.T) {
	w := New()
	bank := newFakeBank()
	bank.words["물"] = true

	gen, _ := w.Observe("물")
	w.DebounceElapsed(gen)
	w.TranslationResult(gen, "Water", nil)

	if _, err := w.Save(bank); err != nil {
		t.Fatalf("save: %v", err)
	}
	if w.State() != SavedDuplicate {
		t.Fatalf("state = %v, want SavedDuplicate", w.State())
	}
	if bank.adds != 0 {
		t.Fatalf("adds = %d, want 0", bank.adds)
	}
}

func TestNewSelectionSupersedesOldCapture(t *testing.T) {
	w := New()

	gen1, _ := w.Observe("학교")
	w.DebounceElapsed(gen1)

	// Re-select before the first translation lands.
	gen2, _ := w.Observe("병원")
	if gen2 == gen1 {
		t.Fatal("generations not distinct")
	}

	// The stale completion must be discarded.
	w.TranslationResult(gen1, "School", nil)
	if w.State() != Debouncing {
		t.Fatalf("state = %v, want Debouncing (stale result applied?)", w.State())
	}

	w.DebounceElapsed(gen2)
	w.TranslationResult(gen2, "Hospital", nil)
	if w.Translation() != "Hospital" {
		t.Fatalf("translation = %q, want Hospital", w.Translation())
	}
}

func TestStaleDebounceIgnored(t *testing.T) {
	w := New()
	gen1, _ := w.Observe("학교")
	w.Observe("병원")

	if w.DebounceElapsed(gen1) {
		t.Fatal("stale debounce accepted")
	}
	if w.State() != Debouncing {
		t.Fatalf("state = %v, want Debouncing", w.State())
	}
}

func TestFailedTranslationStaysPendingUntilSuperseded(t *testing.T) {
	w := New()
	gen, _ := w.Observe("도서관")
	w.DebounceElapsed(gen)

	w.TranslationResult(gen, "", errors.New("rate limited"))
	if w.State() != Pending {
		t.Fatalf("state = %v, want Pending after failure", w.State())
	}

	// Retry path: select again.
	gen2, _ := w.Observe("도서관")
	w.DebounceElapsed(gen2)
	w.TranslationResult(gen2, "Library", nil)
	if w.State() != Translated {
		t.Fatalf("state = %v, want Translated after retry", w.State())
	}
}

func TestNonQualifyingSelectionClearsCapture(t *testing.T) {
	w := New()
	gen, _ := w.Observe("학교")
	w.DebounceElapsed(gen)
	w.TranslationResult(gen, "School", nil)

	if _, ok := w.Observe("plain english"); ok {
		t.Fatal("non-qualifying selection reported as qualified")
	}
	if w.State() != Idle || w.Text() != "" {
		t.Fatalf("state = %v text = %q, want cleared", w.State(), w.Text())
	}
}

func TestSaveOutsideTranslatedIsNoOp(t *testing.T) {
	w := New()
	bank := newFakeBank()

	if _, err := w.Save(bank); err != nil {
		t.Fatalf("save idle: %v", err)
	}
	if bank.adds != 0 || w.State() != Idle {
		t.Fatal("idle save had an effect")
	}

	gen, _ := w.Observe("학교")
	if _, err := w.Save(bank); err != nil {
		t.Fatalf("save debouncing: %v", err)
	}
	if bank.adds != 0 || w.State() != Debouncing {
		t.Fatal("debouncing save had an effect")
	}
	_ = gen
}

func TestFlashElapsedStaleGeneration(t *testing.T) {
	w := New()
	bank := newFakeBank()

	gen, _ := w.Observe("학교")
	w.DebounceElapsed(gen)
	w.TranslationResult(gen, "School", nil)
	flashGen, _ := w.Save(bank)

	// A new capture begins before the flash timer fires.
	w.Observe("병원")
	w.FlashElapsed(flashGen)
	if w.State() != Debouncing {
		t.Fatalf("state = %v, want Debouncing (stale flash applied?)", w.State())
	}
}
