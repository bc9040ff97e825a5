package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrDuplicateWord is returned when a word with the same Korean text is
// already in the bank. Matching is exact-string only.
var ErrDuplicateWord = errors.New("word already in bank")

// ErrWordNotFound is returned for operations on an unknown entry id.
var ErrWordNotFound = errors.New("word not found")

// VocabEntry is one saved word. JSON field names are fixed for
// compatibility with dumps from the original web edition.
type VocabEntry struct {
	ID      string `json:"id"`
	Korean  string `json:"korean"`
	English string `json:"english"`
	Learned bool   `json:"learned"`
	AddedAt int64  `json:"addedAt"`
}

// WordBank returns all saved words in insertion order. Absent or corrupt
// data yields an empty bank.
func (a *Adapter) WordBank() []VocabEntry {
	raw, err := a.backend.GetRaw(WordBankKey)
	if err != nil || raw == nil {
		return []VocabEntry{}
	}

	var bank []VocabEntry
	if err := json.Unmarshal(raw, &bank); err != nil || bank == nil {
		return []VocabEntry{}
	}
	return bank
}

// AddWord appends a new word to the bank. Returns ErrDuplicateWord (and
// writes nothing) when the exact Korean string is already present.
func (a *Adapter) AddWord(korean, english string) (VocabEntry, error) {
	bank := a.WordBank()
	for _, e := range bank {
		if e.Korean == korean {
			return VocabEntry{}, ErrDuplicateWord
		}
	}

	now := time.Now()
	entry := VocabEntry{
		ID:      newEntryID(bank, now),
		Korean:  korean,
		English: english,
		Learned: false,
		AddedAt: now.UnixMilli(),
	}
	bank = append(bank, entry)

	if err := a.saveWordBank(bank); err != nil {
		return VocabEntry{}, err
	}
	return entry, nil
}

// ToggleLearned flips the learned flag of one entry.
func (a *Adapter) ToggleLearned(id string) error {
	bank := a.WordBank()
	for i := range bank {
		if bank[i].ID == id {
			bank[i].Learned = !bank[i].Learned
			return a.saveWordBank(bank)
		}
	}
	return ErrWordNotFound
}

// DeleteWord removes one entry from the bank.
func (a *Adapter) DeleteWord(id string) error {
	bank := a.WordBank()
	for i := range bank {
		if bank[i].ID == id {
			bank = append(bank[:i], bank[i+1:]...)
			return a.saveWordBank(bank)
		}
	}
	return ErrWordNotFound
}

// ClearWordBank empties the bank.
func (a *Adapter) ClearWordBank() error {
	return a.saveWordBank([]VocabEntry{})
}

// ClearProgress resets all checklist progress.
func (a *Adapter) ClearProgress() error {
	return a.SetProgress(map[string]bool{})
}

func (a *Adapter) saveWordBank(bank []VocabEntry) error {
	data, err := json.Marshal(bank)
	if err != nil {
		return fmt.Errorf("marshal word bank: %w", err)
	}
	if err := a.backend.SetRaw(WordBankKey, data); err != nil {
		return err
	}
	a.notifier.Notify(EventWordBankUpdated)
	return nil
}

// newEntryID derives an id from the wall clock, bumping past any collision
// with an existing entry so rapid saves stay unique.
func newEntryID(bank []VocabEntry, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		taken := false
		for _, e := range bank {
			if e.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		ms++
	}
}
