package store

import (
	"encoding/json"
	"fmt"
	"math"
)

// Progress returns the checklist progress map. Absent or corrupt data
// yields an empty map: a broken record must never break the display path.
func (a *Adapter) Progress() map[string]bool {
	raw, err := a.backend.GetRaw(ProgressKey)
	if err != nil || raw == nil {
		return map[string]bool{}
	}

	var progress map[string]bool
	if err := json.Unmarshal(raw, &progress); err != nil || progress == nil {
		return map[string]bool{}
	}
	return progress
}

// SetProgress persists the full progress map and broadcasts the update.
func (a *Adapter) SetProgress(progress map[string]bool) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := a.backend.SetRaw(ProgressKey, data); err != nil {
		return err
	}

	a.notifier.Notify(EventProgressUpdated)
	return nil
}

// ToggleChecklistItem flips the done state of one checklist item and
// persists the result. Keys are never removed, only flipped; an absent
// key reads as false, so the first toggle sets it true.
func (a *Adapter) ToggleChecklistItem(id string) (map[string]bool, error) {
	progress := a.Progress()
	progress[id] = !progress[id]
	if err := a.SetProgress(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// PercentComplete computes round(done/total*100). A zero total is 0%.
func PercentComplete(progress map[string]bool, total int) int {
	if total <= 0 {
		return 0
	}
	done := 0
	for _, v := range progress {
		if v {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
