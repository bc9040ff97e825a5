package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileState is the on-disk shape of the JSON file backend.
type fileState struct {
	Records   map[string]json.RawMessage `json:"records"`
	LLMEvents []LLMEvent                 `json:"llmEvents"`
	nextID    int64
}

// FileBackend stores all records in a single JSON file. Every write
// rewrites the file atomically (tmp file + rename). It trades throughput
// for a store that can be inspected and edited with any text editor.
type FileBackend struct {
	mu    sync.Mutex
	path  string
	state fileState
}

// OpenFile loads (or initializes) the JSON store at path.
// An unreadable or corrupt file starts the store empty rather than failing.
func OpenFile(path string) (*FileBackend, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	b := &FileBackend{path: path}
	b.state.Records = make(map[string]json.RawMessage)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var loaded fileState
	if err := json.Unmarshal(data, &loaded); err == nil {
		if loaded.Records != nil {
			b.state.Records = loaded.Records
		}
		b.state.LLMEvents = loaded.LLMEvents
		for _, ev := range loaded.LLMEvents {
			if ev.ID >= b.state.nextID {
				b.state.nextID = ev.ID + 1
			}
		}
	}

	return b, nil
}

// GetRaw returns the stored value for key, or (nil, nil) when absent.
func (b *FileBackend) GetRaw(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	raw, ok := b.state.Records[key]
	if !ok {
		return nil, nil
	}
	return []byte(raw), nil
}

// SetRaw stores value under key and persists the whole file.
func (b *FileBackend) SetRaw(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Records[key] = json.RawMessage(value)
	return b.persistLocked()
}

// AppendLLMEvent records an LLM API call.
func (b *FileBackend) AppendLLMEvent(ev LLMEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	ev.ID = b.state.nextID
	b.state.nextID++
	b.state.LLMEvents = append(b.state.LLMEvents, ev)
	return b.persistLocked()
}

// ListLLMEvents returns the most recent events, newest first.
func (b *FileBackend) ListLLMEvents(limit int) ([]LLMEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.state.LLMEvents)
	if limit <= 0 || limit > n {
		limit = n
	}

	events := make([]LLMEvent, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		events = append(events, b.state.LLMEvents[i])
	}
	return events, nil
}

// Close is a no-op for the file backend; writes are already durable.
func (b *FileBackend) Close() error {
	return nil
}

// persistLocked writes the state atomically. Caller holds b.mu.
func (b *FileBackend) persistLocked() error {
	data, err := json.MarshalIndent(b.state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// DefaultFilePath mirrors DefaultDBPath for the JSON backend.
func DefaultFilePath() (string, error) {
	p, err := DefaultDBPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(p), "topikpal.json"), nil
}
