package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	backend, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	a := NewAdapter(backend)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestProgressEmptyByDefault(t *testing.T) {
	a := openTestAdapter(t)
	if got := a.Progress(); len(got) != 0 {
		t.Fatalf("fresh progress = %v, want empty", got)
	}
}

func TestProgressFailSoftOnCorruptRecord(t *testing.T) {
	a := openTestAdapter(t)
	if err := a.backend.SetRaw(ProgressKey, []byte("{not json")); err != nil {
		t.Fatalf("set raw: %v", err)
	}
	if got := a.Progress(); len(got) != 0 {
		t.Fatalf("corrupt progress = %v, want empty", got)
	}

	// A corrupt record must not block a fresh write either.
	if _, err := a.ToggleChecklistItem("vocab1"); err != nil {
		t.Fatalf("toggle after corruption: %v", err)
	}
	if !a.Progress()["vocab1"] {
		t.Fatal("expected vocab1 done after toggle")
	}
}

func TestWordBankFailSoftOnCorruptRecord(t *testing.T) {
	a := openTestAdapter(t)
	if err := a.backend.SetRaw(WordBankKey, []byte(`{"not":"an array"}`)); err != nil {
		t.Fatalf("set raw: %v", err)
	}
	if got := a.WordBank(); len(got) != 0 {
		t.Fatalf("corrupt bank = %v, want empty", got)
	}
}

func TestToggleChecklistItemPairRestoresState(t *testing.T) {
	a := openTestAdapter(t)

	if _, err := a.ToggleChecklistItem("grammar2"); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !a.Progress()["grammar2"] {
		t.Fatal("expected true after first toggle")
	}

	if _, err := a.ToggleChecklistItem("grammar2"); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if a.Progress()["grammar2"] {
		t.Fatal("expected false after toggle pair")
	}
	// Key is flipped, never removed.
	if _, ok := a.Progress()["grammar2"]; !ok {
		t.Fatal("expected key to remain after toggle pair")
	}
}

func TestPercentComplete(t *testing.T) {
	tests := []struct {
		name     string
		progress map[string]bool
		total    int
		want     int
	}{
		{"empty", map[string]bool{}, 9, 0},
		{"one of nine rounds to 11", map[string]bool{"vocab1": true}, 9, 11},
		{"false values do not count", map[string]bool{"a": true, "b": false}, 9, 11},
		{"half rounds up", map[string]bool{"a": true}, 2, 50},
		{"all done", map[string]bool{"a": true, "b": true}, 2, 100},
		{"zero total", map[string]bool{"a": true}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentComplete(tt.progress, tt.total); got != tt.want {
				t.Errorf("PercentComplete() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProgressWriteNotifiesSubscribers(t *testing.T) {
	a := openTestAdapter(t)
	sub := a.Subscribe()
	defer a.Unsubscribe(sub)

	if _, err := a.ToggleChecklistItem("reading1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	select {
	case ev := <-sub.C:
		if ev != EventProgressUpdated {
			t.Errorf("event = %q, want %q", ev, EventProgressUpdated)
		}
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}
}

func TestNotifySkipsSlowSubscriber(t *testing.T) {
	n := NewNotifier()
	sub := n.Subscribe()
	defer n.Unsubscribe(sub)

	// Overfill the buffer. Notify must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			n.Notify(EventProgressUpdated)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a slow subscriber")
	}
}

func TestAddWordAndOrder(t *testing.T) {
	a := openTestAdapter(t)

	words := []struct{ korean, english string }{
		{"안녕하세요", "hello"},
		{"감사합니다", "thank you"},
		{"학교", "school"},
	}
	for _, w := range words {
		if _, err := a.AddWord(w.korean, w.english); err != nil {
			t.Fatalf("add %q: %v", w.korean, err)
		}
	}

	bank := a.WordBank()
	if len(bank) != 3 {
		t.Fatalf("bank size = %d, want 3", len(bank))
	}
	for i, w := range words {
		if bank[i].Korean != w.korean {
			t.Errorf("bank[%d].Korean = %q, want %q (insertion order)", i, bank[i].Korean, w.korean)
		}
		if bank[i].Learned {
			t.Errorf("bank[%d] starts learned", i)
		}
		if bank[i].ID == "" || bank[i].AddedAt == 0 {
			t.Errorf("bank[%d] missing id or timestamp", i)
		}
	}
}

func TestAddWordDuplicateWritesNothing(t *testing.T) {
	a := openTestAdapter(t)

	if _, err := a.AddWord("물", "water"); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := a.AddWord("물", "water (again)")
	if err != ErrDuplicateWord {
		t.Fatalf("duplicate add err = %v, want ErrDuplicateWord", err)
	}

	bank := a.WordBank()
	if len(bank) != 1 {
		t.Fatalf("bank size after duplicate = %d, want 1", len(bank))
	}
	if bank[0].English != "water" {
		t.Errorf("duplicate add modified entry: %q", bank[0].English)
	}
}

func TestEntryIDsUniqueUnderRapidAdds(t *testing.T) {
	a := openTestAdapter(t)

	korean := []string{"하나", "둘", "셋", "넷", "다섯"}
	seen := map[string]bool{}
	for _, k := range korean {
		e, err := a.AddWord(k, "n")
		if err != nil {
			t.Fatalf("add %q: %v", k, err)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestToggleLearnedAndDelete(t *testing.T) {
	a := openTestAdapter(t)

	e, err := a.AddWord("책", "book")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := a.ToggleLearned(e.ID); err != nil {
		t.Fatalf("toggle learned: %v", err)
	}
	if !a.WordBank()[0].Learned {
		t.Fatal("expected learned after toggle")
	}

	if err := a.DeleteWord(e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(a.WordBank()) != 0 {
		t.Fatal("expected empty bank after delete")
	}

	if err := a.DeleteWord(e.ID); err != ErrWordNotFound {
		t.Fatalf("delete missing err = %v, want ErrWordNotFound", err)
	}
	if err := a.ToggleLearned("nope"); err != ErrWordNotFound {
		t.Fatalf("toggle missing err = %v, want ErrWordNotFound", err)
	}
}

func TestLLMEventLog(t *testing.T) {
	a := openTestAdapter(t)

	events := []LLMEvent{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor_chat", InputTokens: 10, OutputTokens: 50, LatencyMs: 420, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quick_translate", Success: false, ErrorMessage: "rate limited"},
	}
	for _, ev := range events {
		if err := a.AppendLLMEvent(ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := a.ListLLMEvents(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Purpose != "quick_translate" || got[1].Purpose != "tutor_chat" {
		t.Errorf("order = [%s, %s], want newest first", got[0].Purpose, got[1].Purpose)
	}
	if got[0].Success || !got[1].Success {
		t.Error("success flags lost in round trip")
	}

	limited, err := a.ListLLMEvents(1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Purpose != "quick_translate" {
		t.Errorf("limited list = %v, want only newest", limited)
	}
}

func TestFileBackendPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	b, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	a := NewAdapter(b)
	if _, err := a.AddWord("사과", "apple"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := a.ToggleChecklistItem("vocab1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := a.AppendLLMEvent(LLMEvent{Provider: "mock", Purpose: "tutor_chat", Success: true}); err != nil {
		t.Fatalf("append event: %v", err)
	}

	b2, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	a2 := NewAdapter(b2)

	if bank := a2.WordBank(); len(bank) != 1 || bank[0].Korean != "사과" {
		t.Errorf("reloaded bank = %v", bank)
	}
	if !a2.Progress()["vocab1"] {
		t.Error("reloaded progress lost vocab1")
	}
	events, err := a2.ListLLMEvents(0)
	if err != nil || len(events) != 1 {
		t.Errorf("reloaded events = %v (err %v), want 1", events, err)
	}
}

func TestFileBackendToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("garbage{{{"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	b, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open corrupt: %v", err)
	}
	a := NewAdapter(b)
	if got := a.WordBank(); len(got) != 0 {
		t.Fatalf("corrupt file bank = %v, want empty", got)
	}
	// And it is writable again.
	if _, err := a.AddWord("물", "water"); err != nil {
		t.Fatalf("add after corruption: %v", err)
	}
}

func TestClearResets(t *testing.T) {
	a := openTestAdapter(t)
	if _, err := a.AddWord("차", "tea"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := a.ToggleChecklistItem("vocab1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if err := a.ClearWordBank(); err != nil {
		t.Fatalf("clear bank: %v", err)
	}
	if err := a.ClearProgress(); err != nil {
		t.Fatalf("clear progress: %v", err)
	}

	if len(a.WordBank()) != 0 || len(a.Progress()) != 0 {
		t.Fatal("expected empty store after clear")
	}
}

func TestWordBankWriteNotifies(t *testing.T) {
	a := openTestAdapter(t)
	sub := a.Subscribe()
	defer a.Unsubscribe(sub)

	if _, err := a.AddWord("학교", "School"); err != nil {
		t.Fatalf("AddWord: %v", err)
	}

	select {
	case ev := <-sub.C:
		if ev != EventWordBankUpdated {
			t.Fatalf("event = %q, want %q", ev, EventWordBankUpdated)
		}
	default:
		t.Fatal("expected a word bank notification")
	}
}
