package wordbank

import (
	"path/filepath"
	"testing"

	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/router"
	"github.com/dayoung/topikpal/internal/store"
)

func testScreen(t *testing.T) (*WordBankScreen, *store.Adapter) {
	t.Helper()
	backend, err := store.OpenFile(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("open backend: %v", err)
	}
	st := store.NewAdapter(backend)
	t.Cleanup(func() { st.Close() })

	pron := audio.NewPronouncer(nil, audio.NewPlayer(), 24000)
	return New(st, pron), st
}

func TestSearchMatchesBothSides(t *testing.T) {
	s, st := testScreen(t)
	if _, err := st.AddWord("학교", "School"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.AddWord("도서관", "Library"); err != nil {
		t.Fatal(err)
	}
	s.reload()

	s.search.Model.SetValue("school")
	got := s.visible()
	if len(got) != 1 || got[0].Korean != "학교" {
		t.Fatalf("english search: got %+v", got)
	}

	s.search.Model.SetValue("도서")
	got = s.visible()
	if len(got) != 1 || got[0].English != "Library" {
		t.Fatalf("korean search: got %+v", got)
	}

	s.search.Model.SetValue("")
	if len(s.visible()) != 2 {
		t.Fatal("empty query should show everything")
	}
}

func TestRefreshMsgReloadsBank(t *testing.T) {
	s, st := testScreen(t)
	if len(s.bank) != 0 {
		t.Fatal("expected empty bank")
	}

	if _, err := st.AddWord("물", "Water"); err != nil {
		t.Fatal(err)
	}
	s.Update(router.RefreshMsg{Event: store.EventWordBankUpdated})

	if len(s.bank) != 1 {
		t.Fatalf("bank = %d entries, want 1", len(s.bank))
	}
}

func TestSelectionClampedAfterDelete(t *testing.T) {
	s, st := testScreen(t)
	a, _ := st.AddWord("밥", "Rice")
	b, _ := st.AddWord("물", "Water")
	s.reload()
	s.selected = 1

	if err := st.DeleteWord(b.ID); err != nil {
		t.Fatal(err)
	}
	if err := st.DeleteWord(a.ID); err != nil {
		t.Fatal(err)
	}
	s.reload()

	if s.selected != 0 {
		t.Fatalf("selected = %d, want 0", s.selected)
	}
}
