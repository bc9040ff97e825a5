package quiz

import (
	"testing"

	"github.com/dayoung/topikpal/internal/content"
)

func TestSubmitWithoutSelectionIsNoOp(t *testing.T) {
	s := New("t", content.Filter{})
	s.Submit()
	if s.Phase != Answering {
		t.Fatalf("phase = %v, want Answering", s.Phase)
	}
	if s.Points != 0 {
		t.Fatalf("points = %d, want 0", s.Points)
	}
}

func TestDoubleSubmitAddsPointsOnce(t *testing.T) {
	s := New("t", content.Filter{})
	q := s.Current()
	s.Select(q.Correct)
	s.Submit()
	want := q.Points
	if s.Points != want {
		t.Fatalf("points after submit = %d, want %d", s.Points, want)
	}

	s.Submit()
	s.Submit()
	if s.Points != want {
		t.Fatalf("points after re-submit = %d, want %d", s.Points, want)
	}
	if s.Phase != Revealed {
		t.Fatalf("phase = %v, want Revealed", s.Phase)
	}
}

func TestSelectIgnoredWhileRevealed(t *testing.T) {
	s := New("t", content.Filter{})
	s.Select(s.Current().Correct)
	s.Submit()

	wrong := (s.Current().Correct + 1) % 4
	s.Select(wrong)
	if s.Selected != s.Current().Correct {
		t.Fatal("selection changed after reveal")
	}
}

func TestWrongAnswerScoresNothing(t *testing.T) {
	s := New("t", content.Filter{})
	q := s.Current()
	s.Select((q.Correct + 1) % 4)
	s.Submit()
	if s.Points != 0 {
		t.Fatalf("points = %d, want 0", s.Points)
	}
	if s.Correct() {
		t.Fatal("Correct() = true for wrong answer")
	}
}

func TestAllCorrectRunTotalsPointSum(t *testing.T) {
	f := content.Filter{ExamSet: 1}
	s := New("t", f)

	wantTotal := 0
	for _, q := range content.FilterQuestions(f) {
		wantTotal += q.Points
	}

	steps := 0
	for s.Phase != Finished {
		s.Select(s.Current().Correct)
		s.Submit()
		if !s.Correct() {
			t.Fatal("expected correct submission")
		}
		s.Continue()
		steps++
		if steps > len(s.Questions)+1 {
			t.Fatal("session did not finish")
		}
	}

	if s.Points != wantTotal {
		t.Fatalf("points = %d, want %d", s.Points, wantTotal)
	}
	if steps != len(s.Questions) {
		t.Fatalf("finished after %d steps, want %d", steps, len(s.Questions))
	}

	// Finished is terminal until restart.
	s.Continue()
	s.Submit()
	if s.Phase != Finished || s.Points != wantTotal {
		t.Fatal("Finished state not stable")
	}
}

func TestEmptyFilterIsDistinctTerminalState(t *testing.T) {
	// Q43 - Q70 only has an exam-set-4 question; intersecting with set 1
	// leaves nothing.
	s := New("t", content.Filter{RangeKey: "Q43 - Q70", ExamSet: 1})
	if s.Phase != Empty {
		t.Fatalf("phase = %v, want Empty", s.Phase)
	}
	if s.Current() != nil {
		t.Fatal("Current() != nil for empty session")
	}

	s.Select(0)
	s.Submit()
	s.Continue()
	if s.Phase != Empty {
		t.Fatalf("phase after inputs = %v, want Empty", s.Phase)
	}
}

func TestNewSessionResetsProgress(t *testing.T) {
	s := New("t", content.Filter{ExamSet: 1})
	s.Select(s.Current().Correct)
	s.Submit()
	s.Continue()

	// A filter change is modeled as a fresh session.
	s2 := New("t2", content.Filter{ExamSet: 2})
	if s2.Index != 0 || s2.Points != 0 || s2.Phase != Answering || s2.Selected != NoSelection {
		t.Fatalf("fresh session carried state: %+v", s2)
	}
}

func TestRestart(t *testing.T) {
	s := New("t", content.Filter{ExamSet: 3})
	for s.Phase != Finished {
		s.Select(s.Current().Correct)
		s.Submit()
		s.Continue()
	}

	s.Restart()
	if s.Index != 0 || s.Points != 0 || s.Phase != Answering || s.Selected != NoSelection {
		t.Fatalf("restart left state: %+v", s)
	}
}

func TestOutOfRangeSelectionIgnored(t *testing.T) {
	s := New("t", content.Filter{})
	s.Select(7)
	s.Select(-2)
	if s.Selected != NoSelection {
		t.Fatalf("selected = %d, want NoSelection", s.Selected)
	}
}
