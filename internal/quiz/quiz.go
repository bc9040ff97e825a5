// Package quiz implements the practice session state machine: a linear
// walk over a filtered question sequence with per-question answer reveal
// and a running point total.
package quiz

import "github.com/dayoung/topikpal/internal/content"

// Phase is the lifecycle position of a session.
type Phase int

const (
	// Answering means the current question accepts option selection.
	Answering Phase = iota

	// Revealed means the current question has been graded and shows the
	// correct answer and explanation.
	Revealed

	// Finished means the sequence is exhausted.
	Finished

	// Empty means the active filter matched no questions. Distinct from
	// Finished: nothing was ever answered.
	Empty
)

// NoSelection marks a question with no option picked yet.
const NoSelection = -1

// Session walks a filtered question sequence. Points only ever increase,
// and each question contributes its value at most once.
type Session struct {
	ID        string
	Filter    content.Filter
	Questions []content.Question

	Index    int
	Selected int
	Points   int
	Phase    Phase
}

// New builds a session over the pool subset matching f.
func New(id string, f content.Filter) *Session {
	s := &Session{
		ID:        id,
		Filter:    f,
		Questions: content.FilterQuestions(f),
		Selected:  NoSelection,
	}
	if len(s.Questions) == 0 {
		s.Phase = Empty
	}
	return s
}

// Current returns the active question, or nil when the session is Empty
// or Finished.
func (s *Session) Current() *content.Question {
	if s.Phase == Empty || s.Phase == Finished {
		return nil
	}
	return &s.Questions[s.Index]
}

// Select records an option choice. Ignored once the answer is revealed.
func (s *Session) Select(option int) {
	if s.Phase != Answering {
		return
	}
	if option < 0 || option >= len(s.Questions[s.Index].Options) {
		return
	}
	s.Selected = option
}

// Submit grades the current selection. A submit with no selection is a
// no-op, as is a repeat submit while revealed: points are added exactly
// once per question.
func (s *Session) Submit() {
	if s.Phase != Answering || s.Selected == NoSelection {
		return
	}
	q := s.Questions[s.Index]
	if s.Selected == q.Correct {
		s.Points += q.Points
	}
	s.Phase = Revealed
}

// Correct reports whether the revealed selection was right.
func (s *Session) Correct() bool {
	return s.Phase == Revealed && s.Selected == s.Questions[s.Index].Correct
}

// Continue advances past a revealed answer to the next question, or to
// Finished at the end of the sequence. Ignored in any other phase.
func (s *Session) Continue() {
	if s.Phase != Revealed {
		return
	}
	if s.Index+1 < len(s.Questions) {
		s.Index++
		s.Selected = NoSelection
		s.Phase = Answering
		return
	}
	s.Phase = Finished
}

// Restart rewinds the same sequence to the beginning.
func (s *Session) Restart() {
	s.Index = 0
	s.Selected = NoSelection
	s.Points = 0
	s.Phase = Answering
	if len(s.Questions) == 0 {
		s.Phase = Empty
	}
}
