package practice

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/capture"
	"github.com/dayoung/topikpal/internal/content"
	"github.com/dayoung/topikpal/internal/llm"
	"github.com/dayoung/topikpal/internal/quiz"
	"github.com/dayoung/topikpal/internal/store"
	"github.com/dayoung/topikpal/internal/tutor"
)

func testScreen(t *testing.T, mock *llm.MockProvider, f content.Filter) (*PracticeScreen, *store.Adapter) {
	t.Helper()
	backend, err := store.OpenFile(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	st := store.NewAdapter(backend)
	t.Cleanup(func() { st.Close() })

	pron := audio.NewPronouncer(nil, audio.NewPlayer(), llm.SpeechSampleRate)
	return New(st, tutor.New(mock), pron, f), st
}

func TestCaptureTokensSkipsNonHangul(t *testing.T) {
	q := &content.Question{
		Prompt:  "다음을 읽고 물음에 답하십시오. Choose the answer.",
		Script:  "여자: 어디에 가요?",
		Options: [4]string{"학교", "식당", "병원", "공원"},
	}

	tokens := captureTokens(q)
	require.Contains(t, tokens, "다음을")
	require.Contains(t, tokens, "학교")
	require.Contains(t, tokens, "가요", "trailing punctuation is trimmed")
	require.NotContains(t, tokens, "Choose")
	require.NotContains(t, tokens, "answer")

	for _, tok := range tokens {
		require.True(t, capture.Qualifies(tok), "token %q should qualify", tok)
	}
}

func TestCaptureTokensDeduplicates(t *testing.T) {
	q := &content.Question{
		Prompt:  "물 물 물",
		Options: [4]string{"물", "밥", "", ""},
	}
	tokens := captureTokens(q)

	count := 0
	for _, tok := range tokens {
		if tok == "물" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestHighlightDebounceTranslateSave(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"translation":"School"}`)},
	)
	s, st := testScreen(t, mock, content.Filter{})
	require.Equal(t, quiz.Answering, s.sess.Phase)
	require.NotEmpty(t, s.tokens)

	cmd := s.highlightNext()
	require.NotNil(t, cmd)
	require.Equal(t, capture.Debouncing, s.cap.State())

	gen := s.cap.Generation()
	_, translate := s.Update(debounceDoneMsg{Gen: gen})
	require.NotNil(t, translate)
	require.Equal(t, capture.Pending, s.cap.State())

	s.Update(translate())
	require.Equal(t, capture.Translated, s.cap.State())
	require.Equal(t, "School", s.cap.Translation())

	saveGen, err := s.cap.Save(st)
	require.NoError(t, err)
	require.NotZero(t, saveGen)
	require.Equal(t, capture.SavedNew, s.cap.State())
	require.Len(t, st.WordBank(), 1)
}

func TestStaleDebounceIsIgnored(t *testing.T) {
	mock := llm.NewMockProvider()
	s, _ := testScreen(t, mock, content.Filter{})

	require.NotNil(t, s.highlightNext())
	stale := s.cap.Generation()
	require.NotNil(t, s.highlightNext()) // supersedes

	_, translate := s.Update(debounceDoneMsg{Gen: stale})
	require.Nil(t, translate)
	require.Equal(t, capture.Debouncing, s.cap.State())
	require.Zero(t, mock.CallCount())
}

func TestEmptyFilterShowsEmptyState(t *testing.T) {
	mock := llm.NewMockProvider()
	// The long-reading range has no set 1 questions in the built-in pool.
	s, _ := testScreen(t, mock, content.Filter{RangeKey: "Q43 - Q70", ExamSet: 1})
	require.Equal(t, quiz.Empty, s.sess.Phase)
	require.Contains(t, s.View(80, 24), "No questions match")
}
