package store

import "time"

// LLMEvent is one logged LLM API call.
type LLMEvent struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Purpose      string    `json:"purpose"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	LatencyMs    int64     `json:"latencyMs"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// AppendLLMEvent records an LLM API call in the request log.
func (a *Adapter) AppendLLMEvent(ev LLMEvent) error {
	return a.backend.AppendLLMEvent(ev)
}

// ListLLMEvents returns the most recent logged calls, newest first.
func (a *Adapter) ListLLMEvents(limit int) ([]LLMEvent, error) {
	return a.backend.ListLLMEvents(limit)
}
