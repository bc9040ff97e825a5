// Package tutor wraps the LLM provider in the two study-facing
// operations: free-form tutor chat and single-word quick translation.
package tutor

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dayoung/topikpal/internal/llm"
)

// FallbackReply is shown when the tutor backend fails. Fixed text, no
// retry; the learner just sends again.
const FallbackReply = "I'm having trouble connecting to my brain right now. Please try again later!"

// WelcomeReply opens a fresh chat.
const WelcomeReply = "Annyeonghaseyo! 👋 I am your personal TOPIK Buddy. Whether it is a tricky grammar point or a vocabulary query, I am here to help. What is on your mind?"

// ClearedReply opens a chat after the learner wipes the transcript.
const ClearedReply = "Chat reset! How else can I assist your TOPIK studies today?"

// Suggestions are the canned prompts offered on an empty chat.
var Suggestions = []string{
	"Explain -아요/어요",
	"Level 1 Practice",
	"Translate \"Where is the bank?\"",
	"Polite greetings",
}

const chatSystemPrompt = "You are a professional Korean language tutor specialized in TOPIK I (Levels 1 and 2). " +
	"Your goal is to explain grammar, translate phrases, and provide practice examples in a friendly, encouraging way. " +
	"Use simple English and include Korean text with Romanization and translations. " +
	"Keep explanations concise but thorough."

const translateSystemPrompt = "You are a Korean-English dictionary. " +
	"Translate the given Korean word or short phrase into natural English. " +
	"Respond with the translation only, no commentary."

// translationSchema constrains quick-translate output to one field.
var translationSchema = &llm.Schema{
	Name:        "quick-translation",
	Description: "English translation of a short Korean selection",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"description": "The English translation, a word or short phrase",
			},
		},
		"required": []any{"translation"},
	},
}

// Service answers tutor chat and quick translation requests.
type Service struct {
	provider llm.Provider
}

// New creates a Service on top of a Provider.
func New(p llm.Provider) *Service {
	return &Service{provider: p}
}

// Chat sends the transcript and returns the tutor's reply. Any failure
// yields FallbackReply; the error is reported alongside for logging but
// the reply is always usable.
func (s *Service) Chat(ctx context.Context, history []llm.Message) (string, error) {
	ctx = llm.WithPurpose(ctx, "tutor_chat")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      chatSystemPrompt,
		Messages:    history,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return FallbackReply, err
	}

	reply := decodeText(resp.Content)
	if reply == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

// QuickTranslate translates a short Korean selection into a single
// English string. The caller decides what a failure means (the capture
// workflow stays pending).
func (s *Service) QuickTranslate(ctx context.Context, korean string) (string, error) {
	ctx = llm.WithPurpose(ctx, "quick_translate")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    translateSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: korean}},
		Schema:    translationSchema,
		MaxTokens: 128,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return strings.TrimSpace(out.Translation), nil
}

// decodeText unwraps provider content that may arrive either as a JSON
// string or as plain text.
func decodeText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}
