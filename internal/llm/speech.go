package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// SpeechSampleRate is the PCM sample rate the Gemini TTS models emit.
const SpeechSampleRate = 24000

// speechVoice is the prebuilt voice used for Korean pronunciation.
const speechVoice = "Kore"

// Speaker synthesizes speech from text. The returned bytes are raw
// 16-bit little-endian mono PCM at SpeechSampleRate.
type Speaker interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// GeminiSpeaker implements Speaker using the Gemini TTS models.
type GeminiSpeaker struct {
	client *genai.Client
	model  string
}

// NewGeminiSpeaker creates a Speaker from Gemini configuration.
func NewGeminiSpeaker(ctx context.Context, cfg GeminiConfig) (*GeminiSpeaker, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := cfg.TTSModel
	if model == "" {
		model = "gemini-2.5-flash-preview-tts"
	}

	return &GeminiSpeaker{client: client, model: model}, nil
}

// Synthesize requests a spoken rendition of text and returns the raw
// PCM bytes, or an empty slice when the response carries no audio.
func (s *GeminiSpeaker) Synthesize(ctx context.Context, text string) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: speechVoice,
				},
			},
		},
	}

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: "Read clearly: " + text}}},
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, nil
}
