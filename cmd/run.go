package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dayoung/topikpal/internal/app"
	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/llm"
	"github.com/dayoung/topikpal/internal/store"
	"github.com/dayoung/topikpal/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve data path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Provider from explicit config first, then discovered API keys.
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}

	provider, err := llm.NewProvider(ctx, cfg, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI tutor and quick translation will be unavailable.")
		// An empty mock fails every call, which the UI already renders
		// as the tutor's fixed fallback text.
		provider = llm.NewMockProvider()
	}
	tutorSvc := tutor.New(provider)

	// Pronunciation needs a Gemini key specifically; everything else
	// degrades to silence.
	var synth audio.Synthesizer
	if cfg.Gemini.APIKey != "" {
		if speaker, err := llm.NewGeminiSpeaker(ctx, cfg.Gemini); err == nil {
			synth = speaker
		}
	}
	pron := audio.NewPronouncer(synth, audio.NewPlayer(), llm.SpeechSampleRate)

	return app.Run(app.Deps{
		Store:      st,
		Tutor:      tutorSvc,
		Pronouncer: pron,
	})
}
