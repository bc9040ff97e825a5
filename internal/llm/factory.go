package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging when log is non-nil. Remote failures surface directly to the
// caller; the UI layer substitutes fixed fallback text instead of
// retrying.
func NewProvider(ctx context.Context, cfg Config, log EventLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base, err = NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if log != nil {
		base = WithLogging(base, log)
	}
	return base, nil
}
