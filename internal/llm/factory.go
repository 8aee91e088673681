package llm

import (
	"context"
	"fmt"

	"github.com/edukite/pathfinder/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging. There is no retry middleware: a failed acquisition or analysis is
// surfaced immediately, and every retry is an explicit user-triggered restart.
func NewProvider(ctx context.Context, cfg Config, recorder store.LLMEventRecorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, recorder), nil
}

// NewProviderFromEnv builds a provider from PATHFINDER_* env vars, falling
// back to discovery of standard API key variables.
func NewProviderFromEnv(ctx context.Context, recorder store.LLMEventRecorder) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, recorder)
}
