package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/store"
)

// NewProvider creates a Provider from configuration using apiKey in place of
// any key the configuration carries.
// It returns the provider wrapped with timeout and logging middleware.
func NewProvider(ctx context.Context, cfg Config, apiKey string, repo store.EventRepo, logger *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		c := cfg.Anthropic
		c.APIKey = apiKey
		base, err = NewAnthropicProvider(c)
	case "openai":
		c := cfg.OpenAI
		c.APIKey = apiKey
		base, err = NewOpenAIProvider(c)
	case "gemini":
		c := cfg.Gemini
		c.APIKey = apiKey
		base, err = NewGeminiProvider(ctx, c)
	case "openrouter":
		c := cfg.OpenRouter
		c.APIKey = apiKey
		base, err = NewOpenRouterProvider(c)
	case "compatible":
		c := cfg.Compatible
		c.APIKey = apiKey
		base, err = NewCompatibleProvider(c)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → timeout → logging → base
	logged := WithLogging(base, cfg.Provider, repo, logger)
	return WithTimeout(logged, cfg.Timeout), nil
}
