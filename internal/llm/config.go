package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all LLM provider configuration. API keys are supplied per
// call by Client.Generate; DefaultAPIKey only seeds new sessions on
// single-user installs.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "compatible", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Compatible CompatibleConfig

	// DefaultAPIKey, when set, is offered to new sessions.
	DefaultAPIKey string

	// MaxTokens caps each response. Zero lets the provider choose.
	MaxTokens int

	// Timeout is the maximum duration for a single LLM request. Default: 60s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-001"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// CompatibleConfig targets any OpenAI-compatible chat completions endpoint
// such as DeepSeek or a local gateway.
type CompatibleConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-001",
		},
		Compatible: CompatibleConfig{
			Model:   "deepseek-chat",
			BaseURL: "https://api.deepseek.com/v1",
		},
		MaxTokens: 4096,
		Timeout:   60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("TEACHASSIST_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("TEACHASSIST_LLM_MODEL"); m != "" {
		cfg.setModel(m)
	}
	if u := os.Getenv("TEACHASSIST_LLM_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
		cfg.OpenRouter.BaseURL = u
		cfg.Compatible.BaseURL = u
	}
	if v := os.Getenv("TEACHASSIST_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("TEACHASSIST_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if k := os.Getenv("TEACHASSIST_DEFAULT_API_KEY"); k != "" {
		cfg.DefaultAPIKey = k
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
	}{
		{"GEMINI_API_KEY", "gemini"},
		{"OPENAI_API_KEY", "openai"},
		{"ANTHROPIC_API_KEY", "anthropic"},
		{"OPENROUTER_API_KEY", "openrouter"},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			cfg.DefaultAPIKey = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Model returns the configured model name for the selected provider.
func (c Config) Model() string {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.Model
	case "openai":
		return c.OpenAI.Model
	case "gemini":
		return c.Gemini.Model
	case "openrouter":
		return c.OpenRouter.Model
	case "compatible":
		return c.Compatible.Model
	case "mock":
		return "mock"
	}
	return ""
}

func (c *Config) setModel(m string) {
	switch c.Provider {
	case "anthropic":
		c.Anthropic.Model = m
	case "openai":
		c.OpenAI.Model = m
	case "gemini":
		c.Gemini.Model = m
	case "openrouter":
		c.OpenRouter.Model = m
	case "compatible":
		c.Compatible.Model = m
	}
}

// Validate checks that the provider is known and its settings are usable.
// API keys are not checked here; they arrive with each session.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini", "openrouter", "mock":
	case "compatible":
		if c.Compatible.BaseURL == "" {
			return fmt.Errorf("TEACHASSIST_LLM_BASE_URL is required for the compatible provider")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("LLM timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("LLM max tokens must not be negative, got %d", c.MaxTokens)
	}
	return nil
}
