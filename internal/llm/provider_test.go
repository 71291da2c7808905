package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first reply", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second reply"},
	)

	resp1, err := mock.Generate(context.Background(), UserPrompt("first", 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first reply" {
		t.Fatalf("expected 'first reply', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), UserPrompt("second", 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second reply" {
		t.Fatalf("expected 'second reply', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueEchoes(t *testing.T) {
	mock := NewMockProvider()
	resp, err := mock.Generate(context.Background(), UserPrompt("Write a haiku", 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "[mock] Write a haiku" {
		t.Fatalf("unexpected echo %q", resp.Text)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 0}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_DelayHonoursContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "late", Delay: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mock.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestUserPrompt(t *testing.T) {
	req := UserPrompt("hello", 128)
	if len(req.Messages) != 1 || req.Messages[0].Role != RoleUser || req.Messages[0].Content != "hello" {
		t.Fatalf("unexpected messages: %+v", req.Messages)
	}
	if req.MaxTokens != 128 {
		t.Fatalf("expected 128 max tokens, got %d", req.MaxTokens)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "MCQ Generator")
	if p := PurposeFrom(ctx); p != "MCQ Generator" {
		t.Fatalf("expected 'MCQ Generator', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := DefaultConfig()
	with := func(mut func(*Config)) Config {
		c := base
		mut(&c)
		return c
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", base, false},
		{"anthropic needs no key up front", with(func(c *Config) { c.Provider = "anthropic" }), false},
		{"mock", with(func(c *Config) { c.Provider = "mock" }), false},
		{"unknown provider", with(func(c *Config) { c.Provider = "unknown" }), true},
		{"compatible without base URL", with(func(c *Config) {
			c.Provider = "compatible"
			c.Compatible.BaseURL = ""
		}), true},
		{"zero timeout", with(func(c *Config) { c.Timeout = 0 }), true},
		{"negative max tokens", with(func(c *Config) { c.MaxTokens = -1 }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TEACHASSIST_LLM_PROVIDER", "openai")
	t.Setenv("TEACHASSIST_LLM_MODEL", "gpt-4o")
	t.Setenv("TEACHASSIST_LLM_TIMEOUT", "15s")
	t.Setenv("TEACHASSIST_LLM_MAX_TOKENS", "2048")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.Model() != "gpt-4o" {
		t.Fatalf("unexpected provider/model %q/%q", cfg.Provider, cfg.Model())
	}
	if cfg.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Timeout)
	}
	if cfg.MaxTokens != 2048 {
		t.Fatalf("unexpected max tokens %d", cfg.MaxTokens)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider")
	}
	if cfg.Provider != "openai" || cfg.DefaultAPIKey != "sk-oai" {
		t.Fatalf("expected openai to win, got %q", cfg.Provider)
	}
}
