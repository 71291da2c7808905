package llm

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMapGeminiStopReason(t *testing.T) {
	tests := []struct {
		reason genai.FinishReason
		want   string
	}{
		{genai.FinishReasonStop, "end"},
		{genai.FinishReasonMaxTokens, "max_tokens"},
		{genai.FinishReasonSafety, "end"},
	}
	for _, tt := range tests {
		result := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: tt.reason}},
		}
		if got := mapGeminiStopReason(result); got != tt.want {
			t.Errorf("mapGeminiStopReason(%s) = %q, want %q", tt.reason, got, tt.want)
		}
	}

	if got := mapGeminiStopReason(&genai.GenerateContentResponse{}); got != "end" {
		t.Errorf("no candidates: got %q", got)
	}
}

func TestMapGeminiError(t *testing.T) {
	rate := mapGeminiError(fmt.Errorf("call: %w", &genai.APIError{Code: 429, Message: "quota"}))
	var rl *ErrRateLimit
	if !errors.As(rate, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", rate)
	}

	other := mapGeminiError(errors.New("dial tcp: refused"))
	var unavail *ErrProviderUnavailable
	if !errors.As(other, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", other)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
