package llm

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, mock *MockProvider, built *atomic.Int32) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	cfg.Timeout = 50 * time.Millisecond
	return NewClient(cfg, WithProviderFactory(func(_ context.Context, _ string) (Provider, error) {
		if built != nil {
			built.Add(1)
		}
		return WithTimeout(mock, cfg.Timeout), nil
	}))
}

func TestClient_MissingCredential(t *testing.T) {
	var built atomic.Int32
	mock := NewMockProvider()
	c := newTestClient(t, mock, &built)

	for _, cred := range []string{"", "   "} {
		_, err := c.Generate(context.Background(), "prompt", cred)
		if !errors.Is(err, ErrMissingCredential) {
			t.Fatalf("credential %q: expected ErrMissingCredential, got %v", cred, err)
		}
	}
	if built.Load() != 0 || mock.CallCount() != 0 {
		t.Fatal("no provider should be built or called without a credential")
	}
}

func TestClient_ReturnsTextVerbatim(t *testing.T) {
	reply := "  # Lesson Plan\n\n- Objective  \n"
	mock := NewMockProvider(MockResponse{Text: reply})
	c := newTestClient(t, mock, nil)

	got, err := c.Generate(context.Background(), "Create a lesson plan", "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != reply {
		t.Fatalf("reply was modified: %q", got)
	}
	if mock.Calls[0].Messages[0].Content != "Create a lesson plan" {
		t.Fatalf("prompt not forwarded: %+v", mock.Calls[0])
	}
}

func TestClient_CachesProviderPerCredential(t *testing.T) {
	var built atomic.Int32
	c := newTestClient(t, NewMockProvider(), &built)

	for _, cred := range []string{"key-a", "key-a", "key-b", "key-a"} {
		if _, err := c.Generate(context.Background(), "x", cred); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if built.Load() != 2 {
		t.Fatalf("expected 2 providers built, got %d", built.Load())
	}
}

func TestClient_ConcurrentFirstCallsBuildOnce(t *testing.T) {
	var built atomic.Int32
	c := newTestClient(t, NewMockProvider(), &built)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Generate(context.Background(), "x", "shared-key"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if built.Load() != 1 {
		t.Fatalf("expected 1 provider built, got %d", built.Load())
	}
}

func TestClient_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name string
		resp MockResponse
		want FailureKind
	}{
		{"timeout", MockResponse{Text: "late", Delay: time.Second}, FailureTimeout},
		{"rate limit", MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}}, FailureRateLimit},
		{"provider", MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("500")}}, FailureProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, NewMockProvider(tt.resp), nil)
			_, err := c.Generate(context.Background(), "x", "key")
			var gen *GenerationError
			if !errors.As(err, &gen) {
				t.Fatalf("expected GenerationError, got %T (%v)", err, err)
			}
			if gen.Kind != tt.want {
				t.Fatalf("kind = %q, want %q", gen.Kind, tt.want)
			}
			if gen.Message() == "" {
				t.Fatal("expected a user-facing message")
			}
		})
	}
}

func TestClient_Canceled(t *testing.T) {
	c := newTestClient(t, NewMockProvider(MockResponse{Text: "x", Delay: time.Second}), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Generate(ctx, "x", "key")
	var gen *GenerationError
	if !errors.As(err, &gen) || gen.Kind != FailureCanceled {
		t.Fatalf("expected canceled GenerationError, got %v", err)
	}
}

func TestClient_FactoryError(t *testing.T) {
	c := NewClient(DefaultConfig(), WithProviderFactory(func(context.Context, string) (Provider, error) {
		return nil, errors.New("bad key format")
	}))
	_, err := c.Generate(context.Background(), "x", "key")
	var gen *GenerationError
	if !errors.As(err, &gen) || gen.Kind != FailureProvider {
		t.Fatalf("expected provider GenerationError, got %v", err)
	}
}

func TestClient_DefaultFactoryMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	c := NewClient(cfg)

	got, err := c.Generate(context.Background(), "hello", "any")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "[mock] hello" {
		t.Fatalf("unexpected reply %q", got)
	}
	if c.ProviderName() != "mock" || c.ModelName() != "mock" {
		t.Fatalf("unexpected names %q/%q", c.ProviderName(), c.ModelName())
	}
}
