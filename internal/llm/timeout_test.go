package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithTimeout_Expires(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "too late", Delay: time.Second})
	p := WithTimeout(mock, 20*time.Millisecond)

	_, err := p.Generate(context.Background(), UserPrompt("x", 0))
	var to *ErrTimeout
	if !errors.As(err, &to) {
		t.Fatalf("expected ErrTimeout, got %T (%v)", err, err)
	}
	if to.After != 20*time.Millisecond {
		t.Fatalf("unexpected After %s", to.After)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("ErrTimeout should unwrap to context.DeadlineExceeded")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly one attempt, got %d", mock.CallCount())
	}
}

func TestWithTimeout_PassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "fast"})
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), UserPrompt("x", 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "fast" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("unexpected model %q", p.ModelID())
	}
}

func TestWithTimeout_NonPositiveIsNoop(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("expected the provider to be returned unchanged")
	}
}
