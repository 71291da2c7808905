package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/teachassist/internal/store"
)

type recordingRepo struct {
	store.EventRepo

	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	core, logs := observer.New(zap.InfoLevel)
	mock := NewMockProvider(MockResponse{Text: "A poem", Usage: Usage{InputTokens: 7, OutputTokens: 3}})
	p := WithLogging(mock, "mock", repo, zap.New(core))

	ctx := WithPurpose(context.Background(), "Song Generator")
	if _, err := p.Generate(ctx, UserPrompt("Write a song", 100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "Song Generator" || !ev.Success || ev.InputTokens != 7 || ev.ResponseBody != "A poem" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[user]\nWrite a song") {
		t.Fatalf("unexpected request body %q", ev.RequestBody)
	}
	if logs.FilterMessage("llm request").Len() != 1 {
		t.Fatalf("expected one info log line, got %d", logs.Len())
	}
}

func TestLoggingProvider_RecordsFailureAndSurvivesRepoError(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	core, logs := observer.New(zap.WarnLevel)
	boom := errors.New("boom")
	p := WithLogging(NewMockProvider(MockResponse{Err: boom}), "mock", repo, zap.New(core))

	_, err := p.Generate(context.Background(), UserPrompt("x", 0))
	if !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if repo.events[0].Success || repo.events[0].ErrorMessage != "boom" {
		t.Fatalf("unexpected event %+v", repo.events[0])
	}
	if logs.FilterMessage("failed to record llm request event").Len() != 1 {
		t.Fatal("expected repo failure to be logged")
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Text: "ok"}), "mock", nil, nil)
	if _, err := p.Generate(context.Background(), UserPrompt("x", 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
