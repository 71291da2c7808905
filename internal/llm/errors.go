package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMissingCredential is returned when a generation is requested without
// an API key. No provider is contacted.
var ErrMissingCredential = errors.New("API key is not configured")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned no usable content.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable or
// rejected the request.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response hit the MaxTokens limit
// before producing any text.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrTimeout indicates a request exceeded its deadline.
type ErrTimeout struct {
	After time.Duration
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("LLM request timed out after %s", e.After)
}

func (e *ErrTimeout) Unwrap() error { return context.DeadlineExceeded }

// FailureKind classifies a GenerationError.
type FailureKind string

const (
	FailureTimeout   FailureKind = "timeout"
	FailureCanceled  FailureKind = "canceled"
	FailureRateLimit FailureKind = "rate_limit"
	FailureProvider  FailureKind = "provider"
)

// GenerationError is returned by Client.Generate for every failure after the
// credential check. Err holds the typed cause.
type GenerationError struct {
	Kind FailureKind
	Err  error
}

func (e *GenerationError) Error() string {
	return "generation failed: " + e.Message()
}

// Message is a human-readable description suitable for showing to the user.
func (e *GenerationError) Message() string {
	switch e.Kind {
	case FailureTimeout:
		return "the AI service did not respond in time; please try again"
	case FailureCanceled:
		return "the request was cancelled"
	case FailureRateLimit:
		return "the AI service is rate limiting requests; please wait and try again"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "the AI service returned an error"
}

func (e *GenerationError) Unwrap() error { return e.Err }

func classify(err error) *GenerationError {
	var to *ErrTimeout
	var rl *ErrRateLimit
	switch {
	case errors.As(err, &to), errors.Is(err, context.DeadlineExceeded):
		return &GenerationError{Kind: FailureTimeout, Err: err}
	case errors.Is(err, context.Canceled):
		return &GenerationError{Kind: FailureCanceled, Err: err}
	case errors.As(err, &rl):
		return &GenerationError{Kind: FailureRateLimit, Err: err}
	}
	return &GenerationError{Kind: FailureProvider, Err: err}
}
