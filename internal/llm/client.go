package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/teachassist/internal/store"
)

// maxCachedProviders bounds the per-credential provider cache.
const maxCachedProviders = 64

// ProviderFactory builds a Provider bound to one API key.
type ProviderFactory func(ctx context.Context, apiKey string) (Provider, error)

// Client is the single entry point for text generation. Each call carries
// the caller's credential; providers are built lazily per credential and
// reused across calls.
type Client struct {
	cfg     Config
	factory ProviderFactory
	repo    store.EventRepo
	logger  *zap.Logger

	mu        sync.Mutex
	providers map[string]Provider
	builds    singleflight.Group
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEventRepo records every provider call in repo.
func WithEventRepo(repo store.EventRepo) ClientOption {
	return func(c *Client) { c.repo = repo }
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithProviderFactory replaces the configuration-driven factory.
func WithProviderFactory(f ProviderFactory) ClientOption {
	return func(c *Client) { c.factory = f }
}

// NewClient returns a Client for cfg.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		cfg:       cfg,
		logger:    zap.NewNop(),
		providers: make(map[string]Provider),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.factory == nil {
		c.factory = func(ctx context.Context, apiKey string) (Provider, error) {
			return NewProvider(ctx, c.cfg, apiKey, c.repo, c.logger)
		}
	}
	return c
}

// Generate sends prompt as a single user message and returns the reply
// text unmodified. An empty credential fails with ErrMissingCredential
// before any provider is contacted; every other failure is a
// *GenerationError.
func (c *Client) Generate(ctx context.Context, prompt, credential string) (string, error) {
	resp, err := c.Complete(ctx, prompt, credential)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Complete is Generate returning the full provider response.
func (c *Client) Complete(ctx context.Context, prompt, credential string) (*Response, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, ErrMissingCredential
	}

	p, err := c.provider(ctx, credential)
	if err != nil {
		return nil, &GenerationError{Kind: FailureProvider, Err: err}
	}

	resp, err := p.Generate(ctx, UserPrompt(prompt, c.cfg.MaxTokens))
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}

// ProviderName is the configured provider, e.g. "gemini".
func (c *Client) ProviderName() string {
	return c.cfg.Provider
}

// ModelName is the configured model for the selected provider.
func (c *Client) ModelName() string {
	return c.cfg.Model()
}

func (c *Client) provider(ctx context.Context, credential string) (Provider, error) {
	sum := sha256.Sum256([]byte(credential))
	key := hex.EncodeToString(sum[:])

	if p, ok := c.cached(key); ok {
		return p, nil
	}

	// Concurrent first calls with one key share a single build.
	v, err, _ := c.builds.Do(key, func() (any, error) {
		if p, ok := c.cached(key); ok {
			return p, nil
		}
		p, err := c.factory(context.WithoutCancel(ctx), credential)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if len(c.providers) >= maxCachedProviders {
			clear(c.providers)
		}
		c.providers[key] = p
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Provider), nil
}

func (c *Client) cached(key string) (Provider, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.providers[key]
	return p, ok
}
