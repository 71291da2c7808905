package tools

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

// Registry holds the tool catalog with every template parsed.
type Registry struct {
	tools  []*Tool
	byName map[string]*Tool

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Registry.
type Option func(*Registry)

// WithRand sets the random source used to sample lesson strategies.
func WithRand(rng *rand.Rand) Option {
	return func(r *Registry) { r.rng = rng }
}

// NewRegistry builds the catalog and parses every template.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Tool)}
	for _, opt := range opts {
		opt(r)
	}
	for _, t := range catalog() {
		t.Slug = slugify(t.Name)
		if err := t.parse(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[t.Slug]; dup {
			return nil, fmt.Errorf("duplicate tool %q", t.Name)
		}
		r.byName[t.Slug] = t
		r.tools = append(r.tools, t)
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a process-wide registry using the global random source.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Tools returns every tool in catalog order.
func (r *Registry) Tools() []*Tool {
	out := make([]*Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// ByCategory returns the tools of one category in catalog order.
func (r *Registry) ByCategory(c Category) []*Tool {
	var out []*Tool
	for _, t := range r.tools {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Lookup finds a tool by display name or slug, ignoring case.
func (r *Registry) Lookup(name string) (*Tool, error) {
	if t, ok := r.byName[slugify(name)]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Prepared is a validated request with its rendered prompt.
type Prepared struct {
	Tool   *Tool
	Values Values
	Rendered
}

// Prepare validates req for the named tool and renders its prompt.
func (r *Registry) Prepare(name string, req Request) (*Prepared, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	vals, err := t.Normalize(req)
	if err != nil {
		return nil, err
	}
	rendered, err := r.Render(t, vals)
	if err != nil {
		return nil, err
	}
	return &Prepared{Tool: t, Values: vals, Rendered: *rendered}, nil
}

// Render substitutes validated values into the tool's template.
func (r *Registry) Render(t *Tool, v Values) (*Rendered, error) {
	data := make(map[string]any, len(v)+2)
	for k, val := range v {
		data[k] = val
	}
	out := &Rendered{}
	if t.enrich != nil {
		if err := t.enrich(r, v, data, out); err != nil {
			return nil, err
		}
	}
	prompt, err := t.execute(data)
	if err != nil {
		return nil, err
	}
	out.Prompt = prompt
	return out, nil
}

func (r *Registry) intN(n int) int {
	if r.rng == nil {
		return rand.IntN(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}
