// Package assistant runs a tool end to end for one session: validation,
// prompt building, generation, metrics and the history entry.
package assistant

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/ledger"
	"github.com/abhisek/teachassist/internal/llm"
	"github.com/abhisek/teachassist/internal/readability"
	"github.com/abhisek/teachassist/internal/render"
	"github.com/abhisek/teachassist/internal/session"
	"github.com/abhisek/teachassist/internal/telemetry"
	"github.com/abhisek/teachassist/internal/textstats"
	"github.com/abhisek/teachassist/internal/tools"
)

// Generator produces text for a prompt using the caller's credential.
// *llm.Client satisfies it.
type Generator interface {
	Complete(ctx context.Context, prompt, credential string) (*llm.Response, error)
}

// Metrics are the figures computed from a result.
type Metrics struct {
	WordCount *int             `json:"word_count,omitempty"`
	Rewrite   *textstats.Delta `json:"rewrite,omitempty"`
}

// Outcome is a completed run.
type Outcome struct {
	Tool        string              `json:"tool"`
	Title       string              `json:"title"`
	Prompt      string              `json:"prompt"`
	Result      string              `json:"result"`
	HTML        string              `json:"html,omitempty"`
	Readability *readability.Params `json:"readability,omitempty"`
	Strategies  []string            `json:"strategies,omitempty"`
	Metrics     Metrics             `json:"metrics"`
	Usage       *llm.Usage          `json:"usage,omitempty"`
	Record      ledger.Record       `json:"record"`
}

// Service executes tools.
type Service struct {
	registry *tools.Registry
	gen      Generator
	markdown *render.Markdown
	logger   *zap.Logger
	tracer   trace.Tracer
	runs     metric.Int64Counter
	latency  metric.Float64Histogram
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMarkdown enables HTML rendering of results.
func WithMarkdown(m *render.Markdown) Option {
	return func(s *Service) { s.markdown = m }
}

// New returns a Service.
func New(registry *tools.Registry, gen Generator, opts ...Option) (*Service, error) {
	s := &Service{
		registry: registry,
		gen:      gen,
		logger:   zap.NewNop(),
		tracer:   telemetry.Tracer(),
	}
	for _, opt := range opts {
		opt(s)
	}

	meter := telemetry.Meter()
	var err error
	s.runs, err = meter.Int64Counter("teachassist.generations",
		metric.WithDescription("Tool runs by tool and outcome"))
	if err != nil {
		return nil, err
	}
	s.latency, err = meter.Float64Histogram("teachassist.generation.duration",
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Registry exposes the tool catalog.
func (s *Service) Registry() *tools.Registry {
	return s.registry
}

// Prompt validates req and renders the prompt without generating.
func (s *Service) Prompt(toolName string, req tools.Request) (*tools.Prepared, error) {
	return s.registry.Prepare(toolName, req)
}

// Run executes toolName for sess. Runs within one session are serialized
// so the ledger order matches completion order. The ledger is only written
// on success.
func (s *Service) Run(ctx context.Context, sess *session.Session, toolName string, req tools.Request) (*Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "assistant.Run", trace.WithAttributes(attribute.String("tool", toolName)))
	defer span.End()
	start := time.Now()

	out, err := s.run(ctx, sess, toolName, req)

	result := outcomeLabel(err)
	attrs := metric.WithAttributes(attribute.String("tool", toolName), attribute.String("outcome", result))
	s.runs.Add(ctx, 1, attrs)
	s.latency.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
		s.logger.Info("tool run failed",
			zap.String("session", sess.ID),
			zap.String("tool", toolName),
			zap.String("outcome", result),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("tool run",
		zap.String("session", sess.ID),
		zap.String("tool", out.Tool),
		zap.Int("result_chars", len(out.Result)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

func (s *Service) run(ctx context.Context, sess *session.Session, toolName string, req tools.Request) (*Outcome, error) {
	p, err := s.registry.Prepare(toolName, req)
	if err != nil {
		return nil, err
	}

	release, err := sess.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	out := &Outcome{
		Tool:        p.Tool.Name,
		Title:       p.Tool.TitleFor(p.Values),
		Prompt:      p.Prompt,
		Readability: p.Readability,
		Strategies:  p.Strategies,
	}

	if p.Tool.Local {
		out.Result = p.Prompt
	} else {
		resp, err := s.gen.Complete(llm.WithPurpose(ctx, p.Tool.Name), p.Prompt, sess.Credential())
		if err != nil {
			return nil, err
		}
		out.Result = resp.Text
		usage := resp.Usage
		out.Usage = &usage
	}

	switch p.Tool.Metrics {
	case tools.MetricsWordCount:
		n := textstats.WordCount(out.Result)
		out.Metrics.WordCount = &n
	case tools.MetricsRewrite:
		d := textstats.Compare(p.Values.String("original_text"), out.Result)
		out.Metrics.Rewrite = &d
	}

	if s.markdown != nil {
		html, err := s.markdown.HTML(out.Result)
		if err != nil {
			s.logger.Warn("render result", zap.String("tool", out.Tool), zap.Error(err))
		}
		out.HTML = html
	}

	out.Record = sess.Ledger.Record(p.Tool.Name, snapshotInputs(p), out.Result)
	return out, nil
}

func snapshotInputs(p *tools.Prepared) ledger.Inputs {
	snap := p.Tool.Snapshot(p.Values)
	in := make(ledger.Inputs, len(snap))
	for i, f := range snap {
		in[i] = ledger.Input{Name: f.Name, Value: f.Value}
	}
	return in
}

func outcomeLabel(err error) string {
	var verr *tools.ValidationError
	var gerr *llm.GenerationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, tools.ErrUnknownTool):
		return "unknown_tool"
	case errors.Is(err, llm.ErrMissingCredential):
		return "missing_credential"
	case errors.As(err, &gerr):
		return string(gerr.Kind)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}
