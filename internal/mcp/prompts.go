package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/tools"
)

// registerPrompts publishes one prompt per tool, named by slug.
func (s *Server) registerPrompts() {
	for _, t := range s.registry.Tools() {
		s.mcpServer.AddPrompt(toolPrompt(t), s.handleToolPrompt)
	}
}

func toolPrompt(t *tools.Tool) mcplib.Prompt {
	opts := []mcplib.PromptOption{
		mcplib.WithPromptDescription(fmt.Sprintf("%s (%s): %s", t.Name, t.Category, t.Description)),
	}
	for _, f := range t.Fields {
		argOpts := []mcplib.ArgumentOption{mcplib.ArgumentDescription(argumentHelp(f))}
		if f.Required {
			argOpts = append(argOpts, mcplib.RequiredArgument())
		}
		opts = append(opts, mcplib.WithArgument(f.Name, argOpts...))
	}
	return mcplib.NewPrompt(t.Slug, opts...)
}

// argumentHelp describes a field for clients that only see string arguments.
func argumentHelp(f tools.Field) string {
	var b strings.Builder
	b.WriteString(f.Label)
	switch f.Kind {
	case tools.KindSelect:
		fmt.Fprintf(&b, ". One of: %s", strings.Join(f.Options, ", "))
	case tools.KindMultiSelect:
		fmt.Fprintf(&b, ". Comma-separated, any of: %s", strings.Join(f.Options, ", "))
	case tools.KindList:
		b.WriteString(". Comma-separated")
	case tools.KindNumber:
		fmt.Fprintf(&b, ". Whole number from %g to %g", f.Min, f.Max)
		if f.Step > 1 {
			fmt.Fprintf(&b, " in steps of %g", f.Step)
		}
	case tools.KindToggle:
		b.WriteString(". true or false")
	}
	if f.Placeholder != "" {
		fmt.Fprintf(&b, ". e.g. %s", f.Placeholder)
	}
	return b.String()
}

func (s *Server) handleToolPrompt(ctx context.Context, request mcplib.GetPromptRequest) (*mcplib.GetPromptResult, error) {
	req := make(tools.Request, len(request.Params.Arguments))
	for k, v := range request.Params.Arguments {
		req[k] = v
	}

	p, err := s.registry.Prepare(request.Params.Name, req)
	if err != nil {
		var verr *tools.ValidationError
		if !errors.As(err, &verr) && !errors.Is(err, tools.ErrUnknownTool) {
			s.logger.Warn("mcp prompt render failed", zap.String("prompt", request.Params.Name), zap.Error(err))
		}
		return nil, err
	}

	return &mcplib.GetPromptResult{
		Description: p.Tool.TitleFor(p.Values),
		Messages: []mcplib.PromptMessage{
			{
				Role:    mcplib.RoleUser,
				Content: mcplib.TextContent{Type: "text", Text: p.Prompt},
			},
		},
	}, nil
}
