package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/teachassist/internal/readability"
	"github.com/abhisek/teachassist/internal/tools"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcplib.NewTool("estimate_readability",
			mcplib.WithDescription(`Convert a Lexile-style target score into the text metrics a writer should aim for.

Returns reading ease (0-100), average syllables per word, complex word
fraction and average sentence length. Typical scores run from 200 to 1600.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
			mcplib.WithNumber("score",
				mcplib.Description("Target Lexile score, must be positive"),
				mcplib.Required(),
			),
		),
		s.handleEstimateReadability,
	)

	s.mcpServer.AddTool(
		mcplib.NewTool("build_prompt",
			mcplib.WithDescription(`Render the prompt for one classroom tool without calling a model.

Pass the tool name or slug and an object of inputs keyed by field name.
Missing required fields and rejected values are reported together.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
			mcplib.WithString("tool",
				mcplib.Description("Tool name or slug, e.g. \"Quiz Generator\" or \"quiz-generator\""),
				mcplib.Required(),
			),
			mcplib.WithObject("inputs",
				mcplib.Description("Field values keyed by field name"),
			),
		),
		s.handleBuildPrompt,
	)
}

func (s *Server) handleEstimateReadability(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	score := request.GetFloat("score", 0)
	params, err := readability.Estimate(score)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	data, _ := json.MarshalIndent(struct {
		readability.Params
		Lines []string `json:"prompt_lines"`
	}{params, params.PromptLines()}, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleBuildPrompt(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	name := strings.TrimSpace(request.GetString("tool", ""))
	if name == "" {
		return errorResult("tool is required"), nil
	}

	req := tools.Request{}
	if raw, ok := request.GetArguments()["inputs"].(map[string]any); ok {
		for k, v := range raw {
			req[k] = v
		}
	}

	p, err := s.registry.Prepare(name, req)
	if err != nil {
		var verr *tools.ValidationError
		if errors.As(err, &verr) || errors.Is(err, tools.ErrUnknownTool) {
			return errorResult(err.Error()), nil
		}
		return nil, err
	}

	resp := struct {
		Tool        string              `json:"tool"`
		Title       string              `json:"title"`
		Local       bool                `json:"local"`
		Prompt      string              `json:"prompt"`
		Readability *readability.Params `json:"readability,omitempty"`
		Strategies  []string            `json:"strategies,omitempty"`
	}{
		Tool:        p.Tool.Name,
		Title:       p.Tool.TitleFor(p.Values),
		Local:       p.Tool.Local,
		Prompt:      p.Prompt,
		Readability: p.Readability,
		Strategies:  p.Strategies,
	}
	data, _ := json.MarshalIndent(resp, "", "  ")
	return textResult(string(data)), nil
}
