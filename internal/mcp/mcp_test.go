package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/teachassist/internal/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg, err := tools.NewRegistry()
	require.NoError(t, err)
	return New(reg, nil, "test")
}

func toolText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok, "content should be TextContent")
	return tc.Text
}

func TestToolPromptArguments(t *testing.T) {
	s := newTestServer(t)
	tool, err := s.registry.Lookup("Prompt Builder")
	require.NoError(t, err)

	p := toolPrompt(tool)
	assert.Equal(t, "prompt-builder", p.Name)
	assert.Contains(t, p.Description, "Communication")
	require.Len(t, p.Arguments, len(tool.Fields))

	required := map[string]bool{}
	for _, a := range p.Arguments {
		required[a.Name] = a.Required
	}
	assert.True(t, required["role"])
	assert.True(t, required["outcome"])
	assert.True(t, required["audience"])
	assert.False(t, required["avoid"])
	assert.False(t, required["example"])
}

func TestArgumentHelp(t *testing.T) {
	help := argumentHelp(tools.Field{Label: "Tone", Kind: tools.KindSelect, Options: []string{"Warm", "Formal"}})
	assert.Equal(t, "Tone. One of: Warm, Formal", help)

	help = argumentHelp(tools.Field{Label: "Score", Kind: tools.KindNumber, Min: 200, Max: 1600, Step: 50})
	assert.Equal(t, "Score. Whole number from 200 to 1600 in steps of 50", help)
}

func TestHandleToolPrompt(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleToolPrompt(context.Background(), mcplib.GetPromptRequest{
		Params: mcplib.GetPromptParams{
			Name: "prompt-builder",
			Arguments: map[string]string{
				"role":     "science teacher",
				"outcome":  "a quiz",
				"audience": "8th graders",
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Your AI Prompt", result.Description)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, mcplib.RoleUser, result.Messages[0].Role)

	tc, ok := result.Messages[0].Content.(mcplib.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Act as a science teacher. to produce a quiz. for 8th graders.", tc.Text)
}

func TestHandleToolPrompt_MissingRequired(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleToolPrompt(context.Background(), mcplib.GetPromptRequest{
		Params: mcplib.GetPromptParams{
			Name:      "prompt-builder",
			Arguments: map[string]string{"role": "tutor"},
		},
	})
	var verr *tools.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"outcome", "audience"}, verr.Missing)
}

func TestHandleToolPrompt_UnknownTool(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleToolPrompt(context.Background(), mcplib.GetPromptRequest{
		Params: mcplib.GetPromptParams{Name: "quiz-wizard"},
	})
	assert.ErrorIs(t, err, tools.ErrUnknownTool)
}

func TestEstimateReadability(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleEstimateReadability(context.Background(), mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      "estimate_readability",
			Arguments: map[string]any{"score": float64(800)},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got struct {
		InputScore  float64  `json:"input_score"`
		ReadingEase float64  `json:"reading_ease"`
		Lines       []string `json:"prompt_lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &got))
	assert.Equal(t, float64(800), got.InputScore)
	assert.InDelta(t, 62.32, got.ReadingEase, 1e-9)
	require.Len(t, got.Lines, 4)
	assert.Equal(t, "Reading Ease: 62.3", got.Lines[0])
}

func TestEstimateReadability_InvalidScore(t *testing.T) {
	s := newTestServer(t)

	for _, args := range []map[string]any{{}, {"score": float64(-5)}} {
		result, err := s.handleEstimateReadability(context.Background(), mcplib.CallToolRequest{
			Params: mcplib.CallToolParams{Name: "estimate_readability", Arguments: args},
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, toolText(t, result), "positive")
	}
}

func TestBuildPrompt(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleBuildPrompt(context.Background(), mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name: "build_prompt",
			Arguments: map[string]any{
				"tool": "Prompt Builder",
				"inputs": map[string]any{
					"role":     "language tutor",
					"outcome":  "flashcards",
					"audience": "ESL learners",
					"avoid":    "idioms",
				},
			},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, toolText(t, result))

	var got struct {
		Tool   string `json:"tool"`
		Local  bool   `json:"local"`
		Prompt string `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal([]byte(toolText(t, result)), &got))
	assert.Equal(t, "Prompt Builder", got.Tool)
	assert.True(t, got.Local)
	assert.Equal(t, "Act as a language tutor. to produce flashcards. for ESL learners. Avoid: idioms.", got.Prompt)
}

func TestBuildPrompt_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing tool", map[string]any{}, "tool is required"},
		{"unknown tool", map[string]any{"tool": "Quiz Wizard"}, "unknown tool"},
		{"missing fields", map[string]any{"tool": "Song Generator"}, "topic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleBuildPrompt(context.Background(), mcplib.CallToolRequest{
				Params: mcplib.CallToolParams{Name: "build_prompt", Arguments: tt.args},
			})
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, toolText(t, result), tt.want)
		})
	}
}
