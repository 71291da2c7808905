// Package mcp exposes the tool catalog over the Model Context Protocol.
//
// Every tool is published as an MCP prompt whose arguments mirror the tool's
// fields, so an MCP client renders the same prompt the web app would send to
// its model. Two MCP tools cover the pieces that need no model at all:
// estimate_readability and build_prompt.
package mcp

import (
	"context"
	"io"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/tools"
)

// Server wraps the MCP server with the tool registry.
type Server struct {
	mcpServer *mcpserver.MCPServer
	registry  *tools.Registry
	logger    *zap.Logger
}

// New creates and configures an MCP server with all prompts and tools.
func New(registry *tools.Registry, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		registry: registry,
		logger:   logger,
	}

	s.mcpServer = mcpserver.NewMCPServer(
		"teachassist",
		version,
		mcpserver.WithPromptCapabilities(true),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithInstructions(instructions),
	)

	s.registerPrompts()
	s.registerTools()

	return s
}

// MCPServer returns the underlying mcp-go server for transport setup.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the protocol over r and w until ctx is done or r closes.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	return mcpserver.NewStdioServer(s.mcpServer).Listen(ctx, r, w)
}

const instructions = `Teaching assistant prompt library.

Each prompt is a classroom tool (lesson plans, quizzes, rubrics, parent emails
and more). Fill in the prompt arguments and send the rendered message to your
model. Use estimate_readability to see the text metrics behind a Lexile target
and build_prompt to render a tool from a JSON object of inputs.`

func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: text},
		},
	}
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
