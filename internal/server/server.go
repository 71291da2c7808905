// Package server implements the JSON HTTP API.
package server

import (
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/assistant"
	"github.com/abhisek/teachassist/internal/mcp"
	"github.com/abhisek/teachassist/internal/ratelimit"
	"github.com/abhisek/teachassist/internal/session"
)

// Dependencies holds shared state injected into all HTTP handlers.
type Dependencies struct {
	Assistant *assistant.Service
	Sessions  *session.Store
	Tokens    *session.Tokens
	Limiter   ratelimit.Limiter // nil disables generation rate limiting
	MCP       *mcp.Server       // nil disables /mcp
	Logger    *zap.Logger

	MaxBodyBytes int64
	CookieSecure bool
	Version      string

	Now func() time.Time
}

// NewRouter builds the HTTP mux with all routes wired up.
func NewRouter(deps *Dependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = 1 << 20
	}
	limiter := deps.Limiter
	if limiter == nil {
		limiter = ratelimit.NoopLimiter{}
	}
	generateRL := ratelimit.Middleware(limiter, deps.rateLimitKey, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusTooManyRequests, ErrorResp{Detail: "Too many generation requests; slow down."})
	})

	mux := http.NewServeMux()

	// Catalog and prompt building (no session).
	mux.HandleFunc("GET /api/tools", deps.handleListTools)
	mux.HandleFunc("GET /api/tools/{tool}", deps.handleGetTool)
	mux.HandleFunc("POST /api/tools/{tool}/prompt", deps.handlePrompt)
	mux.HandleFunc("GET /api/readability", deps.handleReadability)
	mux.HandleFunc("POST /api/history/import", deps.handleImport)

	// Session lifecycle.
	mux.HandleFunc("POST /api/session", deps.handleCreateSession)
	mux.HandleFunc("GET /api/session", deps.requireSession(deps.handleGetSession))
	mux.HandleFunc("DELETE /api/session", deps.requireSession(deps.handleDeleteSession))
	mux.HandleFunc("GET /api/session/credential", deps.requireSession(deps.handleGetCredential))
	mux.HandleFunc("PUT /api/session/credential", deps.requireSession(deps.handleSaveCredential))

	// Generation (session required, rate limited per session).
	mux.Handle("POST /api/tools/{tool}/generate", generateRL(deps.requireSession(deps.handleGenerate)))

	// History.
	mux.HandleFunc("GET /api/history", deps.requireSession(deps.handleHistory))
	mux.HandleFunc("GET /api/history/export", deps.requireSession(deps.handleExport))

	// MCP StreamableHTTP transport.
	if deps.MCP != nil {
		mux.Handle("/mcp", mcpserver.NewStreamableHTTPServer(deps.MCP.MCPServer()))
	}

	// Health check
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"version":  deps.Version,
			"sessions": deps.Sessions.Len(),
		})
	})

	return corsMiddleware(requestIDMiddleware(tracingMiddleware(requestLogging(mux, deps.Logger))))
}

// NewHTTPServer wraps handler with the configured timeouts.
func NewHTTPServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}
}
