package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/llm"
	"github.com/abhisek/teachassist/internal/readability"
	"github.com/abhisek/teachassist/internal/session"
	"github.com/abhisek/teachassist/internal/tools"
)

type categoryResp struct {
	Name  tools.Category `json:"name"`
	Tools []*tools.Tool  `json:"tools"`
}

type catalogResp struct {
	Categories []categoryResp `json:"categories"`
}

func (d *Dependencies) handleListTools(w http.ResponseWriter, _ *http.Request) {
	reg := d.Assistant.Registry()
	resp := catalogResp{Categories: make([]categoryResp, 0, len(tools.Categories))}
	for _, c := range tools.Categories {
		resp.Categories = append(resp.Categories, categoryResp{Name: c, Tools: reg.ByCategory(c)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (d *Dependencies) handleGetTool(w http.ResponseWriter, r *http.Request) {
	t, err := d.Assistant.Registry().Lookup(r.PathValue("tool"))
	if err != nil {
		d.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// PromptResp is a rendered prompt that was not sent to a model.
type PromptResp struct {
	Tool        string              `json:"tool"`
	Title       string              `json:"title"`
	Local       bool                `json:"local"`
	Prompt      string              `json:"prompt"`
	Readability *readability.Params `json:"readability,omitempty"`
	Strategies  []string            `json:"strategies,omitempty"`
}

func (d *Dependencies) handlePrompt(w http.ResponseWriter, r *http.Request) {
	req, ok := d.readToolRequest(w, r)
	if !ok {
		return
	}
	p, err := d.Assistant.Prompt(r.PathValue("tool"), req)
	if err != nil {
		d.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PromptResp{
		Tool:        p.Tool.Name,
		Title:       p.Tool.TitleFor(p.Values),
		Local:       p.Tool.Local,
		Prompt:      p.Prompt,
		Readability: p.Readability,
		Strategies:  p.Strategies,
	})
}

func (d *Dependencies) handleGenerate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	req, ok := d.readToolRequest(w, r)
	if !ok {
		return
	}
	out, err := d.Assistant.Run(r.Context(), sess, r.PathValue("tool"), req)
	if err != nil {
		d.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// readToolRequest decodes the form values. An empty body is an empty request.
func (d *Dependencies) readToolRequest(w http.ResponseWriter, r *http.Request) (tools.Request, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, d.MaxBodyBytes)
	req := tools.Request{}
	if r.ContentLength == 0 {
		return req, true
	}
	if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeBodyError(w, err)
		return nil, false
	}
	if req == nil {
		req = tools.Request{}
	}
	return req, true
}

// ReadabilityResp is an estimate plus the lines the Text Generator prompt uses.
type ReadabilityResp struct {
	readability.Params
	PromptLines []string `json:"prompt_lines"`
}

func (d *Dependencies) handleReadability(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("score")
	if raw == "" {
		raw = strconv.Itoa(readability.DefaultScore)
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "score must be a number"})
		return
	}
	params, err := readability.Estimate(score)
	if err != nil {
		d.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ReadabilityResp{Params: params, PromptLines: params.PromptLines()})
}

// writeError maps domain errors onto HTTP statuses.
func (d *Dependencies) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *tools.ValidationError
	var derr *readability.DomainError
	var gerr *llm.GenerationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResp{
			Detail:  err.Error(),
			Missing: verr.Missing,
			Invalid: verr.Invalid,
		})
	case errors.As(err, &derr):
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: err.Error()})
	case errors.Is(err, tools.ErrUnknownTool):
		writeJSON(w, http.StatusNotFound, ErrorResp{Detail: err.Error()})
	case errors.Is(err, llm.ErrMissingCredential):
		writeJSON(w, http.StatusPreconditionRequired, ErrorResp{
			Detail: "Please configure your API key first (PUT /api/session/credential).",
		})
	case errors.As(err, &gerr):
		status := http.StatusBadGateway
		if gerr.Kind == llm.FailureRateLimit {
			status = http.StatusTooManyRequests
		}
		writeJSON(w, status, ErrorResp{Detail: gerr.Message()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResp{Detail: "Request cancelled."})
	default:
		d.Logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Internal error."})
	}
}
