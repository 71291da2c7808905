package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/ledger"
	"github.com/abhisek/teachassist/internal/session"
)

const defaultHistoryLimit = 5

// HistoryResp is the newest-first slice of a session's ledger.
type HistoryResp struct {
	Records []ledger.Record `json:"records"`
	Total   int             `json:"total"`
	More    int             `json:"more"`
}

func (d *Dependencies) handleHistory(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	records := sess.Ledger.Recent(limit)
	total := sess.Ledger.Len()
	writeJSON(w, http.StatusOK, HistoryResp{
		Records: records,
		Total:   total,
		More:    max(total-len(records), 0),
	})
}

func (d *Dependencies) handleExport(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	format, err := ledger.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := sess.Ledger.Export(&buf, format); err != nil {
		d.writeError(w, r, err)
		return
	}

	filename := ledger.ExportFilename(d.Now(), format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ImportResp reports a decoded export.
type ImportResp struct {
	Count   int             `json:"count"`
	Records []ledger.Record `json:"records"`
}

// handleImport validates an export without touching any session ledger.
func (d *Dependencies) handleImport(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("format")
	if raw == "" && strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		raw = string(ledger.FormatYAML)
	}
	format, err := ledger.ParseFormat(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: err.Error()})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, d.MaxBodyBytes)
	defer func() { _ = r.Body.Close() }()
	records, err := ledger.Import(r.Body, format)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResp{Detail: "Request body too large."})
			return
		}
		d.Logger.Debug("history import rejected", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ImportResp{Count: len(records), Records: records})
}
