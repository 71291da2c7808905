package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/teachassist/internal/ratelimit"
	"github.com/abhisek/teachassist/internal/session"
)

const sessionCookie = "teachassist_session"

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// SessionResp describes the caller's session. The credential itself is
// never returned.
type SessionResp struct {
	ID                   string    `json:"id"`
	CreatedAt            time.Time `json:"created_at"`
	ExpiresAt            time.Time `json:"expires_at,omitzero"`
	Token                string    `json:"token,omitempty"`
	CredentialConfigured bool      `json:"credential_configured"`
	HistoryCount         int       `json:"history_count"`
}

func sessionResp(sess *session.Session) SessionResp {
	return SessionResp{
		ID:                   sess.ID,
		CreatedAt:            sess.CreatedAt,
		CredentialConfigured: sess.HasCredential(),
		HistoryCount:         sess.Ledger.Len(),
	}
}

// sessionToken reads the token from the session cookie, falling back to a
// Bearer Authorization header for non-browser clients.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func (d *Dependencies) sessionID(r *http.Request) (string, bool) {
	tok := sessionToken(r)
	if tok == "" {
		return "", false
	}
	id, err := d.Tokens.Parse(tok)
	if err != nil {
		return "", false
	}
	return id, true
}

func (d *Dependencies) requireSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := d.sessionID(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResp{Detail: "No session. Create one with POST /api/session."})
			return
		}
		sess, ok := d.Sessions.Get(id)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResp{Detail: "Session expired. Create a new one with POST /api/session."})
			return
		}
		next(w, r, sess)
	}
}

// rateLimitKey limits generations per session, or per client address for
// requests without a valid token.
func (d *Dependencies) rateLimitKey(r *http.Request) string {
	if id, ok := d.sessionID(r); ok {
		return "session:" + id
	}
	return "ip:" + ratelimit.IPKeyFunc(r)
}

func (d *Dependencies) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := d.Sessions.Create()
	token, exp, err := d.Tokens.Issue(sess.ID)
	if err != nil {
		d.Sessions.Delete(sess.ID)
		d.Logger.Error("issue session token", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Could not create session."})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   d.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	d.Logger.Info("session created", zap.String("session", sess.ID))
	resp := sessionResp(sess)
	resp.Token = token
	resp.ExpiresAt = exp
	writeJSON(w, http.StatusCreated, resp)
}

func (d *Dependencies) handleGetSession(w http.ResponseWriter, _ *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, sessionResp(sess))
}

func (d *Dependencies) handleDeleteSession(w http.ResponseWriter, _ *http.Request, sess *session.Session) {
	d.Sessions.Delete(sess.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   d.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	d.Logger.Info("session ended", zap.String("session", sess.ID))
	w.WriteHeader(http.StatusNoContent)
}

type credentialReq struct {
	APIKey string `json:"api_key"`
}

func (d *Dependencies) handleGetCredential(w http.ResponseWriter, _ *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, map[string]bool{"configured": sess.HasCredential()})
}

func (d *Dependencies) handleSaveCredential(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	r.Body = http.MaxBytesReader(w, r.Body, d.MaxBodyBytes)
	var req credentialReq
	if err := readJSON(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	if strings.TrimSpace(req.APIKey) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "api_key is required"})
		return
	}

	sess.SetCredential(req.APIKey)
	d.Logger.Info("session credential saved", zap.String("session", sess.ID))
	writeJSON(w, http.StatusOK, map[string]bool{"configured": true})
}

// writeBodyError reports an unreadable request body.
func writeBodyError(w http.ResponseWriter, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResp{Detail: "Request body too large."})
		return
	}
	writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
}
