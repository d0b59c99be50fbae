// Package web serves game sessions as JSON over HTTP.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"golang.org/x/text/language"

	"skazmor/internal/chronicle"
	"skazmor/internal/history"
	"skazmor/internal/session"
)

// Server routes HTTP requests to per-cookie game sessions.
type Server struct {
	Sessions session.Store[*session.GameSession]
	Factory  session.Factory
	History  *history.Store
	Lang     language.Tag
}

const (
	cookieName     = "skazmor_sid"
	maxBodyBytes   = 1 << 16
	chronicleTitle = "Skazmor"
)

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/game", s.handleStart)
	mux.HandleFunc("GET /api/game", s.handleState)
	mux.HandleFunc("POST /api/game/actions", s.handleAction)
	mux.HandleFunc("GET /api/game/chronicle.pdf", s.handleChronicle)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	return mux
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gs, err := s.getOrCreateSession(ctx, w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	st, err := gs.Perform(ctx, session.Intent{Kind: session.IntentStart})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(gs.Seed(), st))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	gs, ok := s.lookupSession(r)
	if !ok {
		writeError(w, http.StatusNotFound, errNoSession)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(gs.Seed(), gs.State()))
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	gs, ok := s.lookupSession(r)
	if !ok {
		writeError(w, http.StatusNotFound, errNoSession)
		return
	}
	var in session.Intent
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, errBadIntent)
		return
	}
	st, err := gs.Perform(r.Context(), in)
	switch {
	case errors.Is(err, session.ErrUnknownIntent):
		writeError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, session.ErrGodModeDisabled):
		writeError(w, http.StatusForbidden, err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(gs.Seed(), st))
}

func (s *Server) handleChronicle(w http.ResponseWriter, r *http.Request) {
	gs, ok := s.lookupSession(r)
	if !ok {
		writeError(w, http.StatusNotFound, errNoSession)
		return
	}
	pdf, err := chronicle.Generate(gs.State(), chronicleTitle, s.Lang)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="skazmor-chronicle.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("write chronicle: %v", err)
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, errBadLimit)
			return
		}
		limit = n
	}
	runs, err := s.History.List(r.Context(), limit)
	if errors.Is(err, history.ErrNotConfigured) {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, newHistoryView(runs))
}

// getOrCreateSession returns the caller's session, creating one (and its
// cookie) when the request carries none or an unknown id.
func (s *Server) getOrCreateSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (*session.GameSession, error) {
	id := s.sessionID(r)
	if id != "" {
		gs, ok, err := s.Sessions.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			return gs, nil
		}
	}

	gs, err := s.Factory.New()
	if err != nil {
		return nil, err
	}
	id = s.Sessions.NewID()
	if err := s.Sessions.Put(ctx, id, gs); err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return gs, nil
}

func (s *Server) lookupSession(r *http.Request) (*session.GameSession, bool) {
	id := s.sessionID(r)
	if id == "" {
		return nil, false
	}
	gs, ok, err := s.Sessions.Get(r.Context(), id)
	if err != nil {
		log.Printf("load session %s: %v", id, err)
		return nil, false
	}
	return gs, ok
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorView{Error: err.Error()})
}
