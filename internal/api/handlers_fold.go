package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/keyfold/internal/keyset"
	"github.com/dgallion1/keyfold/internal/picker"
)

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}

	all, visible, invisible, err := sess.Keywords()
	if err != nil {
		jsonError(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"all":       all.Sorted(),
		"visible":   visible.Sorted(),
		"invisible": invisible.Sorted(),
	})
}

type refoldRequest struct {
	// Visible is the client's new selection. nil (field omitted) means
	// the picker was cancelled: the previous selection is reused, but
	// the full unfold+refold pass still runs.
	Visible *[]string `json:"visible"`
}

func (s *Server) handleRefold(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}

	var req refoldRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	// The remote client is the interactive picker: its selection rides in
	// on the request.
	p := &picker.Static{}
	if req.Visible != nil {
		p.Selection = keyset.New(*req.Visible...)
	}

	start := time.Now()
	plan, err := sess.Refold(p, s.log)
	if err != nil {
		jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	s.stats.Record(time.Since(start).Milliseconds())

	all, visible, invisible, err := sess.Keywords()
	if err != nil {
		jsonError(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"folded":    plan.Coalesced(),
		"visible":   visible.Sorted(),
		"invisible": invisible.Sorted(),
		"all":       all.Sorted(),
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return
	}

	if err := sess.RefreshKeywordUniverse(); err != nil {
		jsonError(w, err.Error(), http.StatusConflict)
		return
	}

	all, visible, invisible, err := sess.Keywords()
	if err != nil {
		jsonError(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"all":       all.Sorted(),
		"visible":   visible.Sorted(),
		"invisible": invisible.Sorted(),
	})
}
