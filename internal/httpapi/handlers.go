package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDashboard returns the whole analytics document. The topProblems
// section reflects the live session store, so a committed import or a
// reset/clear is visible without re-persisting the rest of the document.
func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	doc, err := s.repo.Load()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load analytics database")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	doc.TopProblems = s.store.Rows()
	writeJSON(w, http.StatusOK, doc)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
