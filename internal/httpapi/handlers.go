package httpapi

import (
	"log"
	"net/http"

	"pos-loyalty-gateway/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFetchCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET only")
		return
	}

	rows, err := s.pos.FetchCollection(r.Context())
	if err != nil {
		log.Printf("fetch-collection query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to fetch collection data")
		return
	}
	writeRows(w, rows)
}

func (s *Server) handleFetchRedemption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET only")
		return
	}

	rows, err := s.pos.FetchRedemption(r.Context())
	if err != nil {
		log.Printf("fetch-redemption query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to fetch redemption data")
		return
	}
	writeRows(w, rows)
}

// writeRows keeps an empty result set as [] rather than null.
func writeRows(w http.ResponseWriter, rows []model.MemberActivity) {
	if rows == nil {
		rows = []model.MemberActivity{}
	}
	writeJSON(w, http.StatusOK, rows)
}
