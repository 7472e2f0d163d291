package httpserver

import (
	"encoding/json"
	"net/http"

	"movies-api/internal/domain"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Printf("failed to encode response: %v", err)
		}
	}
}

// respondResult writes a tagged envelope verbatim, with the envelope's own
// status as the HTTP status code. No field is added or stripped; the body
// is exactly the envelope the service produced.
func (s *Server) respondResult(w http.ResponseWriter, result domain.Result) {
	s.respondJSON(w, result.StatusCode(), result)
}
