package httpserver

import (
	"net/http"
	"strings"
	"time"
)

type authError struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// handleFakeToken issues a fresh timestamp token for clients and test
// suites. There is no cryptographic verification anywhere: a token is its
// own issue time.
func (s *Server) handleFakeToken(w http.ResponseWriter, r *http.Request) {
	token := "Bearer " + time.Now().UTC().Format(time.RFC3339)
	s.respondJSON(w, http.StatusOK, map[string]any{"token": token, "status": http.StatusOK})
}

// requireValidToken guards the movies subtree. A token is valid when its
// timestamp lies within the configured window behind now.
func (s *Server) requireValidToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			s.respondJSON(w, http.StatusUnauthorized, authError{
				Error:  "Unauthorized; no Authorization header.",
				Status: http.StatusUnauthorized,
			})
			return
		}
		if !s.validTokenTimestamp(header, time.Now()) {
			s.respondJSON(w, http.StatusUnauthorized, authError{
				Error:  "Unauthorized; not valid timestamp.",
				Status: http.StatusUnauthorized,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) validTokenTimestamp(header string, now time.Time) bool {
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	issued, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return false
	}
	diff := now.Sub(issued)
	return diff >= 0 && diff <= time.Duration(s.cfg.TokenWindowSecs)*time.Second
}
