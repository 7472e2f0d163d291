package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"movies-api/internal/domain"
	"movies-api/internal/schema"
)

const maxRequestBody = 1 << 20 // 1 MiB

type ctxKey int

const movieIDKey ctxKey = iota

// requireMovieID rejects non-numeric {id} path parameters before the
// service layer is reached.
func (s *Server) requireMovieID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid movie ID provided"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), movieIDKey, id)))
	})
}

func movieIDParam(r *http.Request) int64 {
	id, _ := r.Context().Value(movieIDKey).(int64)
	return id
}

// handleListMovies serves the collection root. A single name query
// parameter (even an empty one) switches to lookup-by-name; repeated name
// parameters are rejected.
func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	names := r.URL.Query()["name"]
	switch {
	case len(names) == 1:
		s.respondResult(w, s.movies.GetMovieByName(r.Context(), names[0]))
	case len(names) > 1:
		s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid movie name provided"})
	default:
		s.respondResult(w, s.movies.GetMovies(r.Context()))
	}
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	s.respondResult(w, s.movies.GetMovieByID(r.Context(), movieIDParam(r)))
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req schema.CreateMovieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	s.respondResult(w, s.movies.AddMovie(r.Context(), req, 0))
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req schema.UpdateMovieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	s.respondResult(w, s.movies.UpdateMovie(r.Context(), req, movieIDParam(r)))
}

// handleDeleteMovie checks existence through the service before deleting,
// so a stale id answers with the route's own 404 message. An unexpected
// failure propagated by the delete port is the one place an error crosses
// the service boundary; it is logged and answered with a generic 500.
func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id := movieIDParam(r)

	existing := s.movies.GetMovieByID(r.Context(), id)
	switch {
	case existing.Status == http.StatusInternalServerError:
		s.respondResult(w, domain.DeleteResult{Status: http.StatusInternalServerError, Error: "Internal server error"})
		return
	case existing.Data == nil:
		s.respondResult(w, domain.DeleteResult{
			Status: http.StatusNotFound,
			Error:  fmt.Sprintf("Movie with ID %d not found", id),
		})
		return
	}

	result, err := s.movies.DeleteMovieByID(r.Context(), id)
	if err != nil {
		s.logger.Printf("delete movie %d error: %v", id, err)
		s.respondResult(w, domain.DeleteResult{Status: http.StatusInternalServerError, Error: "Internal server error"})
		return
	}
	s.respondResult(w, result)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) respondDecodeError(w http.ResponseWriter, err error) {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	var message string
	switch {
	case errors.As(err, &syntaxError):
		message = "Malformed JSON payload"
	case errors.As(err, &typeError):
		message = fmt.Sprintf("Invalid value for field %s", typeError.Field)
	case errors.Is(err, io.EOF):
		message = "Request body cannot be empty"
	default:
		message = "Unable to parse request body"
	}
	s.respondResult(w, domain.MutationResult{Status: http.StatusBadRequest, Error: message})
}
