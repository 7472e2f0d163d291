package domain

import "net/http"

// Result is the closed set of tagged response envelopes returned by the
// repository and service layers for every expected outcome. The status code
// is the discriminator: it decides which of data/error/message carries
// meaning, and the HTTP layer writes each envelope verbatim with that code.
// Go errors are reserved for failures nothing in this set can describe.
type Result interface {
	StatusCode() int
}

// MovieResult is the get-family envelope. Data and Error are always
// serialized so clients see an explicit null for the absent side.
type MovieResult struct {
	Status int     `json:"status" doc:"Response status code" example:"200"`
	Data   *Movie  `json:"data" doc:"Movie details or null if not found"`
	Error  *string `json:"error" doc:"Error message if an error occurred, otherwise null"`
}

// MovieListResult is the collection envelope. An empty store yields
// Data == [] with status 200, never a 404.
type MovieListResult struct {
	Status int     `json:"status" doc:"Response status code" example:"200"`
	Data   []Movie `json:"data" doc:"List of movies or an empty array if no movies exist"`
	Error  *string `json:"error" doc:"Error message if an error occurred, otherwise null"`
}

// MutationResult is the create/update envelope. Exactly one of Data and
// Error is set.
type MutationResult struct {
	Status int    `json:"status" doc:"Response status code" example:"200"`
	Data   *Movie `json:"data,omitempty" doc:"The stored movie"`
	Error  string `json:"error,omitempty" doc:"Error message, if any"`
}

// DeleteResult is the delete envelope: a confirmation message on success,
// an error string when the row was already gone.
type DeleteResult struct {
	Status  int    `json:"status" doc:"Response status code" example:"200"`
	Message string `json:"message,omitempty" doc:"Success message for the deleted movie" example:"Movie 1 has been deleted"`
	Error   string `json:"error,omitempty" doc:"Error message, if any"`
}

func (r MovieResult) StatusCode() int     { return r.Status }
func (r MovieListResult) StatusCode() int { return r.Status }
func (r MutationResult) StatusCode() int  { return r.Status }
func (r DeleteResult) StatusCode() int    { return r.Status }

// FoundMovie wraps a fetched movie in a 200 envelope.
func FoundMovie(m Movie) MovieResult {
	return MovieResult{Status: http.StatusOK, Data: &m}
}

// MissingMovie builds the get-family 404 envelope.
func MissingMovie(message string) MovieResult {
	return MovieResult{Status: http.StatusNotFound, Error: &message}
}

// FailedMovie builds the get-family 500 envelope.
func FailedMovie(message string) MovieResult {
	return MovieResult{Status: http.StatusInternalServerError, Error: &message}
}
