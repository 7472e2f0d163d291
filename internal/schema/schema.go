// Package schema holds the declarative request schemas shared by the
// runtime validator and the OpenAPI generator. The struct tags are the
// single source of truth: validate tags drive go-playground/validator and
// the same tags are reflected into the published document, so the two can
// never drift.
package schema

// CreateMovieRequest describes a valid create payload. ID is an optional
// caller-supplied override of the store-assigned id, used by test fixtures
// and idempotent reseeding.
type CreateMovieRequest struct {
	ID     *int64   `json:"id,omitempty" doc:"Movie ID" example:"1"`
	Name   string   `json:"name" validate:"required,min=1" doc:"Movie name" example:"Inception"`
	Year   int      `json:"year" validate:"required,gte=1900,lte=2024" doc:"Release year" example:"2010"`
	Rating *float64 `json:"rating" validate:"required" doc:"Rating" example:"7.5"`
}

// UpdateMovieRequest describes a valid partial-update payload. Every field
// is optional, but the per-field constraints still apply when present.
type UpdateMovieRequest struct {
	ID     *int64   `json:"id,omitempty" doc:"Movie ID" example:"1"`
	Name   *string  `json:"name,omitempty" validate:"omitempty,min=1" doc:"Movie name" example:"Inception"`
	Year   *int     `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2024" doc:"Release year" example:"2010"`
	Rating *float64 `json:"rating,omitempty" doc:"Rating" example:"7.5"`
}
