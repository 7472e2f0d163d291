package repository

import (
	"context"

	"movies-api/internal/domain"
	"movies-api/internal/schema"
)

// MovieRepository is the persistence port the service layer depends on.
// Expected outcomes (missing rows, duplicate names, degraded store reads)
// travel as envelopes; only DeleteMovieByID can hand back a Go error, for
// store failures that are neither success nor "row already gone" and must
// propagate instead of degrading to a 500 envelope.
type MovieRepository interface {
	GetMovies(ctx context.Context) domain.MovieListResult
	GetMovieByID(ctx context.Context, id int64) domain.MovieResult
	GetMovieByName(ctx context.Context, name string) domain.MovieResult
	AddMovie(ctx context.Context, data schema.CreateMovieRequest, id int64) domain.MutationResult
	UpdateMovie(ctx context.Context, data schema.UpdateMovieRequest, id int64) domain.MutationResult
	DeleteMovieByID(ctx context.Context, id int64) (domain.DeleteResult, error)
}
