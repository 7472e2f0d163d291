// Package service holds the MovieService, the policy point for input
// validation. Validation happens strictly before any store access on write
// operations, so invalid input never causes partial side effects.
package service

import (
	"context"
	"net/http"

	"movies-api/internal/domain"
	"movies-api/internal/repository"
	"movies-api/internal/schema"
)

// MovieService orchestrates schema validation and delegates persistence to
// the repository port. It never depends on a concrete store technology.
type MovieService struct {
	repo      repository.MovieRepository
	validator *schema.Validator
}

// New constructs a MovieService over the given port.
func New(repo repository.MovieRepository) *MovieService {
	return &MovieService{repo: repo, validator: schema.NewValidator()}
}

// GetMovies returns the whole collection.
func (s *MovieService) GetMovies(ctx context.Context) domain.MovieListResult {
	return s.repo.GetMovies(ctx)
}

// GetMovieByID is a pass-through to the port.
func (s *MovieService) GetMovieByID(ctx context.Context, id int64) domain.MovieResult {
	return s.repo.GetMovieByID(ctx, id)
}

// GetMovieByName is a pass-through to the port.
func (s *MovieService) GetMovieByName(ctx context.Context, name string) domain.MovieResult {
	return s.repo.GetMovieByName(ctx, name)
}

// AddMovie validates data against the create schema and, on success,
// delegates to the port. id is an optional override of the store-assigned
// id (0 means store-assigned). On validation failure the port is never
// invoked.
func (s *MovieService) AddMovie(ctx context.Context, data schema.CreateMovieRequest, id int64) domain.MutationResult {
	if result := s.validator.Validate(data); !result.Success {
		return domain.MutationResult{Status: http.StatusBadRequest, Error: result.Error}
	}
	return s.repo.AddMovie(ctx, data, id)
}

// UpdateMovie validates data against the partial update schema and, on
// success, delegates to the port.
func (s *MovieService) UpdateMovie(ctx context.Context, data schema.UpdateMovieRequest, id int64) domain.MutationResult {
	if result := s.validator.Validate(data); !result.Success {
		return domain.MutationResult{Status: http.StatusBadRequest, Error: result.Error}
	}
	return s.repo.UpdateMovie(ctx, data, id)
}

// DeleteMovieByID is a pass-through to the port. The error return carries
// only unexpected store failures; "already gone" arrives as a 404 envelope.
func (s *MovieService) DeleteMovieByID(ctx context.Context, id int64) (domain.DeleteResult, error) {
	return s.repo.DeleteMovieByID(ctx, id)
}
