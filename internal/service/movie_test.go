package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movies-api/internal/domain"
	"movies-api/internal/schema"
)

// fakeRepository records calls so tests can assert the validation
// short-circuit: on invalid input the port must never be invoked.
type fakeRepository struct {
	calls     []string
	addResult domain.MutationResult
	deleteErr error
}

func (f *fakeRepository) GetMovies(ctx context.Context) domain.MovieListResult {
	f.calls = append(f.calls, "GetMovies")
	return domain.MovieListResult{Status: http.StatusOK, Data: []domain.Movie{}}
}

func (f *fakeRepository) GetMovieByID(ctx context.Context, id int64) domain.MovieResult {
	f.calls = append(f.calls, "GetMovieByID")
	return domain.FoundMovie(domain.Movie{ID: id, Name: "Stalker", Year: 1979, Rating: 8.1})
}

func (f *fakeRepository) GetMovieByName(ctx context.Context, name string) domain.MovieResult {
	f.calls = append(f.calls, "GetMovieByName")
	return domain.FoundMovie(domain.Movie{ID: 1, Name: name, Year: 1979, Rating: 8.1})
}

func (f *fakeRepository) AddMovie(ctx context.Context, data schema.CreateMovieRequest, id int64) domain.MutationResult {
	f.calls = append(f.calls, "AddMovie")
	return f.addResult
}

func (f *fakeRepository) UpdateMovie(ctx context.Context, data schema.UpdateMovieRequest, id int64) domain.MutationResult {
	f.calls = append(f.calls, "UpdateMovie")
	return domain.MutationResult{Status: http.StatusOK}
}

func (f *fakeRepository) DeleteMovieByID(ctx context.Context, id int64) (domain.DeleteResult, error) {
	f.calls = append(f.calls, "DeleteMovieByID")
	if f.deleteErr != nil {
		return domain.DeleteResult{}, f.deleteErr
	}
	return domain.DeleteResult{Status: http.StatusOK, Message: "Movie 1 has been deleted"}, nil
}

func ratingOf(v float64) *float64 { return &v }

func TestAddMovie_InvalidInputShortCircuits(t *testing.T) {
	repo := &fakeRepository{}
	svc := New(repo)

	result := svc.AddMovie(context.Background(), schema.CreateMovieRequest{Name: "", Year: 3000}, 0)

	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Nil(t, result.Data)
	assert.NotEmpty(t, result.Error)
	assert.Empty(t, repo.calls, "port must not be invoked on validation failure")
}

func TestAddMovie_ValidInputDelegates(t *testing.T) {
	movie := domain.Movie{ID: 7, Name: "Inception", Year: 2010, Rating: 7.5}
	repo := &fakeRepository{addResult: domain.MutationResult{Status: http.StatusOK, Data: &movie}}
	svc := New(repo)

	result := svc.AddMovie(context.Background(), schema.CreateMovieRequest{Name: "Inception", Year: 2010, Rating: ratingOf(7.5)}, 0)

	require.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, &movie, result.Data)
	assert.Equal(t, []string{"AddMovie"}, repo.calls)
}

func TestUpdateMovie_InvalidInputShortCircuits(t *testing.T) {
	repo := &fakeRepository{}
	svc := New(repo)

	year := 2025
	result := svc.UpdateMovie(context.Background(), schema.UpdateMovieRequest{Year: &year}, 1)

	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Empty(t, repo.calls)
}

func TestUpdateMovie_ValidInputDelegates(t *testing.T) {
	repo := &fakeRepository{}
	svc := New(repo)

	result := svc.UpdateMovie(context.Background(), schema.UpdateMovieRequest{Rating: ratingOf(9)}, 1)

	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, []string{"UpdateMovie"}, repo.calls)
}

func TestGetOperationsPassThrough(t *testing.T) {
	repo := &fakeRepository{}
	svc := New(repo)
	ctx := context.Background()

	assert.Equal(t, http.StatusOK, svc.GetMovies(ctx).Status)
	assert.Equal(t, http.StatusOK, svc.GetMovieByID(ctx, 1).Status)
	assert.Equal(t, http.StatusOK, svc.GetMovieByName(ctx, "Stalker").Status)
	assert.Equal(t, []string{"GetMovies", "GetMovieByID", "GetMovieByName"}, repo.calls)
}

func TestDeleteMovieByID_PropagatesUnexpectedError(t *testing.T) {
	repo := &fakeRepository{deleteErr: errors.New("connection reset")}
	svc := New(repo)

	_, err := svc.DeleteMovieByID(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, []string{"DeleteMovieByID"}, repo.calls)
}
