package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"movies-api/internal/domain"
	"movies-api/internal/schema"
	"movies-api/internal/store"
)

const uniqueViolation = "23505"

const movieColumns = `id, name, year, rating`

// PostgresMovieRepository implements MovieRepository over a pgx pool.
type PostgresMovieRepository struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// New constructs the adapter backed by the provided store.
func New(st *store.Store, logger *log.Logger) *PostgresMovieRepository {
	return NewWithPool(st.Pool(), logger)
}

// NewWithPool allows constructing the adapter directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool, logger *log.Logger) *PostgresMovieRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &PostgresMovieRepository{pool: pool, logger: logger}
}

// GetMovies returns every stored movie. An empty table is a 200 with an
// empty list, never a 404.
func (r *PostgresMovieRepository) GetMovies(ctx context.Context) domain.MovieListResult {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM movies ORDER BY id`, movieColumns))
	if err != nil {
		r.logStoreError("list movies", err)
		return listFailure()
	}
	defer rows.Close()

	items := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.logStoreError("scan movie", err)
			return listFailure()
		}
		items = append(items, movie)
	}
	if err := rows.Err(); err != nil {
		r.logStoreError("list movies", err)
		return listFailure()
	}
	return domain.MovieListResult{Status: http.StatusOK, Data: items}
}

// GetMovieByID fetches a movie by its identifier.
func (r *PostgresMovieRepository) GetMovieByID(ctx context.Context, id int64) domain.MovieResult {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns), id)
	movie, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MissingMovie(fmt.Sprintf("Movie with ID %d not found", id))
		}
		r.logStoreError("get movie by id", err)
		return domain.FailedMovie("Internal server error")
	}
	return domain.FoundMovie(movie)
}

// GetMovieByName fetches the first movie with the given name.
func (r *PostgresMovieRepository) GetMovieByName(ctx context.Context, name string) domain.MovieResult {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM movies WHERE name = $1`, movieColumns), name)
	movie, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MissingMovie(fmt.Sprintf("Movie with name %s not found", name))
		}
		r.logStoreError("get movie by name", err)
		return domain.FailedMovie("Internal server error")
	}
	return domain.FoundMovie(movie)
}

// AddMovie inserts a new movie. The name pre-check produces the friendly
// 409 in the common case; the UNIQUE(name) constraint underneath is the
// actual enforcement point, so a concurrent create losing the race is
// classified as the same conflict instead of a 500.
func (r *PostgresMovieRepository) AddMovie(ctx context.Context, data schema.CreateMovieRequest, id int64) domain.MutationResult {
	if id == 0 && data.ID != nil {
		id = *data.ID
	}

	var existing int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM movies WHERE name = $1`, data.Name).Scan(&existing)
	switch {
	case err == nil:
		return conflict(data.Name)
	case !errors.Is(err, pgx.ErrNoRows):
		r.logStoreError("check movie name", err)
		return mutationFailure()
	}

	var row pgx.Row
	if id > 0 {
		row = r.pool.QueryRow(ctx, fmt.Sprintf(`
            INSERT INTO movies (id, name, year, rating)
            VALUES ($1, $2, $3, $4)
            RETURNING %s
        `, movieColumns), id, data.Name, data.Year, data.Rating)
	} else {
		row = r.pool.QueryRow(ctx, fmt.Sprintf(`
            INSERT INTO movies (name, year, rating)
            VALUES ($1, $2, $3)
            RETURNING %s
        `, movieColumns), data.Name, data.Year, data.Rating)
	}

	movie, err := scanMovie(row)
	if err != nil {
		if isUniqueViolation(err) {
			return conflict(data.Name)
		}
		r.logStoreError("create movie", err)
		return mutationFailure()
	}

	if id > 0 {
		// Keep the serial ahead of fixture-supplied ids so later inserts
		// without an explicit id cannot collide.
		if _, err := r.pool.Exec(ctx, `SELECT setval('movies_id_seq', (SELECT MAX(id) FROM movies))`); err != nil {
			r.logStoreError("advance movies sequence", err)
		}
	}
	return domain.MutationResult{Status: http.StatusOK, Data: &movie}
}

// UpdateMovie applies a partial update after checking the row exists.
func (r *PostgresMovieRepository) UpdateMovie(ctx context.Context, data schema.UpdateMovieRequest, id int64) domain.MutationResult {
	var existing int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM movies WHERE id = $1`, id).Scan(&existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MutationResult{
				Status: http.StatusNotFound,
				Error:  fmt.Sprintf("Movie with ID %d not found.", id),
			}
		}
		r.logStoreError("check movie id", err)
		return mutationFailure()
	}

	// Concurrent deletes between the check and the update surface here as
	// pgx.ErrNoRows and are reported as an internal failure.
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
        UPDATE movies
        SET name = COALESCE($2, name),
            year = COALESCE($3, year),
            rating = COALESCE($4, rating)
        WHERE id = $1
        RETURNING %s
    `, movieColumns), id, data.Name, data.Year, data.Rating)

	movie, err := scanMovie(row)
	if err != nil {
		r.logStoreError("update movie", err)
		return mutationFailure()
	}
	return domain.MutationResult{Status: http.StatusOK, Data: &movie}
}

// DeleteMovieByID removes a movie permanently. "Row already gone" is a
// normal outcome and maps to a 404 envelope; any other store failure is
// returned to the caller rather than degraded to a 500, because a failing
// delete leaves the store in an unknown state.
func (r *PostgresMovieRepository) DeleteMovieByID(ctx context.Context, id int64) (domain.DeleteResult, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.logStoreError("delete movie", err)
		return domain.DeleteResult{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.DeleteResult{
			Status: http.StatusNotFound,
			Error:  fmt.Sprintf("Movie with ID %d not found.", id),
		}, nil
	}
	return domain.DeleteResult{
		Status:  http.StatusOK,
		Message: fmt.Sprintf("Movie %d has been deleted", id),
	}, nil
}

func (r *PostgresMovieRepository) logStoreError(op string, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		r.logger.Printf("repository: %s failed: code=%s message=%s", op, pgErr.Code, pgErr.Message)
		return
	}
	r.logger.Printf("repository: %s failed: %v", op, err)
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	if err := row.Scan(&movie.ID, &movie.Name, &movie.Year, &movie.Rating); err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func conflict(name string) domain.MutationResult {
	return domain.MutationResult{
		Status: http.StatusConflict,
		Error:  fmt.Sprintf("Movie with name %s already exists", name),
	}
}

func mutationFailure() domain.MutationResult {
	return domain.MutationResult{Status: http.StatusInternalServerError, Error: "Internal server error"}
}

func listFailure() domain.MovieListResult {
	message := "Failed to retrieve movies"
	return domain.MovieListResult{Status: http.StatusInternalServerError, Error: &message}
}
