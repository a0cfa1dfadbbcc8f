package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	"github.com/johnziss9/SceneStack-sub000/internal/service/movie_resolver"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Upsert stores catalog metadata keyed by catalog_id and returns the row
// with its stable internal id, whether it was just inserted or already there.
func (r *Repository) Upsert(ctx context.Context, m model.Movie) (model.Movie, error) {
	movieDB := FromDomain(m)

	query := `
		INSERT INTO movies (id, catalog_id, title, year, genres, runtime, overview, poster_link)
		VALUES (:id, :catalog_id, :title, :year, :genres, :runtime, :overview, :poster_link)
		ON CONFLICT (catalog_id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			genres = EXCLUDED.genres,
			runtime = EXCLUDED.runtime,
			overview = EXCLUDED.overview,
			poster_link = EXCLUDED.poster_link
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, movieDB)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to store movie: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&m.ID); err != nil {
			return model.Movie{}, fmt.Errorf("failed to scan movie id: %w", err)
		}
	}

	return m, nil
}

func (r *Repository) ByCatalogID(ctx context.Context, catalogID int64) (model.Movie, error) {
	query := `
		SELECT id, catalog_id, title, year, genres, runtime, overview, poster_link
		FROM movies
		WHERE catalog_id = $1
	`

	var movieDB MovieDB
	err := r.db.GetContext(ctx, &movieDB, query, catalogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, movie_resolver.ErrMetaMissing
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by catalog id: %w", err)
	}

	return movieDB.ToDomain(), nil
}
