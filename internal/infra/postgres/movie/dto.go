package infra_postgres_movie

import (
	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	"github.com/lib/pq"
)

type MovieDB struct {
	ID         uuid.UUID      `db:"id"`
	CatalogID  int64          `db:"catalog_id"`
	Title      string         `db:"title"`
	Year       int            `db:"year"`
	Genres     pq.StringArray `db:"genres"`
	Runtime    int            `db:"runtime"`
	Overview   string         `db:"overview"`
	PosterLink string         `db:"poster_link"`
}

func (m *MovieDB) ToDomain() model.Movie {
	return model.Movie{
		ID:         m.ID,
		CatalogID:  m.CatalogID,
		Title:      m.Title,
		Year:       m.Year,
		Genres:     []string(m.Genres),
		Runtime:    m.Runtime,
		Overview:   m.Overview,
		PosterLink: m.PosterLink,
	}
}

func FromDomain(m model.Movie) MovieDB {
	return MovieDB{
		ID:         m.ID,
		CatalogID:  m.CatalogID,
		Title:      m.Title,
		Year:       m.Year,
		Genres:     pq.StringArray(m.Genres),
		Runtime:    m.Runtime,
		Overview:   m.Overview,
		PosterLink: m.PosterLink,
	}
}
