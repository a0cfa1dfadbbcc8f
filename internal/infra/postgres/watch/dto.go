package infra_postgres_watch

import (
	"time"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	"github.com/lib/pq"
)

type watchDTO struct {
	ID         uuid.UUID      `db:"id"`
	OwnerID    uuid.UUID      `db:"owner_id"`
	MovieID    uuid.UUID      `db:"movie_id"`
	WatchedOn  time.Time      `db:"watched_on"`
	Rating     *int           `db:"rating"`
	Notes      string         `db:"notes"`
	Location   string         `db:"location"`
	Companions pq.StringArray `db:"companions"`
	IsRewatch  bool           `db:"is_rewatch"`
	IsPrivate  bool           `db:"is_private"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func fromDomain(w model.Watch) watchDTO {
	return watchDTO{
		ID:         w.ID,
		OwnerID:    w.OwnerID,
		MovieID:    w.MovieID,
		WatchedOn:  w.WatchedOn,
		Rating:     w.Rating,
		Notes:      w.Notes,
		Location:   w.Location,
		Companions: pq.StringArray(w.Companions),
		IsRewatch:  w.IsRewatch,
		IsPrivate:  w.IsPrivate,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

// watchRowDTO is a watch joined with its movie and the aggregated share
// list, as produced by the owner-side SELECTs.
type watchRowDTO struct {
	ID         uuid.UUID      `db:"id"`
	OwnerID    uuid.UUID      `db:"owner_id"`
	MovieID    uuid.UUID      `db:"movie_id"`
	WatchedOn  time.Time      `db:"watched_on"`
	Rating     *int           `db:"rating"`
	Notes      string         `db:"notes"`
	Location   string         `db:"location"`
	Companions pq.StringArray `db:"companions"`
	IsRewatch  bool           `db:"is_rewatch"`
	IsPrivate  bool           `db:"is_private"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	CatalogID  int64          `db:"catalog_id"`
	Title      string         `db:"title"`
	Year       int            `db:"year"`
	Genres     pq.StringArray `db:"genres"`
	Runtime    int            `db:"runtime"`
	Overview   string         `db:"overview"`
	PosterLink string         `db:"poster_link"`
	Shares     pq.StringArray `db:"shares"`
}

func (r watchRowDTO) toDomain() model.Watch {
	shares := make([]uuid.UUID, 0, len(r.Shares))
	for _, s := range r.Shares {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		shares = append(shares, id)
	}

	return model.Watch{
		ID:         r.ID,
		OwnerID:    r.OwnerID,
		MovieID:    r.MovieID,
		WatchedOn:  r.WatchedOn,
		Rating:     r.Rating,
		Notes:      r.Notes,
		Location:   r.Location,
		Companions: []string(r.Companions),
		IsRewatch:  r.IsRewatch,
		IsPrivate:  r.IsPrivate,
		Shares:     shares,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		Movie: &model.Movie{
			ID:         r.MovieID,
			CatalogID:  r.CatalogID,
			Title:      r.Title,
			Year:       r.Year,
			Genres:     []string(r.Genres),
			Runtime:    r.Runtime,
			Overview:   r.Overview,
			PosterLink: r.PosterLink,
		},
	}
}

// feedRowDTO is a watch as a group feed sees it: movie and owner username
// attached, share list deliberately absent so one group never learns where
// else a watch went.
type feedRowDTO struct {
	ID            uuid.UUID      `db:"id"`
	OwnerID       uuid.UUID      `db:"owner_id"`
	MovieID       uuid.UUID      `db:"movie_id"`
	WatchedOn     time.Time      `db:"watched_on"`
	Rating        *int           `db:"rating"`
	Notes         string         `db:"notes"`
	Location      string         `db:"location"`
	Companions    pq.StringArray `db:"companions"`
	IsRewatch     bool           `db:"is_rewatch"`
	IsPrivate     bool           `db:"is_private"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	CatalogID     int64          `db:"catalog_id"`
	Title         string         `db:"title"`
	Year          int            `db:"year"`
	Genres        pq.StringArray `db:"genres"`
	Runtime       int            `db:"runtime"`
	Overview      string         `db:"overview"`
	PosterLink    string         `db:"poster_link"`
	OwnerUsername string         `db:"owner_username"`
}

func (r feedRowDTO) toDomain() model.Watch {
	return model.Watch{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		MovieID:       r.MovieID,
		WatchedOn:     r.WatchedOn,
		Rating:        r.Rating,
		Notes:         r.Notes,
		Location:      r.Location,
		Companions:    []string(r.Companions),
		IsRewatch:     r.IsRewatch,
		IsPrivate:     r.IsPrivate,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		OwnerUsername: r.OwnerUsername,
		Movie: &model.Movie{
			ID:         r.MovieID,
			CatalogID:  r.CatalogID,
			Title:      r.Title,
			Year:       r.Year,
			Genres:     []string(r.Genres),
			Runtime:    r.Runtime,
			Overview:   r.Overview,
			PosterLink: r.PosterLink,
		},
	}
}
