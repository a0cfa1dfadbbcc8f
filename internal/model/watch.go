package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RatingFloor = 1
	RatingCeil  = 10
)

// Watch is one logged viewing of a movie. Only the owner may create,
// mutate or delete it. Shares holds the group ids the watch was shared
// with at save time (snapshot, not a live relation).
type Watch struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	MovieID    uuid.UUID
	WatchedOn  time.Time
	Rating     *int
	Notes      string
	Location   string
	Companions []string
	IsRewatch  bool
	IsPrivate  bool
	Shares     []uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Read-side annotations, populated by list/feed queries.
	Movie         *Movie
	OwnerUsername string
}

func (w *Watch) SharedWith(groupID uuid.UUID) bool {
	for _, id := range w.Shares {
		if id == groupID {
			return true
		}
	}
	return false
}

func (w *Watch) Rated() bool {
	return w.Rating != nil
}
