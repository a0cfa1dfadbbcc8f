package model

import "github.com/google/uuid"

const EmptyTitle string = ""

// Movie is canonical catalog metadata. Movies are shared reference data:
// many watches point at one movie and no user owns it.
type Movie struct {
	ID         uuid.UUID
	CatalogID  int64
	Title      string
	Year       int
	Genres     []string
	Runtime    int
	Overview   string
	PosterLink string
}
