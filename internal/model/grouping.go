package model

import "github.com/google/uuid"

// MovieGroup aggregates one movie's surviving watches. Watches is ordered
// by watched date descending, so Watches[0] carries the "last watched"
// metadata callers rely on.
type MovieGroup struct {
	MovieID       uuid.UUID
	Movie         *Movie
	WatchCount    int
	AverageRating *float64
	LatestRating  *int
	Watches       []*Watch
}

// GroupedPage is one page over movie groups. Counts are group counts,
// never raw watch counts.
type GroupedPage struct {
	Items      []MovieGroup
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
	HasMore    bool
}
