package model

import (
	"time"

	"github.com/google/uuid"
)

type SortKey = string

const (
	SortRecentlyWatched SortKey = "recently_watched"
	SortHighestRated    SortKey = "highest_rated"
	SortTitleAsc        SortKey = "title_asc"
)

// WatchFilter narrows a user's watch set. Nil / zero fields impose no
// constraint; all bounds are inclusive.
type WatchFilter struct {
	Search      string
	RatingMin   *int
	RatingMax   *int
	WatchedFrom *time.Time
	WatchedTo   *time.Time
	RewatchOnly bool
	UnratedOnly bool

	// GroupID restricts the personal view to watches shared with that
	// group. It is a filter on the caller's own watches, not a feed.
	GroupID *uuid.UUID
}
