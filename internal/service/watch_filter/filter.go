package watch_filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

var (
	ErrInvalidBounds = errors.New("invalid filter bounds")
	ErrBadSortKey    = errors.New("unknown sort key")
)

// Predicate reports whether a single watch survives the filter.
type Predicate func(w *model.Watch) bool

type Compiler struct{}

func New() *Compiler {
	return &Compiler{}
}

// Build validates the filter and compiles it into one predicate. Absent
// fields impose no constraint; all bounds are inclusive. Malformed bounds
// are an error, never swapped.
func (c *Compiler) Build(f model.WatchFilter) (Predicate, error) {
	if f.RatingMin != nil && f.RatingMax != nil && *f.RatingMin > *f.RatingMax {
		return nil, fmt.Errorf("%w: rating min %d above max %d", ErrInvalidBounds, *f.RatingMin, *f.RatingMax)
	}
	if f.WatchedFrom != nil && f.WatchedTo != nil && f.WatchedFrom.After(*f.WatchedTo) {
		return nil, fmt.Errorf("%w: watched-from after watched-to", ErrInvalidBounds)
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))

	return func(w *model.Watch) bool {
		if search != "" {
			if w.Movie == nil || !strings.Contains(strings.ToLower(w.Movie.Title), search) {
				return false
			}
		}

		// A rating bound only ever matches rated watches.
		if f.RatingMin != nil && (w.Rating == nil || *w.Rating < *f.RatingMin) {
			return false
		}
		if f.RatingMax != nil && (w.Rating == nil || *w.Rating > *f.RatingMax) {
			return false
		}

		if f.WatchedFrom != nil && w.WatchedOn.Before(*f.WatchedFrom) {
			return false
		}
		if f.WatchedTo != nil && w.WatchedOn.After(*f.WatchedTo) {
			return false
		}

		if f.RewatchOnly && !w.IsRewatch {
			return false
		}
		if f.UnratedOnly && w.Rated() {
			return false
		}

		if f.GroupID != nil && !w.SharedWith(*f.GroupID) {
			return false
		}

		return true
	}, nil
}

// ParseSortKey maps the wire value onto a sort key. Empty input falls back
// to recently-watched.
func ParseSortKey(s string) (model.SortKey, error) {
	switch s {
	case "":
		return model.SortRecentlyWatched, nil
	case model.SortRecentlyWatched, model.SortHighestRated, model.SortTitleAsc:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadSortKey, s)
	}
}
