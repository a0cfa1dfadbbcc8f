package grouping

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

var ErrBadPage = errors.New("invalid pagination")

type Aggregator struct{}

func New() *Aggregator {
	return &Aggregator{}
}

// Aggregate partitions the watches by movie, derives per-movie stats,
// sorts the groups and cuts one page out of them. Pagination runs over
// groups, never over raw watch rows.
func (a *Aggregator) Aggregate(watches []*model.Watch, sortBy model.SortKey, page, pageSize int) (model.GroupedPage, error) {
	if page < 1 || pageSize < 1 {
		return model.GroupedPage{}, fmt.Errorf("%w: page=%d page_size=%d", ErrBadPage, page, pageSize)
	}

	groups := partition(watches)
	sortGroups(groups, sortBy)

	totalCount := len(groups)
	totalPages := (totalCount + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > totalCount {
		start = totalCount
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	return model.GroupedPage{
		Items:      groups[start:end],
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

func partition(watches []*model.Watch) []model.MovieGroup {
	byMovie := make(map[uuid.UUID][]*model.Watch)
	for _, w := range watches {
		byMovie[w.MovieID] = append(byMovie[w.MovieID], w)
	}

	groups := make([]model.MovieGroup, 0, len(byMovie))
	for movieID, ww := range byMovie {
		// Most recent first; creation time breaks same-day ties so the
		// ordering is stable across reloads.
		sort.Slice(ww, func(i, j int) bool {
			if !ww[i].WatchedOn.Equal(ww[j].WatchedOn) {
				return ww[i].WatchedOn.After(ww[j].WatchedOn)
			}
			return ww[i].CreatedAt.After(ww[j].CreatedAt)
		})

		group := model.MovieGroup{
			MovieID:       movieID,
			Movie:         ww[0].Movie,
			WatchCount:    len(ww),
			AverageRating: averageRating(ww),
			LatestRating:  ww[0].Rating,
			Watches:       ww,
		}
		groups = append(groups, group)
	}

	return groups
}

// averageRating means over rated watches only; a movie nobody rated has
// no average at all rather than a zero.
func averageRating(ww []*model.Watch) *float64 {
	var sum, n int
	for _, w := range ww {
		if w.Rated() {
			sum += *w.Rating
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}

func sortGroups(groups []model.MovieGroup, sortBy model.SortKey) {
	switch sortBy {
	case model.SortHighestRated:
		sort.Slice(groups, func(i, j int) bool {
			gi, gj := groups[i].AverageRating, groups[j].AverageRating
			if gi == nil && gj == nil {
				return lessByTitle(groups[i], groups[j])
			}
			if gi == nil {
				return false
			}
			if gj == nil {
				return true
			}
			if *gi != *gj {
				return *gi > *gj
			}
			return lessByTitle(groups[i], groups[j])
		})
	case model.SortTitleAsc:
		sort.Slice(groups, func(i, j int) bool {
			return lessByTitle(groups[i], groups[j])
		})
	default: // model.SortRecentlyWatched
		sort.Slice(groups, func(i, j int) bool {
			ti, tj := groups[i].Watches[0].WatchedOn, groups[j].Watches[0].WatchedOn
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
			return lessByTitle(groups[i], groups[j])
		})
	}
}

func lessByTitle(a, b model.MovieGroup) bool {
	ta, tb := groupTitle(a), groupTitle(b)
	if ta != tb {
		return ta < tb
	}
	return a.MovieID.String() < b.MovieID.String()
}

func groupTitle(g model.MovieGroup) string {
	if g.Movie == nil {
		return model.EmptyTitle
	}
	return strings.ToLower(g.Movie.Title)
}
