package watch_filter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type WatchFilterUnitSuite struct {
	suite.Suite
}

type WatchBuilder struct {
	w model.Watch
}

func NewWatchBuilder() *WatchBuilder {
	return &WatchBuilder{
		w: model.Watch{
			ID:        uuid.New(),
			OwnerID:   uuid.New(),
			MovieID:   uuid.New(),
			WatchedOn: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			Movie: &model.Movie{
				ID:    uuid.New(),
				Title: "Interstellar",
			},
		},
	}
}

func (b *WatchBuilder) WithTitle(title string) *WatchBuilder {
	b.w.Movie.Title = title
	return b
}

func (b *WatchBuilder) WithRating(r int) *WatchBuilder {
	b.w.Rating = &r
	return b
}

func (b *WatchBuilder) WithWatchedOn(t time.Time) *WatchBuilder {
	b.w.WatchedOn = t
	return b
}

func (b *WatchBuilder) AsRewatch() *WatchBuilder {
	b.w.IsRewatch = true
	return b
}

func (b *WatchBuilder) SharedWith(groupIDs ...uuid.UUID) *WatchBuilder {
	b.w.IsPrivate = false
	b.w.Shares = groupIDs
	return b
}

func (b *WatchBuilder) Build() *model.Watch {
	w := b.w
	return &w
}

func intPtr(n int) *int {
	return &n
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func (s *WatchFilterUnitSuite) TestBuildRejectsMalformedBounds(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		filter model.WatchFilter
	}{
		{
			name:   "Should reject rating min above max",
			filter: model.WatchFilter{RatingMin: intPtr(8), RatingMax: intPtr(3)},
		},
		{
			name:   "Should reject watched-from after watched-to",
			filter: model.WatchFilter{WatchedFrom: datePtr(2026, 6, 20), WatchedTo: datePtr(2026, 6, 1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			compiler := New()

			predicate, err := compiler.Build(tc.filter)

			assert.ErrorIs(t, err, ErrInvalidBounds)
			assert.Nil(t, predicate)
		})
	}
}

func (s *WatchFilterUnitSuite) TestPredicate(t provider.T) {
	t.Parallel()

	groupID := uuid.New()

	testCases := []struct {
		name    string
		filter  model.WatchFilter
		watch   *model.Watch
		accepts bool
	}{
		{
			name:    "Should accept everything on an empty filter",
			filter:  model.WatchFilter{},
			watch:   NewWatchBuilder().Build(),
			accepts: true,
		},
		{
			name:    "Should match title substring case-insensitively",
			filter:  model.WatchFilter{Search: "STELL"},
			watch:   NewWatchBuilder().WithTitle("Interstellar").Build(),
			accepts: true,
		},
		{
			name:    "Should drop titles without the substring",
			filter:  model.WatchFilter{Search: "alien"},
			watch:   NewWatchBuilder().WithTitle("Interstellar").Build(),
			accepts: false,
		},
		{
			name:    "Should treat rating bounds as inclusive",
			filter:  model.WatchFilter{RatingMin: intPtr(7), RatingMax: intPtr(7)},
			watch:   NewWatchBuilder().WithRating(7).Build(),
			accepts: true,
		},
		{
			name:    "Should drop unrated watches from any rating bound",
			filter:  model.WatchFilter{RatingMin: intPtr(1)},
			watch:   NewWatchBuilder().Build(),
			accepts: false,
		},
		{
			name:    "Should drop ratings below the floor",
			filter:  model.WatchFilter{RatingMin: intPtr(7)},
			watch:   NewWatchBuilder().WithRating(6).Build(),
			accepts: false,
		},
		{
			name:    "Should treat date bounds as inclusive",
			filter:  model.WatchFilter{WatchedFrom: datePtr(2026, 6, 10), WatchedTo: datePtr(2026, 6, 10)},
			watch:   NewWatchBuilder().WithWatchedOn(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)).Build(),
			accepts: true,
		},
		{
			name:    "Should drop watches before the from bound",
			filter:  model.WatchFilter{WatchedFrom: datePtr(2026, 6, 11)},
			watch:   NewWatchBuilder().WithWatchedOn(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)).Build(),
			accepts: false,
		},
		{
			name:    "Should keep only rewatches when rewatch_only is set",
			filter:  model.WatchFilter{RewatchOnly: true},
			watch:   NewWatchBuilder().Build(),
			accepts: false,
		},
		{
			name:    "Should keep only unrated watches when unrated_only is set",
			filter:  model.WatchFilter{UnratedOnly: true},
			watch:   NewWatchBuilder().WithRating(9).Build(),
			accepts: false,
		},
		{
			name:    "Should apply rewatch_only and unrated_only together",
			filter:  model.WatchFilter{RewatchOnly: true, UnratedOnly: true},
			watch:   NewWatchBuilder().AsRewatch().Build(),
			accepts: true,
		},
		{
			name:    "Should keep watches shared with the requested group",
			filter:  model.WatchFilter{GroupID: &groupID},
			watch:   NewWatchBuilder().SharedWith(groupID, uuid.New()).Build(),
			accepts: true,
		},
		{
			name:    "Should drop watches not shared with the requested group",
			filter:  model.WatchFilter{GroupID: &groupID},
			watch:   NewWatchBuilder().SharedWith(uuid.New()).Build(),
			accepts: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			compiler := New()

			predicate, err := compiler.Build(tc.filter)

			assert.NoError(t, err)
			assert.Equal(t, tc.accepts, predicate(tc.watch))
		})
	}
}

func (s *WatchFilterUnitSuite) TestParseSortKey(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		raw         string
		expected    model.SortKey
		expectError bool
	}{
		{
			name:     "Should default empty input to recently watched",
			raw:      "",
			expected: model.SortRecentlyWatched,
		},
		{
			name:     "Should accept highest_rated",
			raw:      "highest_rated",
			expected: model.SortHighestRated,
		},
		{
			name:     "Should accept title_asc",
			raw:      "title_asc",
			expected: model.SortTitleAsc,
		},
		{
			name:        "Should reject unknown keys",
			raw:         "alphabetical",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			key, err := ParseSortKey(tc.raw)

			if tc.expectError {
				assert.ErrorIs(t, err, ErrBadSortKey)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, key)
			}
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(WatchFilterUnitSuite))
}
