//go:build !integration
// +build !integration

package usecase_watch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	"github.com/johnziss9/SceneStack-sub000/internal/service/grouping"
	"github.com/johnziss9/SceneStack-sub000/internal/service/sharing"
	"github.com/johnziss9/SceneStack-sub000/internal/service/watch_filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	account_mocks "github.com/johnziss9/SceneStack-sub000/internal/usecase/watch/mocks/watch/account"
	membership_mocks "github.com/johnziss9/SceneStack-sub000/internal/usecase/watch/mocks/watch/membership"
	repo_mocks "github.com/johnziss9/SceneStack-sub000/internal/usecase/watch/mocks/watch/repository"
	resolver_mocks "github.com/johnziss9/SceneStack-sub000/internal/usecase/watch/mocks/watch/resolver"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseWatchUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase     *Usecase
	repository  *repo_mocks.WatchRepository
	memberships *membership_mocks.MembershipSource
	resolver    *resolver_mocks.MovieResolver
	accounts    *account_mocks.AccountSource
	ctx         context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewWatchRepository(t)
	memberships := membership_mocks.NewMembershipSource(t)
	resolver := resolver_mocks.NewMovieResolver(t)
	accounts := account_mocks.NewAccountSource(t)

	usecase := New(
		repository,
		memberships,
		resolver,
		accounts,
		sharing.New(),
		watch_filter.New(),
		grouping.New(),
	)

	return &resources{
		usecase:     usecase,
		repository:  repository,
		memberships: memberships,
		resolver:    resolver,
		accounts:    accounts,
		ctx:         context.Background(),
	}
}

func activeAccount(r *resources, ownerID uuid.UUID) {
	r.accounts.On("Flags", r.ctx, ownerID).Return(model.AccountFlags{}, nil).Once()
}

func memberOf(r *resources, ownerID uuid.UUID, groupIDs ...uuid.UUID) {
	mm := make([]model.Membership, 0, len(groupIDs))
	for _, id := range groupIDs {
		mm = append(mm, model.Membership{GroupID: id, UserID: ownerID, Role: model.RoleMember})
	}
	r.memberships.On("ListMemberships", r.ctx, ownerID).Return(mm, nil).Once()
}

type WatchBuilder struct {
	w model.Watch
}

func NewWatchBuilder(ownerID uuid.UUID) *WatchBuilder {
	return &WatchBuilder{
		w: model.Watch{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			MovieID:   uuid.New(),
			WatchedOn: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			IsPrivate: true,
		},
	}
}

func (b *WatchBuilder) WithID(id uuid.UUID) *WatchBuilder {
	b.w.ID = id
	return b
}

func (b *WatchBuilder) WithShares(groupIDs ...uuid.UUID) *WatchBuilder {
	b.w.IsPrivate = false
	b.w.Shares = groupIDs
	return b
}

func (b *WatchBuilder) WithMovie(m *model.Movie) *WatchBuilder {
	b.w.MovieID = m.ID
	b.w.Movie = m
	return b
}

func (b *WatchBuilder) WithRating(rating int) *WatchBuilder {
	b.w.Rating = &rating
	return b
}

func (b *WatchBuilder) WithWatchedOn(t time.Time) *WatchBuilder {
	b.w.WatchedOn = t
	return b
}

func (b *WatchBuilder) Build() model.Watch {
	return b.w
}

func intPtr(n int) *int {
	return &n
}

func (s *UsecaseWatchUnitSuite) TestLog(t provider.T) {
	t.Parallel()

	ownerID := uuid.New()
	groupID := uuid.New()
	movie := model.Movie{ID: uuid.New(), CatalogID: 157336, Title: "Interstellar"}

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		input         LogInput
		expectedErr   error
		checkStored   bool
		wantPrivate   bool
		wantShares    []uuid.UUID
		errorContains string
	}{
		{
			name: "Should log a private watch and discard requested groups",
			setupMocks: func(r *resources) {
				activeAccount(r, ownerID)
				r.resolver.On("Resolve", r.ctx, int64(157336)).Return(movie, nil).Once()
				r.repository.On("Store", r.ctx, mock.AnythingOfType("model.Watch")).Return(nil).Once()
			},
			input: LogInput{
				CatalogID: 157336,
				WatchedOn: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				IsPrivate: true,
				GroupIDs:  []uuid.UUID{groupID},
			},
			checkStored: true,
			wantPrivate: true,
			wantShares:  nil,
		},
		{
			name: "Should log a shared watch with validated groups",
			setupMocks: func(r *resources) {
				activeAccount(r, ownerID)
				r.resolver.On("Resolve", r.ctx, int64(157336)).Return(movie, nil).Once()
				memberOf(r, ownerID, groupID)
				r.repository.On("Store", r.ctx, mock.AnythingOfType("model.Watch")).Return(nil).Once()
			},
			input: LogInput{
				CatalogID: 157336,
				WatchedOn: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				Rating:    intPtr(9),
				IsPrivate: false,
				GroupIDs:  []uuid.UUID{groupID},
			},
			checkStored: true,
			wantPrivate: false,
			wantShares:  []uuid.UUID{groupID},
		},
		{
			name: "Should reject a rating outside 1..10",
			setupMocks: func(r *resources) {
				activeAccount(r, ownerID)
			},
			input: LogInput{
				CatalogID: 157336,
				Rating:    intPtr(11),
				IsPrivate: true,
			},
			expectedErr: ErrBadRating,
		},
		{
			name: "Should reject sharing without any group",
			setupMocks: func(r *resources) {
				activeAccount(r, ownerID)
				r.resolver.On("Resolve", r.ctx, int64(157336)).Return(movie, nil).Once()
				memberOf(r, ownerID, groupID)
			},
			input: LogInput{
				CatalogID: 157336,
				IsPrivate: false,
			},
			expectedErr: sharing.ErrMissingGroups,
		},
		{
			name: "Should reject sharing with a foreign group",
			setupMocks: func(r *resources) {
				activeAccount(r, ownerID)
				r.resolver.On("Resolve", r.ctx, int64(157336)).Return(movie, nil).Once()
				memberOf(r, ownerID, groupID)
			},
			input: LogInput{
				CatalogID: 157336,
				IsPrivate: false,
				GroupIDs:  []uuid.UUID{uuid.New()},
			},
			expectedErr: sharing.ErrForeignGroup,
		},
		{
			name: "Should reject writes from a deactivated account",
			setupMocks: func(r *resources) {
				r.accounts.On("Flags", r.ctx, ownerID).
					Return(model.AccountFlags{IsDeactivated: true}, nil).Once()
			},
			input: LogInput{
				CatalogID: 157336,
				IsPrivate: true,
			},
			expectedErr: ErrAccountDeactivated,
		},
		{
			name: "Should wrap catalog failures as movie unavailable",
			setupMocks: func(r *resources) {
				activeAccount(r, ownerID)
				r.resolver.On("Resolve", r.ctx, int64(157336)).
					Return(model.Movie{}, errors.New("catalog down")).Once()
			},
			input: LogInput{
				CatalogID: 157336,
				IsPrivate: true,
			},
			expectedErr:   ErrMovieUnavailable,
			errorContains: "catalog down",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			w, err := r.usecase.Log(r.ctx, ownerID, tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				if tc.errorContains != "" {
					assert.Contains(t, err.Error(), tc.errorContains)
				}
				return
			}

			assert.NoError(t, err)
			if tc.checkStored {
				assert.Equal(t, tc.wantPrivate, w.IsPrivate)
				assert.Equal(t, tc.wantShares, w.Shares)
				assert.Equal(t, ownerID, w.OwnerID)
				assert.Equal(t, movie.ID, w.MovieID)
			}
		})
	}
}

func (s *UsecaseWatchUnitSuite) TestOwnershipGate(t provider.T) {
	t.Parallel()

	ownerID := uuid.New()
	strangerID := uuid.New()

	testCases := []struct {
		name       string
		setupMocks func(r *resources, watchID uuid.UUID)
	}{
		{
			name: "Should report a missing watch as not found",
			setupMocks: func(r *resources, watchID uuid.UUID) {
				r.repository.On("LoadByID", r.ctx, watchID).
					Return(model.Watch{}, ErrWatchNotFound).Once()
			},
		},
		{
			name: "Should report a foreign watch the same as a missing one",
			setupMocks: func(r *resources, watchID uuid.UUID) {
				foreign := NewWatchBuilder(strangerID).WithID(watchID).Build()
				r.repository.On("LoadByID", r.ctx, watchID).Return(foreign, nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			watchID := uuid.New()
			tc.setupMocks(r, watchID)

			_, err := r.usecase.Get(r.ctx, ownerID, watchID)

			assert.ErrorIs(t, err, ErrWatchNotFound)
		})
	}
}

func (s *UsecaseWatchUnitSuite) TestGroupedList(t provider.T) {
	t.Parallel()

	ownerID := uuid.New()
	movieM := &model.Movie{ID: uuid.New(), Title: "Memento"}
	movieN := &model.Movie{ID: uuid.New(), Title: "Nosferatu"}

	t.Run("Should group filtered watches per movie", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		w1 := NewWatchBuilder(ownerID).WithMovie(movieM).WithRating(9).
			WithWatchedOn(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)).Build()
		w2 := NewWatchBuilder(ownerID).WithMovie(movieM).
			WithWatchedOn(time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)).Build()
		w3 := NewWatchBuilder(ownerID).WithMovie(movieM).WithRating(7).
			WithWatchedOn(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)).Build()
		w4 := NewWatchBuilder(ownerID).WithMovie(movieN).WithRating(8).
			WithWatchedOn(time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)).Build()

		r.repository.On("LoadByOwner", r.ctx, ownerID).
			Return([]*model.Watch{&w1, &w2, &w3, &w4}, nil).Once()

		page, err := r.usecase.GroupedList(r.ctx, ownerID, ListQuery{
			SortBy:   model.SortRecentlyWatched,
			Page:     1,
			PageSize: 10,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
		assert.Equal(t, movieM.ID, page.Items[0].MovieID)
		assert.Equal(t, 3, page.Items[0].WatchCount)
		assert.InDelta(t, 8.0, *page.Items[0].AverageRating, 0.0001)
	})

	t.Run("Should reject malformed bounds before touching the store", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.GroupedList(r.ctx, ownerID, ListQuery{
			Filter:   model.WatchFilter{RatingMin: intPtr(9), RatingMax: intPtr(2)},
			SortBy:   model.SortRecentlyWatched,
			Page:     1,
			PageSize: 10,
		})

		assert.ErrorIs(t, err, watch_filter.ErrInvalidBounds)
	})
}

func (s *UsecaseWatchUnitSuite) TestBulkRequestValidation(t provider.T) {
	t.Parallel()

	ownerID := uuid.New()

	testCases := []struct {
		name        string
		watchIDs    []uuid.UUID
		change      model.VisibilityChange
		setupMocks  func(r *resources)
		expectedErr error
	}{
		{
			name:        "Should reject an empty id list before any item",
			watchIDs:    nil,
			change:      model.VisibilityChange{IsPrivate: true, Operation: model.GroupOpAdd},
			setupMocks:  func(r *resources) {},
			expectedErr: ErrEmptyBatch,
		},
		{
			name:        "Should reject an unknown operation before any item",
			watchIDs:    []uuid.UUID{uuid.New()},
			change:      model.VisibilityChange{IsPrivate: false, Operation: "merge"},
			setupMocks:  func(r *resources) {},
			expectedErr: ErrBadOperation,
		},
		{
			name:     "Should reject the whole batch for a deactivated owner",
			watchIDs: []uuid.UUID{uuid.New()},
			change:   model.VisibilityChange{IsPrivate: true, Operation: model.GroupOpAdd},
			setupMocks: func(r *resources) {
				r.accounts.On("Flags", r.ctx, ownerID).
					Return(model.AccountFlags{IsDeactivated: true}, nil).Once()
			},
			expectedErr: ErrAccountDeactivated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			_, err := r.usecase.BulkSetVisibility(r.ctx, ownerID, tc.watchIDs, tc.change)

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func (s *UsecaseWatchUnitSuite) TestBulkPartialFailure(t provider.T) {
	t.Parallel()

	ownerID := uuid.New()
	groupID := uuid.New()

	r := initResources(t)
	activeAccount(r, ownerID)
	memberOf(r, ownerID, groupID)

	w1 := NewWatchBuilder(ownerID).Build()
	w3 := NewWatchBuilder(ownerID).Build()
	missingID := uuid.New()

	r.repository.On("LoadByID", r.ctx, w1.ID).Return(w1, nil).Once()
	r.repository.On("LoadByID", r.ctx, missingID).Return(model.Watch{}, ErrWatchNotFound).Once()
	r.repository.On("LoadByID", r.ctx, w3.ID).Return(w3, nil).Once()

	r.repository.On("SetVisibility", r.ctx, w1.ID, false, []uuid.UUID{groupID}).Return(nil).Once()
	r.repository.On("SetVisibility", r.ctx, w3.ID, false, []uuid.UUID{groupID}).Return(nil).Once()

	result, err := r.usecase.BulkSetVisibility(r.ctx, ownerID,
		[]uuid.UUID{w1.ID, missingID, w3.ID},
		model.VisibilityChange{
			IsPrivate: false,
			GroupIDs:  []uuid.UUID{groupID},
			Operation: model.GroupOpReplace,
		})

	assert.NoError(t, err, "item failures never abort the batch")
	assert.False(t, result.Success())
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, result.Updated+result.Failed, 3)
	assert.Equal(t,
		[]string{fmt.Sprintf("watch %s: not found or not owned", missingID)},
		result.Errors)
}

func (s *UsecaseWatchUnitSuite) TestBulkShareComputation(t provider.T) {
	t.Parallel()

	ownerID := uuid.New()
	oldGroup := uuid.New()
	newGroup := uuid.New()

	testCases := []struct {
		name         string
		change       model.VisibilityChange
		existing     []uuid.UUID
		memberGroups []uuid.UUID
		wantPrivate  bool
		wantShares   []uuid.UUID
		wantFailure  string
	}{
		{
			name: "Add should union candidates into existing shares",
			change: model.VisibilityChange{
				IsPrivate: false,
				GroupIDs:  []uuid.UUID{newGroup},
				Operation: model.GroupOpAdd,
			},
			existing:     []uuid.UUID{oldGroup},
			memberGroups: []uuid.UUID{oldGroup, newGroup},
			wantPrivate:  false,
			wantShares:   []uuid.UUID{oldGroup, newGroup},
		},
		{
			name: "Replace should swap shares for exactly the validated candidates",
			change: model.VisibilityChange{
				IsPrivate: false,
				GroupIDs:  []uuid.UUID{newGroup},
				Operation: model.GroupOpReplace,
			},
			existing:     []uuid.UUID{oldGroup},
			memberGroups: []uuid.UUID{oldGroup, newGroup},
			wantPrivate:  false,
			wantShares:   []uuid.UUID{newGroup},
		},
		{
			name: "Private should clear shares and ignore candidates",
			change: model.VisibilityChange{
				IsPrivate: true,
				GroupIDs:  []uuid.UUID{newGroup},
				Operation: model.GroupOpAdd,
			},
			existing:    []uuid.UUID{oldGroup},
			wantPrivate: true,
			wantShares:  nil,
		},
		{
			name: "Add with no candidates on a private watch should fail MissingGroups",
			change: model.VisibilityChange{
				IsPrivate: false,
				GroupIDs:  nil,
				Operation: model.GroupOpAdd,
			},
			existing:     nil,
			memberGroups: []uuid.UUID{oldGroup},
			wantFailure:  sharing.ErrMissingGroups.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			activeAccount(r, ownerID)

			builder := NewWatchBuilder(ownerID)
			if len(tc.existing) > 0 {
				builder = builder.WithShares(tc.existing...)
			}
			w := builder.Build()

			// Memberships are only consulted when the change is not private.
			if !tc.change.IsPrivate {
				memberOf(r, ownerID, tc.memberGroups...)
			}

			r.repository.On("LoadByID", r.ctx, w.ID).Return(w, nil).Once()
			if tc.wantFailure == "" {
				r.repository.On("SetVisibility", r.ctx, w.ID, tc.wantPrivate, tc.wantShares).
					Return(nil).Once()
			}

			result, err := r.usecase.BulkSetVisibility(r.ctx, ownerID, []uuid.UUID{w.ID}, tc.change)

			assert.NoError(t, err)
			if tc.wantFailure != "" {
				assert.Equal(t, 0, result.Updated)
				assert.Equal(t, 1, result.Failed)
				assert.Contains(t, result.Errors[0], tc.wantFailure)
				return
			}
			assert.True(t, result.Success())
			assert.Equal(t, 1, result.Updated)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseWatchUnitSuite))
}
