//go:build !integration
// +build !integration

package usecase_feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	"github.com/stretchr/testify/assert"

	membership_mocks "github.com/johnziss9/SceneStack-sub000/internal/usecase/feed/mocks/feed/membership"
	repo_mocks "github.com/johnziss9/SceneStack-sub000/internal/usecase/feed/mocks/feed/repository"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseFeedUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	feed    *repo_mocks.FeedRepository
	members *membership_mocks.MembershipChecker
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	feed := repo_mocks.NewFeedRepository(t)
	members := membership_mocks.NewMembershipChecker(t)
	usecase := New(feed, members)

	return &resources{
		usecase: usecase,
		feed:    feed,
		members: members,
		ctx:     context.Background(),
	}
}

func sharedWatch(groupID uuid.UUID, watchedOn time.Time) *model.Watch {
	return &model.Watch{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		MovieID:       uuid.New(),
		WatchedOn:     watchedOn,
		IsPrivate:     false,
		Shares:        []uuid.UUID{groupID},
		OwnerUsername: "maria",
		Movie:         &model.Movie{ID: uuid.New(), Title: "Interstellar"},
	}
}

func (s *UsecaseFeedUnitSuite) TestGroupFeed(t provider.T) {
	t.Parallel()

	viewerID := uuid.New()
	groupID := uuid.New()

	t.Run("Should return an empty page to a non-member", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.members.On("IsMember", r.ctx, groupID, viewerID).Return(false, nil).Once()

		page, err := r.usecase.GroupFeed(r.ctx, viewerID, groupID, 0, 20)

		assert.NoError(t, err, "non-membership is not an error")
		assert.Empty(t, page.Items)
		assert.False(t, page.HasMore)
	})

	t.Run("Should return the window to a member", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		items := []*model.Watch{
			sharedWatch(groupID, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)),
			sharedWatch(groupID, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		}
		r.members.On("IsMember", r.ctx, groupID, viewerID).Return(true, nil).Once()
		r.feed.On("SharedWatches", r.ctx, groupID, 0, 20).Return(items, nil).Once()

		page, err := r.usecase.GroupFeed(r.ctx, viewerID, groupID, 0, 20)

		assert.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.False(t, page.HasMore, "a short window means nothing behind it")
	})

	t.Run("Should flag a full window as having more", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		items := []*model.Watch{
			sharedWatch(groupID, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)),
			sharedWatch(groupID, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		}
		r.members.On("IsMember", r.ctx, groupID, viewerID).Return(true, nil).Once()
		r.feed.On("SharedWatches", r.ctx, groupID, 0, 2).Return(items, nil).Once()

		page, err := r.usecase.GroupFeed(r.ctx, viewerID, groupID, 0, 2)

		assert.NoError(t, err)
		assert.True(t, page.HasMore)
	})

	t.Run("Should default and cap the take", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.members.On("IsMember", r.ctx, groupID, viewerID).Return(true, nil).Twice()
		r.feed.On("SharedWatches", r.ctx, groupID, 0, DefaultTake).Return(nil, nil).Once()
		r.feed.On("SharedWatches", r.ctx, groupID, 0, MaxTake).Return(nil, nil).Once()

		_, err := r.usecase.GroupFeed(r.ctx, viewerID, groupID, 0, 0)
		assert.NoError(t, err)

		_, err = r.usecase.GroupFeed(r.ctx, viewerID, groupID, 0, 500)
		assert.NoError(t, err)
	})

	t.Run("Should reject a negative window", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.usecase.GroupFeed(r.ctx, viewerID, groupID, -1, 20)

		assert.ErrorIs(t, err, ErrBadWindow)
	})

	t.Run("Should wrap membership lookup failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.members.On("IsMember", r.ctx, groupID, viewerID).
			Return(false, errors.New("db down")).Once()

		_, err := r.usecase.GroupFeed(r.ctx, viewerID, groupID, 0, 20)

		assert.ErrorIs(t, err, ErrInternal)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseFeedUnitSuite))
}
