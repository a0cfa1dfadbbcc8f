package usecase_feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

const (
	DefaultTake = 20
	MaxTake     = 100
)

var (
	ErrBadWindow = errors.New("bad feed window")
	ErrInternal  = errors.New("internal error")
)

//go:generate mockery --name=FeedRepository --output=./mocks/feed/repository --filename=repository.go
type FeedRepository interface {
	SharedWatches(ctx context.Context, groupID uuid.UUID, skip, take int) ([]*model.Watch, error)
}

//go:generate mockery --name=MembershipChecker --output=./mocks/feed/membership --filename=membership.go
type MembershipChecker interface {
	IsMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (bool, error)
}

type Usecase struct {
	feed    FeedRepository
	members MembershipChecker
}

func New(
	feed FeedRepository,
	members MembershipChecker,
) *Usecase {
	return &Usecase{
		feed:    feed,
		members: members,
	}
}

// GroupFeed returns the newest-first window of watches shared with the group.
// Non-members get an empty page rather than an error so the endpoint never
// confirms whether a group exists.
func (u *Usecase) GroupFeed(ctx context.Context, viewerID uuid.UUID, groupID uuid.UUID, skip, take int) (model.FeedPage, error) {
	if skip < 0 || take < 0 {
		return model.FeedPage{}, fmt.Errorf("%w: skip %d take %d", ErrBadWindow, skip, take)
	}
	if take == 0 {
		take = DefaultTake
	}
	if take > MaxTake {
		take = MaxTake
	}

	ok, err := u.members.IsMember(ctx, groupID, viewerID)
	if err != nil {
		return model.FeedPage{}, errors.Join(ErrInternal, err)
	}
	if !ok {
		return model.FeedPage{}, nil
	}

	items, err := u.feed.SharedWatches(ctx, groupID, skip, take)
	if err != nil {
		return model.FeedPage{}, errors.Join(ErrInternal, err)
	}

	return model.FeedPage{
		Items: items,
		// A full window usually means more behind it; a short one never does.
		HasMore: len(items) == take,
	}, nil
}
