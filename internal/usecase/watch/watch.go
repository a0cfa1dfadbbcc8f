package usecase_watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	"github.com/johnziss9/SceneStack-sub000/internal/service/grouping"
	"github.com/johnziss9/SceneStack-sub000/internal/service/sharing"
	"github.com/johnziss9/SceneStack-sub000/internal/service/watch_filter"
)

var (
	ErrWatchNotFound      = errors.New("not found or not owned")
	ErrBadRating          = errors.New("rating out of range")
	ErrEmptyBatch         = errors.New("no watch ids")
	ErrBadOperation       = errors.New("unknown group operation")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrMovieUnavailable   = errors.New("movie lookup failed")
	ErrNotPersisted       = errors.New("not persisted")
	ErrInternal           = errors.New("internal error")
)

//go:generate mockery --name=WatchRepository --output=./mocks/watch/repository --filename=repository.go
type WatchRepository interface {
	Store(ctx context.Context, w model.Watch) error
	LoadByID(ctx context.Context, id uuid.UUID) (model.Watch, error)
	LoadByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Watch, error)
	Update(ctx context.Context, w model.Watch) error
	SetVisibility(ctx context.Context, watchID uuid.UUID, isPrivate bool, groupIDs []uuid.UUID) error
	DeleteByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

//go:generate mockery --name=MembershipSource --output=./mocks/watch/membership --filename=membership.go
type MembershipSource interface {
	ListMemberships(ctx context.Context, userID uuid.UUID) ([]model.Membership, error)
}

//go:generate mockery --name=MovieResolver --output=./mocks/watch/resolver --filename=resolver.go
type MovieResolver interface {
	Resolve(ctx context.Context, catalogID int64) (model.Movie, error)
}

//go:generate mockery --name=AccountSource --output=./mocks/watch/account --filename=account.go
type AccountSource interface {
	Flags(ctx context.Context, userID uuid.UUID) (model.AccountFlags, error)
}

type Usecase struct {
	watches     WatchRepository
	memberships MembershipSource
	movies      MovieResolver
	accounts    AccountSource

	policy     *sharing.Policy
	filters    *watch_filter.Compiler
	aggregator *grouping.Aggregator
}

func New(
	watches WatchRepository,
	memberships MembershipSource,
	movies MovieResolver,
	accounts AccountSource,
	policy *sharing.Policy,
	filters *watch_filter.Compiler,
	aggregator *grouping.Aggregator,
) *Usecase {
	return &Usecase{
		watches:     watches,
		memberships: memberships,
		movies:      movies,
		accounts:    accounts,
		policy:      policy,
		filters:     filters,
		aggregator:  aggregator,
	}
}

type LogInput struct {
	CatalogID  int64
	WatchedOn  time.Time
	Rating     *int
	Notes      string
	Location   string
	Companions []string
	IsRewatch  bool
	IsPrivate  bool
	GroupIDs   []uuid.UUID
}

type UpdateInput struct {
	WatchedOn  time.Time
	Rating     *int
	Notes      string
	Location   string
	Companions []string
	IsRewatch  bool
	IsPrivate  bool
	GroupIDs   []uuid.UUID
}

type ListQuery struct {
	Filter   model.WatchFilter
	SortBy   model.SortKey
	Page     int
	PageSize int
}

func (u *Usecase) Log(ctx context.Context, ownerID uuid.UUID, in LogInput) (model.Watch, error) {
	if err := u.ensureActive(ctx, ownerID); err != nil {
		return model.Watch{}, err
	}
	if err := validateRating(in.Rating); err != nil {
		return model.Watch{}, err
	}

	movie, err := u.movies.Resolve(ctx, in.CatalogID)
	if err != nil {
		return model.Watch{}, fmt.Errorf("%w: %w", ErrMovieUnavailable, err)
	}

	shares, err := u.resolveShares(ctx, ownerID, in.IsPrivate, in.GroupIDs)
	if err != nil {
		return model.Watch{}, err
	}

	now := time.Now().UTC()
	w := model.Watch{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		MovieID:    movie.ID,
		WatchedOn:  in.WatchedOn,
		Rating:     in.Rating,
		Notes:      in.Notes,
		Location:   in.Location,
		Companions: in.Companions,
		IsRewatch:  in.IsRewatch,
		IsPrivate:  in.IsPrivate,
		Shares:     shares,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := u.watches.Store(ctx, w); err != nil {
		return model.Watch{}, errors.Join(ErrInternal, err)
	}

	w.Movie = &movie
	return w, nil
}

func (u *Usecase) Update(ctx context.Context, ownerID uuid.UUID, watchID uuid.UUID, in UpdateInput) (model.Watch, error) {
	if err := u.ensureActive(ctx, ownerID); err != nil {
		return model.Watch{}, err
	}
	if err := validateRating(in.Rating); err != nil {
		return model.Watch{}, err
	}

	current, err := u.loadOwned(ctx, ownerID, watchID)
	if err != nil {
		return model.Watch{}, err
	}

	shares, err := u.resolveShares(ctx, ownerID, in.IsPrivate, in.GroupIDs)
	if err != nil {
		return model.Watch{}, err
	}

	current.WatchedOn = in.WatchedOn
	current.Rating = in.Rating
	current.Notes = in.Notes
	current.Location = in.Location
	current.Companions = in.Companions
	current.IsRewatch = in.IsRewatch
	current.IsPrivate = in.IsPrivate
	current.Shares = shares
	current.UpdatedAt = time.Now().UTC()

	if err := u.watches.Update(ctx, current); err != nil {
		return model.Watch{}, errors.Join(ErrInternal, err)
	}

	return current, nil
}

func (u *Usecase) Get(ctx context.Context, ownerID uuid.UUID, watchID uuid.UUID) (model.Watch, error) {
	return u.loadOwned(ctx, ownerID, watchID)
}

func (u *Usecase) Delete(ctx context.Context, ownerID uuid.UUID, watchID uuid.UUID) error {
	if err := u.ensureActive(ctx, ownerID); err != nil {
		return err
	}

	if err := u.watches.DeleteByID(ctx, watchID, ownerID); err != nil {
		if errors.Is(err, ErrWatchNotFound) {
			return ErrWatchNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// GroupedList loads the owner's full history, keeps what the filter
// accepts and folds the rest into per-movie groups.
func (u *Usecase) GroupedList(ctx context.Context, ownerID uuid.UUID, q ListQuery) (model.GroupedPage, error) {
	predicate, err := u.filters.Build(q.Filter)
	if err != nil {
		return model.GroupedPage{}, err
	}

	all, err := u.watches.LoadByOwner(ctx, ownerID)
	if err != nil {
		return model.GroupedPage{}, errors.Join(ErrInternal, err)
	}

	kept := make([]*model.Watch, 0, len(all))
	for _, w := range all {
		if predicate(w) {
			kept = append(kept, w)
		}
	}

	return u.aggregator.Aggregate(kept, q.SortBy, q.Page, q.PageSize)
}

// BulkSetVisibility applies one visibility change to every listed watch.
// Request-level problems reject the whole call; anything wrong with a
// single watch only fails that item and the loop moves on.
func (u *Usecase) BulkSetVisibility(ctx context.Context, ownerID uuid.UUID, watchIDs []uuid.UUID, change model.VisibilityChange) (model.BulkResult, error) {
	if len(watchIDs) == 0 {
		return model.BulkResult{}, ErrEmptyBatch
	}
	if change.Operation != model.GroupOpAdd && change.Operation != model.GroupOpReplace {
		return model.BulkResult{}, fmt.Errorf("%w: %q", ErrBadOperation, change.Operation)
	}
	if err := u.ensureActive(ctx, ownerID); err != nil {
		return model.BulkResult{}, err
	}

	// Memberships are read once; every item in the batch sees the same snapshot.
	var candidates []uuid.UUID
	if !change.IsPrivate {
		mm, err := u.memberships.ListMemberships(ctx, ownerID)
		if err != nil {
			return model.BulkResult{}, errors.Join(ErrInternal, err)
		}
		candidates = u.policy.Intersect(change.GroupIDs, model.NewMembershipSet(mm))
	}

	var res model.BulkResult
	for _, id := range watchIDs {
		if err := u.applyVisibility(ctx, ownerID, id, change, candidates); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("watch %s: %s", id, err))
			continue
		}
		res.Updated++
	}

	return res, nil
}

func (u *Usecase) applyVisibility(ctx context.Context, ownerID uuid.UUID, watchID uuid.UUID, change model.VisibilityChange, candidates []uuid.UUID) error {
	current, err := u.loadOwned(ctx, ownerID, watchID)
	if err != nil {
		return err
	}

	var shares []uuid.UUID
	switch {
	case change.IsPrivate:
		shares = nil
	case change.Operation == model.GroupOpAdd:
		// Add only ever widens: shares that predate a membership change stay.
		shares = u.policy.Union(current.Shares, candidates)
	default:
		shares = candidates
	}

	if err := u.policy.CheckInvariants(change.IsPrivate, shares); err != nil {
		return err
	}

	if err := u.watches.SetVisibility(ctx, watchID, change.IsPrivate, shares); err != nil {
		return ErrNotPersisted
	}
	return nil
}

func (u *Usecase) resolveShares(ctx context.Context, ownerID uuid.UUID, isPrivate bool, requested []uuid.UUID) ([]uuid.UUID, error) {
	if isPrivate {
		return u.policy.Normalize(isPrivate, requested, nil)
	}

	mm, err := u.memberships.ListMemberships(ctx, ownerID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	return u.policy.Normalize(isPrivate, requested, model.NewMembershipSet(mm))
}

func (u *Usecase) loadOwned(ctx context.Context, ownerID uuid.UUID, watchID uuid.UUID) (model.Watch, error) {
	w, err := u.watches.LoadByID(ctx, watchID)
	if err != nil {
		if errors.Is(err, ErrWatchNotFound) {
			return model.Watch{}, ErrWatchNotFound
		}
		return model.Watch{}, errors.Join(ErrInternal, err)
	}

	// A foreign watch reads the same as a missing one.
	if w.OwnerID != ownerID {
		return model.Watch{}, ErrWatchNotFound
	}

	return w, nil
}

func (u *Usecase) ensureActive(ctx context.Context, userID uuid.UUID) error {
	flags, err := u.accounts.Flags(ctx, userID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if flags.IsDeactivated {
		return ErrAccountDeactivated
	}
	return nil
}

func validateRating(r *int) error {
	if r == nil {
		return nil
	}
	if *r < model.RatingFloor || *r > model.RatingCeil {
		return fmt.Errorf("%w: %d", ErrBadRating, *r)
	}
	return nil
}
