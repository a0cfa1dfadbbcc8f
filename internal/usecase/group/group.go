package usecase_group

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

var (
	ErrGroupNotFound = errors.New("no such group")
	ErrAlreadyMember = errors.New("already a member")
	ErrEmptyName     = errors.New("group name cannot be empty")
	ErrInternal      = errors.New("internal error")
)

//go:generate mockery --name=GroupRepository --output=./mocks/group/repository --filename=repository.go
type GroupRepository interface {
	// Create inserts the group and its creator membership atomically.
	Create(ctx context.Context, g model.Group) error
	AddMember(ctx context.Context, m model.Membership) error
	ByUser(ctx context.Context, userID uuid.UUID) ([]*model.GroupWithRole, error)
	MembersOf(ctx context.Context, groupID uuid.UUID) ([]*model.GroupMember, error)
	IsMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (bool, error)
}

type Usecase struct {
	groups GroupRepository
}

func New(
	groups GroupRepository,
) *Usecase {
	return &Usecase{
		groups: groups,
	}
}

func (u *Usecase) Create(ctx context.Context, creatorID uuid.UUID, name string) (model.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Group{}, ErrEmptyName
	}

	g := model.Group{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: creatorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.groups.Create(ctx, g); err != nil {
		return model.Group{}, errors.Join(ErrInternal, err)
	}

	return g, nil
}

func (u *Usecase) Join(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) error {
	m := model.Membership{
		GroupID:  groupID,
		UserID:   userID,
		Role:     model.RoleMember,
		JoinedAt: time.Now().UTC(),
	}

	if err := u.groups.AddMember(ctx, m); err != nil {
		if errors.Is(err, ErrAlreadyMember) || errors.Is(err, ErrGroupNotFound) {
			return err
		}
		return errors.Join(ErrInternal, err)
	}

	return nil
}

func (u *Usecase) Mine(ctx context.Context, userID uuid.UUID) ([]*model.GroupWithRole, error) {
	gg, err := u.groups.ByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return gg, nil
}

// Members lists a group's roster. Outsiders get ErrGroupNotFound so the
// endpoint never confirms whether a group exists.
func (u *Usecase) Members(ctx context.Context, viewerID uuid.UUID, groupID uuid.UUID) ([]*model.GroupMember, error) {
	ok, err := u.groups.IsMember(ctx, groupID, viewerID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if !ok {
		return nil, ErrGroupNotFound
	}

	mm, err := u.groups.MembersOf(ctx, groupID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	return mm, nil
}
