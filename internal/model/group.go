package model

import (
	"time"

	"github.com/google/uuid"
)

type Role = string

const (
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
	RoleMember  Role = "member"
)

type Group struct {
	ID        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// Membership is one (group, user) pair. Membership alone decides who may
// see group-shared watches.
type Membership struct {
	GroupID  uuid.UUID
	UserID   uuid.UUID
	Role     Role
	JoinedAt time.Time
}

// GroupWithRole is a group annotated with the viewing user's own role,
// as returned by "my groups" listings.
type GroupWithRole struct {
	Group
	Role Role
}

// GroupMember is one row of a group's member listing.
type GroupMember struct {
	UserID   uuid.UUID
	Username string
	Role     Role
	JoinedAt time.Time
}

// MembershipSet is the point-in-time view of one user's groups used by
// the sharing engine.
type MembershipSet map[uuid.UUID]struct{}

func NewMembershipSet(mm []Membership) MembershipSet {
	set := make(MembershipSet, len(mm))
	for _, m := range mm {
		set[m.GroupID] = struct{}{}
	}
	return set
}

func (s MembershipSet) Contains(groupID uuid.UUID) bool {
	_, ok := s[groupID]
	return ok
}
