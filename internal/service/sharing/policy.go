package sharing

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
)

// Sentinel text doubles as the wire code clients match on, so these two
// stay exactly "MissingGroups" and "ForeignGroup".
var (
	ErrMissingGroups = errors.New("MissingGroups")
	ErrForeignGroup  = errors.New("ForeignGroup")
)

// Policy is the single source of truth for the visibility invariant:
// a private watch is shared with nobody, a shared watch names at least
// one group, and every named group is one the owner belongs to right now.
type Policy struct{}

func New() *Policy {
	return &Policy{}
}

// Normalize validates the (isPrivate, requested) pair against the owner's
// current memberships and returns the share set to persist.
//
// Private discards any requested ids without complaint. Non-private
// requires a non-empty request and rejects the first id the owner is not
// a member of, naming it.
func (p *Policy) Normalize(isPrivate bool, requested []uuid.UUID, memberships model.MembershipSet) ([]uuid.UUID, error) {
	if isPrivate {
		return nil, nil
	}

	if len(requested) == 0 {
		return nil, ErrMissingGroups
	}

	shares := make([]uuid.UUID, 0, len(requested))
	seen := make(map[uuid.UUID]struct{}, len(requested))
	for _, id := range requested {
		if !memberships.Contains(id) {
			return nil, fmt.Errorf("%w:%s", ErrForeignGroup, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		shares = append(shares, id)
	}

	return shares, nil
}

// CheckInvariants enforces only the structural half of the invariant on an
// already-computed share set. The bulk path uses it after intersecting
// candidates with memberships itself: existing shares must survive an
// "add" even when the owner has since left their group, so re-validating
// membership here would be wrong.
func (p *Policy) CheckInvariants(isPrivate bool, shares []uuid.UUID) error {
	if isPrivate && len(shares) > 0 {
		return errors.New("private watch cannot keep shares")
	}
	if !isPrivate && len(shares) == 0 {
		return ErrMissingGroups
	}
	return nil
}

// Intersect keeps the candidates the owner is currently a member of,
// deduplicated, in first-occurrence order.
func (p *Policy) Intersect(candidates []uuid.UUID, memberships model.MembershipSet) []uuid.UUID {
	kept := make([]uuid.UUID, 0, len(candidates))
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	for _, id := range candidates {
		if !memberships.Contains(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, id)
	}
	return kept
}

// Union merges extra into base, deduplicated, preserving base order first.
func (p *Policy) Union(base, extra []uuid.UUID) []uuid.UUID {
	merged := make([]uuid.UUID, 0, len(base)+len(extra))
	seen := make(map[uuid.UUID]struct{}, len(base)+len(extra))
	for _, set := range [][]uuid.UUID{base, extra} {
		for _, id := range set {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	return merged
}
