package model

import "github.com/google/uuid"

type GroupOperation = string

const (
	// GroupOpAdd unions the candidate groups into each watch's shares.
	GroupOpAdd GroupOperation = "add"
	// GroupOpReplace swaps each watch's shares for the candidate set.
	GroupOpReplace GroupOperation = "replace"
)

// VisibilityChange is one visibility mutation applied across a batch of
// watches.
type VisibilityChange struct {
	IsPrivate bool
	GroupIDs  []uuid.UUID
	Operation GroupOperation
}

// BulkResult accounts for a best-effort batch: every requested item lands
// in exactly one of Updated or Failed, and Errors carries one message per
// failed item in processing order.
type BulkResult struct {
	Updated int
	Failed  int
	Errors  []string
}

func (r BulkResult) Success() bool {
	return r.Failed == 0
}
