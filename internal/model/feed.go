package model

// FeedPage is one window of a group's shared-watch feed.
type FeedPage struct {
	Items   []*Watch
	HasMore bool
}
