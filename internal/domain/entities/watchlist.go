package entities

import "time"

// Filter selects which part of a list the user wants to see.
// The zero value means no filter was selected.
type Filter string

const (
	FilterNone           Filter = ""
	FilterAll            Filter = "ALL"
	FilterReleasing      Filter = "RELEASING"
	FilterFinished       Filter = "FINISHED"
	FilterCancelled      Filter = "CANCELLED"
	FilterNotYetReleased Filter = "NOT_YET_RELEASED"
)

// UserEntry is one tracked item of a user's watchlist (anime) or readlist (manga).
type UserEntry struct {
	ID        uint
	UserID    string
	ContentID int
	Kind      MediaType
	Locale    string
	CreatedAt time.Time
}

// Subscriber is a user tracking a given content id.
type Subscriber struct {
	UserID string
	Locale string
}
