package entity

import "time"

// Vote is keyed by (UserID, PostID); the row's existence is the vote.
type Vote struct {
	UserID    int64
	PostID    int64
	CreatedAt time.Time
}
