package repository

import "context"

// VoteRepository manages the vote relation between users and posts.
// Add and Remove mutate the vote row and the post's vote counter in a single
// transaction: either both land or neither does.
type VoteRepository interface {
	// Add creates the (userID, postID) vote row and increments the post's
	// counter. Returns ErrDuplicate when the user already voted on the post,
	// ErrNotFound when the post does not exist.
	Add(ctx context.Context, userID, postID int64) error

	// Remove deletes the vote row and decrements the counter.
	// Returns ErrNotFound when no such vote exists.
	Remove(ctx context.Context, userID, postID int64) error
}
