package application

import "errors"

// Service-level errors. Handlers translate these to HTTP statuses; anything
// else bubbling out of a service is a store failure and maps to a 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotOwner           = errors.New("not the post owner")
	ErrAlreadyVoted       = errors.New("already voted on post")
	ErrVoteNotFound       = errors.New("vote not found")
)
