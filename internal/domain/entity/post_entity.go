package entity

import "time"

// Post belongs to exactly one owner; only the owner may update or delete it.
// Votes is a denormalized counter kept in lockstep with the votes table.
type Post struct {
	ID        int64
	Title     string
	Content   string
	Published bool
	Votes     int
	OwnerID   int64
	CreatedAt time.Time

	// Owner is populated on reads that join the users table.
	Owner *User
}
