package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash and must never leave the service boundary.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}
