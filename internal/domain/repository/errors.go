package repository

import "errors"

// Sentinel errors shared by all repository implementations so callers can
// branch with errors.Is without importing the storage driver.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
