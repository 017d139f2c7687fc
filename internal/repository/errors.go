package repository

import "errors"

// ErrNotFound is returned when a post or comment does not exist, regardless
// of which backing store is in use.
var ErrNotFound = errors.New("not found")
