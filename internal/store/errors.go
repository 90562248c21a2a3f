package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned when an identifier is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id")
