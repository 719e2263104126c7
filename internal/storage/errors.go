package storage

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned by CreateUser when the username is
	// already registered.
	ErrUsernameTaken = errors.New("username already exists")
)
