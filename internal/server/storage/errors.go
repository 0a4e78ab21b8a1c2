package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrSessionNotFound indicates that session was not found or has expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrBookNotFound indicates that no book matched the query
	ErrBookNotFound = errors.New("book not found")

	// ErrReviewNotFound indicates that the caller has no review for the book
	ErrReviewNotFound = errors.New("review not found")
)
