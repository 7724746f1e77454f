package newsdb

import "errors"

var (
	// ErrNotFound is returned when a news item does not exist.
	ErrNotFound = errors.New("news not found")

	// ErrPlayerReference is returned when the referenced player does not exist.
	ErrPlayerReference = errors.New("referenced player does not exist")
)
