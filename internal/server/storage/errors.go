package storage

import "errors"

// Common storage errors
var (
	// ErrBoardNotFound indicates that board was not found in storage
	ErrBoardNotFound = errors.New("board not found")

	// ErrSlugTaken indicates that a board with this slug already exists
	ErrSlugTaken = errors.New("board slug already taken")
)
