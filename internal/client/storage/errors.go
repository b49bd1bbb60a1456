package storage

import "errors"

// Common client storage errors
var (
	// ErrBoardNotFound indicates that board was not found in the local cache
	ErrBoardNotFound = errors.New("board not found")

	// ErrNoActiveBoard indicates that no active board has been selected
	ErrNoActiveBoard = errors.New("no active board selected")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
