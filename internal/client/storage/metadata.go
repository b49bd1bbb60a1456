package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveActiveBoard remembers which board the editor currently works on
	SaveActiveBoard(ctx context.Context, boardID string) error

	// GetActiveBoard returns the board the editor currently works on
	// Returns ErrNoActiveBoard if no board has been selected yet
	GetActiveBoard(ctx context.Context) (string, error)

	// ClearActiveBoard forgets the current board selection
	ClearActiveBoard(ctx context.Context) error
}
