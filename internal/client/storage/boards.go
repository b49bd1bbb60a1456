package storage

import (
	"context"

	"github.com/iudanet/boardkeeper/internal/models"
)

//go:generate moq -out boards_mock.go . BoardCache

// BoardCache defines interface for caching board state on the client.
// The cache holds the last server-confirmed copy of each board, which
// is what local edits are rolled back to when a save ultimately fails.
type BoardCache interface {
	// SaveBoard stores or updates a cached board copy
	SaveBoard(ctx context.Context, board *models.Board) error

	// GetBoard retrieves a cached board by ID
	// Returns ErrBoardNotFound if the board is not cached
	GetBoard(ctx context.Context, id string) (*models.Board, error)

	// ListBoards returns all cached boards
	ListBoards(ctx context.Context) ([]*models.Board, error)

	// DeleteBoard removes a board from the cache
	DeleteBoard(ctx context.Context, id string) error
}
