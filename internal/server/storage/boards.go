package storage

import (
	"context"

	"github.com/iudanet/boardkeeper/internal/models"
)

//go:generate moq -out boards_mock.go . BoardStorage

// BoardStorage defines interface for board persistence
type BoardStorage interface {
	// CreateBoard creates a new board
	// Returns ErrSlugTaken if a board with the same slug already exists
	CreateBoard(ctx context.Context, board *models.Board) error

	// GetBoard retrieves a single board by ID
	// Returns ErrBoardNotFound if board doesn't exist
	GetBoard(ctx context.Context, id string) (*models.Board, error)

	// ListBoards retrieves all boards ordered by creation time (newest first)
	// Returns empty slice if no boards exist
	ListBoards(ctx context.Context) ([]*models.Board, error)

	// UpdateBoard applies a sparse patch to the board, bumps its version
	// and returns the updated board
	// Returns ErrBoardNotFound if board doesn't exist,
	// ErrSlugTaken if the patch renames the slug to one already in use
	UpdateBoard(ctx context.Context, id string, patch *models.BoardPatch) (*models.Board, error)

	// DeleteBoard removes a board
	// Returns ErrBoardNotFound if board doesn't exist
	DeleteBoard(ctx context.Context, id string) error
}
