package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/boardkeeper/internal/models"
	"github.com/iudanet/boardkeeper/internal/server/storage"
)

// CreateBoard creates a new board
// Returns storage.ErrSlugTaken if a board with the same slug already exists
func (s *Storage) CreateBoard(ctx context.Context, board *models.Board) error {
	config, blocks, err := marshalBoardJSON(board)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO boards (id, title, slug, config, blocks, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		board.ID,
		board.Title,
		board.Slug,
		config,
		blocks,
		board.Version,
		board.CreatedAt.Unix(),
		board.UpdatedAt.Unix(),
	)

	if err != nil {
		// Проверяем на duplicate slug
		if strings.Contains(err.Error(), "UNIQUE constraint failed: boards.slug") {
			return storage.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert board: %w", err)
	}

	return nil
}

// GetBoard retrieves a single board by ID
// Returns storage.ErrBoardNotFound if board doesn't exist
func (s *Storage) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	query := `
		SELECT id, title, slug, config, blocks, version, created_at, updated_at
		FROM boards
		WHERE id = ?
	`

	board, err := scanBoard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return board, nil
}

// ListBoards retrieves all boards ordered by creation time (newest first)
func (s *Storage) ListBoards(ctx context.Context) (boards []*models.Board, err error) {
	query := `
		SELECT id, title, slug, config, blocks, version, created_at, updated_at
		FROM boards
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	// Ошибка Close не должна теряться: через именованный err она
	// уходит вызывающему, если итерация прошла без своей ошибки
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			boards = nil
			err = fmt.Errorf("failed to close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		board, serr := scanBoard(rows)
		if serr != nil {
			return nil, fmt.Errorf("failed to scan board: %w", serr)
		}
		boards = append(boards, board)
	}

	if rerr := rows.Err(); rerr != nil {
		return nil, fmt.Errorf("rows iteration error: %w", rerr)
	}

	return boards, nil
}

// UpdateBoard applies a sparse patch to the board, bumps its version
// and returns the updated board
func (s *Storage) UpdateBoard(ctx context.Context, id string, patch *models.BoardPatch) (*models.Board, error) {
	board, err := s.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	board.Apply(patch)
	board.Version++
	board.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	config, blocks, err := marshalBoardJSON(board)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE boards
		SET title = ?, slug = ?, config = ?, blocks = ?, version = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = s.db.ExecContext(ctx, query,
		board.Title,
		board.Slug,
		config,
		blocks,
		board.Version,
		board.UpdatedAt.Unix(),
		board.ID,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: boards.slug") {
			return nil, storage.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

// DeleteBoard removes a board
// Returns storage.ErrBoardNotFound if board doesn't exist
func (s *Storage) DeleteBoard(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrBoardNotFound
	}

	return nil
}

// rowScanner абстрагирует *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBoard is a helper function to scan a board from a row
func scanBoard(row rowScanner) (*models.Board, error) {
	board := &models.Board{}
	var config, blocks string
	var createdAt, updatedAt int64

	err := row.Scan(
		&board.ID,
		&board.Title,
		&board.Slug,
		&config,
		&blocks,
		&board.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(config), &board.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board config: %w", err)
	}
	if err := json.Unmarshal([]byte(blocks), &board.Blocks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board blocks: %w", err)
	}

	board.CreatedAt = time.Unix(createdAt, 0).UTC()
	board.UpdatedAt = time.Unix(updatedAt, 0).UTC()

	return board, nil
}

// marshalBoardJSON сериализует config и blocks доски в JSON для хранения
func marshalBoardJSON(board *models.Board) (config, blocks string, err error) {
	cfg := board.Config
	if cfg == nil {
		cfg = map[string]any{}
	}
	configBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal board config: %w", err)
	}

	blk := board.Blocks
	if blk == nil {
		blk = []models.Block{}
	}
	blocksBytes, err := json.Marshal(blk)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal board blocks: %w", err)
	}

	return string(configBytes), string(blocksBytes), nil
}
