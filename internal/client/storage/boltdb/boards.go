package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/boardkeeper/internal/client/storage"
	"github.com/iudanet/boardkeeper/internal/models"
)

// SaveBoard stores or updates a cached board copy
func (s *Storage) SaveBoard(ctx context.Context, board *models.Board) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBoards)
		if bucket == nil {
			return fmt.Errorf("boards bucket not found")
		}

		// Сериализуем доску в JSON
		data, err := json.Marshal(board)
		if err != nil {
			return fmt.Errorf("failed to marshal board: %w", err)
		}

		// Сохраняем по ID
		if err := bucket.Put([]byte(board.ID), data); err != nil {
			return fmt.Errorf("failed to save board: %w", err)
		}

		return nil
	})
}

// GetBoard retrieves a cached board by ID
func (s *Storage) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	var board *models.Board

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBoards)
		if bucket == nil {
			return fmt.Errorf("boards bucket not found")
		}

		// Получаем данные по ID
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrBoardNotFound
		}

		// Десериализуем
		board = &models.Board{}
		if err := json.Unmarshal(data, board); err != nil {
			return fmt.Errorf("failed to unmarshal board: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return board, nil
}

// ListBoards returns all cached boards
func (s *Storage) ListBoards(ctx context.Context) ([]*models.Board, error) {
	var boards []*models.Board

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBoards)
		if bucket == nil {
			return fmt.Errorf("boards bucket not found")
		}

		// Итерируемся по всем доскам
		return bucket.ForEach(func(k, v []byte) error {
			board := &models.Board{}
			if err := json.Unmarshal(v, board); err != nil {
				return fmt.Errorf("failed to unmarshal board: %w", err)
			}

			boards = append(boards, board)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return boards, nil
}

// DeleteBoard removes a board from the cache
func (s *Storage) DeleteBoard(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBoards)
		if bucket == nil {
			return fmt.Errorf("boards bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrBoardNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete board: %w", err)
		}

		return nil
	})
}
