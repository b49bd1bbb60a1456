package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/boardkeeper/internal/client/storage"
)

const (
	keyActiveBoard = "active_board"
)

// SaveActiveBoard remembers which board the editor currently works on
func (s *Storage) SaveActiveBoard(ctx context.Context, boardID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyActiveBoard), []byte(boardID)); err != nil {
			return fmt.Errorf("failed to save active board: %w", err)
		}

		return nil
	})
}

// GetActiveBoard returns the board the editor currently works on
// Returns storage.ErrNoActiveBoard if no board has been selected yet
func (s *Storage) GetActiveBoard(ctx context.Context) (string, error) {
	var boardID string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyActiveBoard))
		if data == nil {
			return storage.ErrNoActiveBoard
		}

		boardID = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return boardID, nil
}

// ClearActiveBoard forgets the current board selection
func (s *Storage) ClearActiveBoard(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Delete([]byte(keyActiveBoard)); err != nil {
			return fmt.Errorf("failed to clear active board: %w", err)
		}

		return nil
	})
}
