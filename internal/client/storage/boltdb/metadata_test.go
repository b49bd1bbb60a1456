package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/boardkeeper/internal/client/storage"
)

func TestSaveAndGetActiveBoard(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально активная доска не выбрана
	_, err := store.GetActiveBoard(ctx)
	assert.ErrorIs(t, err, storage.ErrNoActiveBoard)

	// Сохраняем выбор
	require.NoError(t, store.SaveActiveBoard(ctx, "board-42"))

	got, err := store.GetActiveBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "board-42", got)
}

func TestClearActiveBoard(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveActiveBoard(ctx, "board-42"))
	require.NoError(t, store.ClearActiveBoard(ctx))

	_, err := store.GetActiveBoard(ctx)
	assert.ErrorIs(t, err, storage.ErrNoActiveBoard)

	// Повторная очистка без выбранной доски не является ошибкой
	require.NoError(t, store.ClearActiveBoard(ctx))
}

func TestGetActiveBoard_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetActiveBoard(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}

func TestSaveActiveBoard_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	err = store.SaveActiveBoard(ctx, "board-42")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
