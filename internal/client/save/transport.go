package save

import (
	"context"

	"github.com/iudanet/boardkeeper/internal/models"
)

//go:generate moq -out transport_mock.go . Transport

// Transport — граница персистентности: асинхронная отправка sparse patch
// на сервер. Возвращает каноническое представление доски или ошибку.
// Никто кроме Transport не ходит в бэкенд.
type Transport interface {
	// UpdateBoard отправляет patch доски и возвращает её серверное состояние
	UpdateBoard(ctx context.Context, boardID string, patch Patch) (*models.Board, error)
}
