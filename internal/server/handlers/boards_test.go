package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/boardkeeper/internal/models"
	"github.com/iudanet/boardkeeper/internal/server/storage"
	"github.com/iudanet/boardkeeper/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storedBoard() *models.Board {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &models.Board{
		ID:        "board-1",
		Title:     "Launch plan",
		Slug:      "launch-plan",
		Config:    map[string]any{"theme": "dark"},
		Blocks:    []models.Block{{ID: "block-1", Type: "text", Position: 0}},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func decodeError(t *testing.T, body io.Reader) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestBoardsHandler_Create(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{
		CreateBoardFunc: func(ctx context.Context, board *models.Board) error {
			return nil
		},
	}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	body, _ := json.Marshal(api.CreateBoardRequest{Title: "Launch plan", Slug: "launch-plan"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/boards", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleBoards(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created api.Board
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Launch plan", created.Title)
	assert.Equal(t, "launch-plan", created.Slug)
	assert.Equal(t, int64(1), created.Version)

	// Хранилищу передана доска со сгенерированным ID
	calls := mockStorage.CreateBoardCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, created.ID, calls[0].Board.ID)
}

func TestBoardsHandler_Create_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		req    api.CreateBoardRequest
		errMsg string
	}{
		{
			name:   "empty title",
			req:    api.CreateBoardRequest{Title: "", Slug: "launch-plan"},
			errMsg: "title cannot be empty",
		},
		{
			name:   "bad slug",
			req:    api.CreateBoardRequest{Title: "Launch plan", Slug: "Launch Plan"},
			errMsg: "slug can only contain lowercase letters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := &storage.BoardStorageMock{}
			handler := NewBoardsHandler(setupTestLogger(), mockStorage)

			body, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/boards", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.HandleBoards(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			errResp := decodeError(t, w.Body)
			assert.Contains(t, errResp.Error.Message, tt.errMsg)

			// До хранилища запрос не дошел
			assert.Empty(t, mockStorage.CreateBoardCalls())
		})
	}
}

func TestBoardsHandler_Create_SlugTaken(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{
		CreateBoardFunc: func(ctx context.Context, board *models.Board) error {
			return storage.ErrSlugTaken
		},
	}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	body, _ := json.Marshal(api.CreateBoardRequest{Title: "Launch plan", Slug: "launch-plan"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/boards", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleBoards(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	errResp := decodeError(t, w.Body)
	assert.Contains(t, errResp.Error.Message, "slug already taken")
}

func TestBoardsHandler_List(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{
		ListBoardsFunc: func(ctx context.Context) ([]*models.Board, error) {
			return []*models.Board{storedBoard()}, nil
		},
	}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/boards", nil)
	w := httptest.NewRecorder()

	handler.HandleBoards(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.ListBoardsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Boards, 1)
	assert.Equal(t, "board-1", resp.Boards[0].ID)
}

func TestBoardsHandler_Get(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{
		GetBoardFunc: func(ctx context.Context, id string) (*models.Board, error) {
			assert.Equal(t, "board-1", id)
			return storedBoard(), nil
		},
	}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/boards/board-1", nil)
	req.SetPathValue("id", "board-1")
	w := httptest.NewRecorder()

	handler.HandleBoard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var board api.Board
	require.NoError(t, json.NewDecoder(w.Body).Decode(&board))
	assert.Equal(t, "Launch plan", board.Title)
}

func TestBoardsHandler_Get_NotFound(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{
		GetBoardFunc: func(ctx context.Context, id string) (*models.Board, error) {
			return nil, storage.ErrBoardNotFound
		},
	}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/boards/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.HandleBoard(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	errResp := decodeError(t, w.Body)
	assert.Equal(t, "board not found", errResp.Error.Message)
}

func TestBoardsHandler_Update(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{
		UpdateBoardFunc: func(ctx context.Context, id string, patch *models.BoardPatch) (*models.Board, error) {
			board := storedBoard()
			board.Apply(patch)
			board.Version++
			return board, nil
		},
	}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	newTitle := "Renamed"
	body, _ := json.Marshal(api.UpdateBoardRequest{Title: &newTitle})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/boards/board-1", bytes.NewReader(body))
	req.SetPathValue("id", "board-1")
	w := httptest.NewRecorder()

	handler.HandleBoard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var board api.Board
	require.NoError(t, json.NewDecoder(w.Body).Decode(&board))
	assert.Equal(t, "Renamed", board.Title)
	assert.Equal(t, int64(2), board.Version)

	// В patch попали только переданные поля
	calls := mockStorage.UpdateBoardCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Patch.Title)
	assert.Equal(t, "Renamed", *calls[0].Patch.Title)
	assert.Nil(t, calls[0].Patch.Slug)
	assert.Nil(t, calls[0].Patch.Config)
	assert.Nil(t, calls[0].Patch.Blocks)
}

func TestBoardsHandler_Update_ValidationError(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	badSlug := "Bad Slug"
	body, _ := json.Marshal(api.UpdateBoardRequest{Slug: &badSlug})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/boards/board-1", bytes.NewReader(body))
	req.SetPathValue("id", "board-1")
	w := httptest.NewRecorder()

	handler.HandleBoard(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, mockStorage.UpdateBoardCalls())
}

func TestBoardsHandler_Update_NotFound(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{
		UpdateBoardFunc: func(ctx context.Context, id string, patch *models.BoardPatch) (*models.Board, error) {
			return nil, storage.ErrBoardNotFound
		},
	}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	newTitle := "Renamed"
	body, _ := json.Marshal(api.UpdateBoardRequest{Title: &newTitle})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/boards/missing", bytes.NewReader(body))
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.HandleBoard(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoardsHandler_Delete(t *testing.T) {
	mockStorage := &storage.BoardStorageMock{
		DeleteBoardFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	handler := NewBoardsHandler(setupTestLogger(), mockStorage)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/boards/board-1", nil)
	req.SetPathValue("id", "board-1")
	w := httptest.NewRecorder()

	handler.HandleBoard(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	calls := mockStorage.DeleteBoardCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "board-1", calls[0].ID)
}

func TestBoardsHandler_MethodNotAllowed(t *testing.T) {
	handler := NewBoardsHandler(setupTestLogger(), &storage.BoardStorageMock{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/boards", nil)
	w := httptest.NewRecorder()

	handler.HandleBoards(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
