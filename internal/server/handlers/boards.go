package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/boardkeeper/internal/models"
	"github.com/iudanet/boardkeeper/internal/server/storage"
	"github.com/iudanet/boardkeeper/internal/validation"
	"github.com/iudanet/boardkeeper/pkg/api"
)

// BoardStorage определяет интерфейс для работы с досками
type BoardStorage interface {
	CreateBoard(ctx context.Context, board *models.Board) error
	GetBoard(ctx context.Context, id string) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	UpdateBoard(ctx context.Context, id string, patch *models.BoardPatch) (*models.Board, error)
	DeleteBoard(ctx context.Context, id string) error
}

// BoardsHandler handles board CRUD requests
type BoardsHandler struct {
	logger  *slog.Logger
	storage BoardStorage
}

// NewBoardsHandler creates a new boards handler
func NewBoardsHandler(logger *slog.Logger, storage BoardStorage) *BoardsHandler {
	return &BoardsHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleBoards обрабатывает запросы к коллекции /api/v1/boards
func (h *BoardsHandler) HandleBoards(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		respondError(w, h.logger, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// HandleBoard обрабатывает запросы к отдельной доске /api/v1/boards/{id}
func (h *BoardsHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, h.logger, http.StatusBadRequest, "board id is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, id)
	case http.MethodPatch:
		h.handleUpdate(w, r, id)
	case http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		respondError(w, h.logger, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleCreate обрабатывает POST /api/v1/boards
func (h *BoardsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req api.CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode create request", "error", err)
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := validation.ValidateSlug(req.Slug); err != nil {
		respondError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		return
	}

	now := time.Now().UTC().Truncate(time.Second)
	board := &models.Board{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Slug:      req.Slug,
		Config:    map[string]any{},
		Blocks:    []models.Block{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.storage.CreateBoard(r.Context(), board); err != nil {
		if errors.Is(err, storage.ErrSlugTaken) {
			respondError(w, h.logger, http.StatusConflict, "board slug already taken")
			return
		}
		h.logger.Error("failed to create board", "error", err)
		respondError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("board created", "board_id", board.ID, "slug", board.Slug)
	respondJSON(w, h.logger, http.StatusCreated, boardToAPI(board))
}

// handleList обрабатывает GET /api/v1/boards
func (h *BoardsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	boards, err := h.storage.ListBoards(r.Context())
	if err != nil {
		h.logger.Error("failed to list boards", "error", err)
		respondError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := api.ListBoardsResponse{Boards: make([]api.Board, 0, len(boards))}
	for _, board := range boards {
		resp.Boards = append(resp.Boards, boardToAPI(board))
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}

// handleGet обрабатывает GET /api/v1/boards/{id}
func (h *BoardsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	board, err := h.storage.GetBoard(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrBoardNotFound) {
			respondError(w, h.logger, http.StatusNotFound, "board not found")
			return
		}
		h.logger.Error("failed to get board", "error", err, "board_id", id)
		respondError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, boardToAPI(board))
}

// handleUpdate обрабатывает PATCH /api/v1/boards/{id}
// Принимает sparse patch: присутствующие поля валидируются и применяются,
// отсутствующие не трогаются
func (h *BoardsHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var req api.UpdateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode update request", "error", err, "board_id", id)
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title != nil {
		if err := validation.ValidateTitle(*req.Title); err != nil {
			respondError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}
	if req.Slug != nil {
		if err := validation.ValidateSlug(*req.Slug); err != nil {
			respondError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	patch := &models.BoardPatch{
		Title:  req.Title,
		Slug:   req.Slug,
		Config: req.Config,
		Blocks: blocksFromAPI(req.Blocks),
	}

	board, err := h.storage.UpdateBoard(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBoardNotFound):
			respondError(w, h.logger, http.StatusNotFound, "board not found")
		case errors.Is(err, storage.ErrSlugTaken):
			respondError(w, h.logger, http.StatusConflict, "board slug already taken")
		default:
			h.logger.Error("failed to update board", "error", err, "board_id", id)
			respondError(w, h.logger, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.logger.Info("board updated", "board_id", board.ID, "version", board.Version)
	respondJSON(w, h.logger, http.StatusOK, boardToAPI(board))
}

// handleDelete обрабатывает DELETE /api/v1/boards/{id}
func (h *BoardsHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.storage.DeleteBoard(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrBoardNotFound) {
			respondError(w, h.logger, http.StatusNotFound, "board not found")
			return
		}
		h.logger.Error("failed to delete board", "error", err, "board_id", id)
		respondError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("board deleted", "board_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// boardToAPI конвертирует доменную доску в API формат
func boardToAPI(board *models.Board) api.Board {
	blocks := make([]api.Block, 0, len(board.Blocks))
	for _, b := range board.Blocks {
		blocks = append(blocks, api.Block{
			ID:       b.ID,
			Type:     b.Type,
			Position: b.Position,
			Props:    b.Props,
		})
	}

	return api.Board{
		ID:        board.ID,
		Title:     board.Title,
		Slug:      board.Slug,
		Config:    board.Config,
		Blocks:    blocks,
		Version:   board.Version,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
}

// blocksFromAPI конвертирует блоки из API формата
// Возвращает nil для nil-слайса, чтобы сохранить семантику sparse patch
func blocksFromAPI(blocks []api.Block) []models.Block {
	if blocks == nil {
		return nil
	}

	result := make([]models.Block, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, models.Block{
			ID:       b.ID,
			Type:     b.Type,
			Position: b.Position,
			Props:    b.Props,
		})
	}
	return result
}
