package api

import (
	"encoding/json"
	"time"
)

// Block представляет один блок контента на доске
type Block struct {
	Props    map[string]any `json:"props,omitempty"` // произвольные свойства блока (текст, размеры, стили)
	ID       string         `json:"id"`
	Type     string         `json:"type"` // тип блока (например, "text", "image", "embed")
	Position int            `json:"position"`
}

// Board представляет доску в API формате
type Board struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Config    map[string]any `json:"config"`
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Blocks    []Block        `json:"blocks"`
	Version   int64          `json:"version"`
}

// CreateBoardRequest представляет запрос на создание доски
type CreateBoardRequest struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// UpdateBoardRequest представляет sparse patch для доски.
// Pointer-поля позволяют отличить "не передано" (nil) от "установить в пустое".
// Blocks и Config передаются целиком, если передаются.
type UpdateBoardRequest struct {
	Title  *string        `json:"title,omitempty"`
	Slug   *string        `json:"slug,omitempty"`
	Config map[string]any `json:"config,omitempty"`
	Blocks []Block        `json:"blocks,omitempty"`
}

// ListBoardsResponse представляет ответ со списком досок
type ListBoardsResponse struct {
	Boards []Board `json:"boards"`
}

// ErrorDetail содержит описание ошибки
type ErrorDetail struct {
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой: {"error": {"message": ..., "details": ...}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
