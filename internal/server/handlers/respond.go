package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/boardkeeper/pkg/api"
)

// respondJSON пишет JSON-ответ с указанным статусом
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// respondError пишет ошибку в JSON-формате {"error": {"message": ...}}
func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, api.ErrorResponse{
		Error: api.ErrorDetail{Message: message},
	})
}
