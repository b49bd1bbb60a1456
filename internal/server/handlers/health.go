package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	pinger  Pinger
	version string
}

// NewHealthHandler создает новый handler для health check
// pinger может быть nil, тогда проверяется только живость процесса
func NewHealthHandler(logger *slog.Logger, version string, pinger Pinger) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
		pinger:  pinger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health обрабатывает GET /api/v1/health
// Health check endpoint для мониторинга
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			h.logger.Error("storage ping failed", slog.Any("error", err))
			respondJSON(w, h.logger, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Version: h.version,
			})
			return
		}
	}

	respondJSON(w, h.logger, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}
