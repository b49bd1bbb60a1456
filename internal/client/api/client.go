package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/boardkeeper/internal/models"
	"github.com/iudanet/boardkeeper/pkg/api"
)

// DefaultTimeout — таймаут одного запроса, независимый от retry/backoff
const DefaultTimeout = 25 * time.Second

// Client представляет HTTP клиент для работы с boards API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// CreateBoard создает новую доску
func (c *Client) CreateBoard(ctx context.Context, req api.CreateBoardRequest) (*models.Board, error) {
	var resp api.Board
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/boards", req, &resp); err != nil {
		return nil, fmt.Errorf("create board request failed: %w", err)
	}
	return boardFromAPI(&resp), nil
}

// GetBoard получает доску по ID
func (c *Client) GetBoard(ctx context.Context, boardID string) (*models.Board, error) {
	var resp api.Board
	path := fmt.Sprintf("/api/v1/boards/%s", url.PathEscape(boardID))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get board request failed: %w", err)
	}
	return boardFromAPI(&resp), nil
}

// ListBoards возвращает все доски
func (c *Client) ListBoards(ctx context.Context) ([]*models.Board, error) {
	var resp api.ListBoardsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/boards", nil, &resp); err != nil {
		return nil, fmt.Errorf("list boards request failed: %w", err)
	}
	boards := make([]*models.Board, 0, len(resp.Boards))
	for i := range resp.Boards {
		boards = append(boards, boardFromAPI(&resp.Boards[i]))
	}
	return boards, nil
}

// UpdateBoard отправляет sparse patch изменённых полей и возвращает
// каноническое серверное состояние доски. Реализует save.Transport.
func (c *Client) UpdateBoard(ctx context.Context, boardID string, patch models.Patch) (*models.Board, error) {
	var resp api.Board
	path := fmt.Sprintf("/api/v1/boards/%s", url.PathEscape(boardID))
	if err := c.doRequest(ctx, http.MethodPatch, path, patch, &resp); err != nil {
		return nil, fmt.Errorf("update board request failed: %w", err)
	}
	return boardFromAPI(&resp), nil
}

// DeleteBoard удаляет доску
func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	path := fmt.Sprintf("/api/v1/boards/%s", url.PathEscape(boardID))
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete board request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// таймаут помечаем отдельно: вызывающий может захотеть
		// отличить его от отказа сервера
		if isTimeout(err) {
			return &Error{Message: err.Error(), Timeout: true}
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			apiErr.Message = errResp.Error.Message
			apiErr.Details = errResp.Error.Details
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func boardFromAPI(b *api.Board) *models.Board {
	blocks := make([]models.Block, 0, len(b.Blocks))
	for _, blk := range b.Blocks {
		blocks = append(blocks, models.Block{
			ID:       blk.ID,
			Type:     blk.Type,
			Position: blk.Position,
			Props:    blk.Props,
		})
	}
	return &models.Board{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Config:    b.Config,
		Blocks:    blocks,
		Version:   b.Version,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
