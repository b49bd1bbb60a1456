package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/iudanet/boardkeeper/internal/client/save"
	"github.com/iudanet/boardkeeper/internal/client/storage"
	"github.com/iudanet/boardkeeper/internal/models"
)

// cachingTransport передает PATCH на сервер и кладет подтвержденную
// сервером копию доски в локальный кэш. Реализует save.Transport.
type cachingTransport struct {
	api    BoardsAPI
	cache  storage.BoardCache
	logger *slog.Logger
}

func (t *cachingTransport) UpdateBoard(ctx context.Context, boardID string, patch save.Patch) (*models.Board, error) {
	board, err := t.api.UpdateBoard(ctx, boardID, patch)
	if err != nil {
		return nil, err
	}

	// Ошибка кэша не должна ломать успешное сохранение
	if cerr := t.cache.SaveBoard(ctx, board); cerr != nil {
		t.logger.Warn("failed to cache saved board", "error", cerr, "board_id", boardID)
	}

	return board, nil
}

// runEdit запускает интерактивный редактор доски с автосохранением.
// Изменения полей сливаются в pending patch и отправляются на сервер
// после паузы в вводе; flush форсирует отправку немедленно.
func (c *Cli) runEdit(ctx context.Context, args []string) error {
	boardID, err := c.resolveBoardID(ctx, args)
	if err != nil {
		return err
	}

	board, err := c.apiClient.GetBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to get board %s: %w", boardID, err)
	}

	if err := c.meta.SaveActiveBoard(ctx, board.ID); err != nil {
		c.logger.Warn("failed to save active board", "error", err, "board_id", board.ID)
	}

	transport := &cachingTransport{api: c.apiClient, cache: c.cache, logger: c.logger}
	svc := save.NewService(transport, c.logger, save.Config{})
	defer func() {
		if cerr := svc.Close(); cerr != nil {
			c.logger.Warn("failed to close save service", "error", cerr)
		}
	}()

	svc.InitializeState(board)

	// Печатаем переходы статуса сохранения по мере их наступления
	unsubscribe := svc.Subscribe(c.saveStatusPrinter())
	defer unsubscribe()

	c.io.Printf("Editing %q (%s)\n", board.Title, board.ID)
	c.io.Println("Commands: <field>=<value>, status, flush, quit. Fields: title, slug, config.<key>.")

	config := cloneConfig(board.Config)

	for {
		line, err := c.io.ReadInput("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return c.finishEdit(ctx, svc)
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch line {
		case "":
			continue
		case "quit", "q", "exit":
			return c.finishEdit(ctx, svc)
		case "status":
			c.printSaveState(svc.State())
			continue
		case "flush", "save":
			if _, err := svc.Flush(ctx); err != nil {
				c.io.Printf("save failed: %v\n", err)
			}
			continue
		case "help":
			c.io.Println("Commands: <field>=<value>, status, flush, quit. Fields: title, slug, config.<key>.")
			continue
		}

		patch, err := parseEditLine(line, config)
		if err != nil {
			c.io.Printf("error: %v\n", err)
			continue
		}

		if err := svc.QueueChange(patch); err != nil {
			return fmt.Errorf("failed to queue change: %w", err)
		}
	}
}

// finishEdit дожидается отправки несохраненных изменений перед выходом.
// Попытку в полете нельзя обрывать через Close и нельзя "флашить":
// Flush при активном сохранении откладывается и возвращает (nil, nil).
// Поэтому сначала ждем завершения попытки, затем досылаем остаток.
func (c *Cli) finishEdit(ctx context.Context, svc save.Service) error {
	announced := false
	announce := func() {
		if !announced {
			c.io.Println("Flushing unsaved changes...")
			announced = true
		}
	}

	for {
		st := svc.State()

		if st.Status == save.StatusSaving {
			announce()
			if err := waitSaveSettled(ctx, svc); err != nil {
				return fmt.Errorf("failed to save changes: %w", err)
			}
			continue
		}

		if !st.HasUnsavedChanges {
			return nil
		}

		announce()
		if _, err := svc.Flush(ctx); err != nil {
			return fmt.Errorf("failed to save changes: %w", err)
		}
	}
}

// waitSaveSettled блокируется, пока статус сохранения не покинет saving.
// Subscribe сразу воспроизводит текущее состояние, поэтому завершившаяся
// между проверкой и подпиской попытка не теряется.
func waitSaveSettled(ctx context.Context, svc save.Service) error {
	settled := make(chan struct{}, 1)
	unsubscribe := svc.Subscribe(func(st save.State) {
		if st.Status != save.StatusSaving {
			select {
			case settled <- struct{}{}:
			default:
			}
		}
	})
	defer unsubscribe()

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// parseEditLine разбирает строку вида field=value в patch.
// config.<key> редактирует одно поле конфига; config передается на сервер
// целиком, поэтому локальная копия поддерживается между вызовами.
func parseEditLine(line string, config map[string]any) (save.Patch, error) {
	field, value, ok := strings.Cut(line, "=")
	if !ok {
		return nil, fmt.Errorf("expected <field>=<value>, got %q", line)
	}

	field = strings.TrimSpace(field)
	value = strings.TrimSpace(value)

	switch {
	case field == "title":
		return save.Patch{"title": value}, nil
	case field == "slug":
		return save.Patch{"slug": value}, nil
	case strings.HasPrefix(field, "config."):
		key := strings.TrimPrefix(field, "config.")
		if key == "" {
			return nil, fmt.Errorf("config key is required, e.g. config.theme=dark")
		}
		config[key] = value
		return save.Patch{"config": cloneConfig(config)}, nil
	default:
		return nil, fmt.Errorf("unknown field %q, use title, slug or config.<key>", field)
	}
}

// saveStatusPrinter возвращает подписчика, печатающего смену статуса
func (c *Cli) saveStatusPrinter() save.Listener {
	var lastStatus save.Status

	return func(st save.State) {
		if st.Status == lastStatus {
			return
		}
		lastStatus = st.Status

		switch st.Status {
		case save.StatusSaving:
			c.io.Println("[saving...]")
		case save.StatusSaved:
			c.io.Printf("[saved at %s]\n", st.LastSavedAt.Format("15:04:05"))
		case save.StatusError:
			c.io.Printf("[save error: %v]\n", st.Err)
		case save.StatusIdle:
			// Нет смысла сообщать о возврате в idle
		}
	}
}

func (c *Cli) printSaveState(st save.State) {
	c.io.Printf("status: %s\n", st.Status)
	if st.HasUnsavedChanges {
		c.io.Println("unsaved changes: yes")
	} else {
		c.io.Println("unsaved changes: no")
	}
	if !st.LastSavedAt.IsZero() {
		c.io.Printf("last saved: %s\n", st.LastSavedAt.Format("15:04:05"))
	}
	if st.Err != nil {
		c.io.Printf("last error: %v\n", st.Err)
	}
}

func cloneConfig(config map[string]any) map[string]any {
	clone := make(map[string]any, len(config))
	for k, v := range config {
		clone[k] = v
	}
	return clone
}
