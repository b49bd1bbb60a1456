package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/boardkeeper/internal/client/storage"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing board ID. Usage: boardkeeper delete <id>")
	}

	boardID := args[0]

	if err := c.apiClient.DeleteBoard(ctx, boardID); err != nil {
		return fmt.Errorf("failed to delete board %s: %w", boardID, err)
	}

	// Убираем доску из локального кэша
	if err := c.cache.DeleteBoard(ctx, boardID); err != nil && !errors.Is(err, storage.ErrBoardNotFound) {
		c.logger.Warn("failed to delete cached board", "error", err, "board_id", boardID)
	}

	// Если удалили активную доску — сбрасываем выбор
	activeID, err := c.meta.GetActiveBoard(ctx)
	if err == nil && activeID == boardID {
		if err := c.meta.ClearActiveBoard(ctx); err != nil {
			c.logger.Warn("failed to clear active board", "error", err)
		}
	}

	c.io.Printf("Board %s deleted.\n", boardID)

	return nil
}
