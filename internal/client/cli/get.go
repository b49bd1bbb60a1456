package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	boardID, err := c.resolveBoardID(ctx, args)
	if err != nil {
		return err
	}

	board, err := c.apiClient.GetBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to get board %s: %w", boardID, err)
	}

	// Обновляем локальную копию
	if err := c.cache.SaveBoard(ctx, board); err != nil {
		c.logger.Warn("failed to cache board", "error", err, "board_id", board.ID)
	}

	c.printBoard(board)

	return nil
}
