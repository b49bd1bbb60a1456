package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/boardkeeper/internal/validation"
	"github.com/iudanet/boardkeeper/pkg/api"
)

func (c *Cli) runCreate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: boardkeeper create <title> <slug>")
	}

	title, slug := args[0], args[1]

	// Валидируем локально, чтобы не гонять заведомо плохой запрос на сервер
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return err
	}

	board, err := c.apiClient.CreateBoard(ctx, api.CreateBoardRequest{
		Title: title,
		Slug:  slug,
	})
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	// Кладем созданную доску в локальный кэш и делаем ее активной
	if err := c.cache.SaveBoard(ctx, board); err != nil {
		c.logger.Warn("failed to cache created board", "error", err, "board_id", board.ID)
	}
	if err := c.meta.SaveActiveBoard(ctx, board.ID); err != nil {
		c.logger.Warn("failed to save active board", "error", err, "board_id", board.ID)
	}

	c.io.Println("Board created.")
	c.printBoard(board)

	return nil
}
