package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	boards, err := c.apiClient.ListBoards(ctx)
	if err != nil {
		// Сервер недоступен — показываем локальный кэш
		c.logger.Warn("failed to list boards from server, falling back to cache", "error", err)

		cached, cacheErr := c.cache.ListBoards(ctx)
		if cacheErr != nil {
			return fmt.Errorf("failed to list boards: %w", err)
		}

		c.io.Println("Server unavailable, showing cached boards:")
		boards = cached
	}

	if len(boards) == 0 {
		c.io.Println("No boards found.")
		c.io.Println()
		c.io.Println("Use 'boardkeeper create <title> <slug>' to create your first board.")
		return nil
	}

	c.io.Printf("Found %d board(s):\n", len(boards))
	c.io.Println()

	for i, board := range boards {
		c.io.Printf("%d. %s\n", i+1, board.Title)
		c.io.Printf("   ID:   %s\n", board.ID)
		c.io.Printf("   Slug: %s\n", board.Slug)
		c.io.Println()
	}

	return nil
}
