package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/boardkeeper/internal/client/iocli"
	"github.com/iudanet/boardkeeper/internal/client/storage"
	"github.com/iudanet/boardkeeper/internal/models"
	"github.com/iudanet/boardkeeper/pkg/api"
)

// ErrUnknownCommand возвращается для нераспознанной команды
var ErrUnknownCommand = errors.New("unknown command")

//go:generate moq -out boardsapi_mock.go . BoardsAPI

// BoardsAPI определяет операции с сервером досок
type BoardsAPI interface {
	CreateBoard(ctx context.Context, req api.CreateBoardRequest) (*models.Board, error)
	GetBoard(ctx context.Context, boardID string) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	UpdateBoard(ctx context.Context, boardID string, patch models.Patch) (*models.Board, error)
	DeleteBoard(ctx context.Context, boardID string) error
}

type Cli struct {
	io        iocli.IO
	apiClient BoardsAPI
	cache     storage.BoardCache
	meta      storage.MetadataStorage
	logger    *slog.Logger
}

func New(io iocli.IO, apiClient BoardsAPI, cache storage.BoardCache, meta storage.MetadataStorage, logger *slog.Logger) *Cli {
	return &Cli{
		io:        io,
		apiClient: apiClient,
		cache:     cache,
		meta:      meta,
		logger:    logger,
	}
}

// Run выполняет команду и возвращает ошибку для вывода в main
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "create":
		return c.runCreate(ctx, args)
	case "list":
		return c.runList(ctx)
	case "get":
		return c.runGet(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func PrintUsage() {
	fmt.Println("BoardKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  boardkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: boardkeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  create <title> <slug>   Create a new board")
	fmt.Println("  list                    List boards")
	fmt.Println("  get [id]                Show board details")
	fmt.Println("  edit [id]               Edit a board interactively with autosave")
	fmt.Println("  delete <id>             Delete a board")
	fmt.Println()
	fmt.Println("When [id] is omitted, the last edited board is used.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  boardkeeper create 'Launch plan' launch-plan")
	fmt.Println("  boardkeeper list")
	fmt.Println("  boardkeeper edit b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  boardkeeper --server https://example.com list")
}

// resolveBoardID возвращает ID из аргументов или последнюю активную доску
func (c *Cli) resolveBoardID(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	boardID, err := c.meta.GetActiveBoard(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoActiveBoard) {
			return "", fmt.Errorf("no board selected. Pass a board id or run 'boardkeeper edit <id>' first")
		}
		return "", fmt.Errorf("failed to get active board: %w", err)
	}

	return boardID, nil
}

// printBoard выводит доску в консоль
func (c *Cli) printBoard(board *models.Board) {
	c.io.Println()
	c.io.Printf("Title:   %s\n", board.Title)
	c.io.Printf("Slug:    %s\n", board.Slug)
	c.io.Printf("ID:      %s\n", board.ID)
	c.io.Printf("Version: %d\n", board.Version)
	c.io.Printf("Updated: %s\n", board.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(board.Blocks) == 0 {
		c.io.Println("Blocks:  (none)")
		return
	}

	c.io.Printf("Blocks:  %d\n", len(board.Blocks))
	for _, block := range board.Blocks {
		c.io.Printf("  %d. [%s] %s\n", block.Position+1, block.Type, block.ID)
	}
}
