package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or replaces a maze in the repository.
	Save(ctx context.Context, maze *dmn.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns ErrNotFound if no maze has the ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
}
