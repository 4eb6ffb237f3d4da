package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/google/uuid"
)

// MazeService generates, stores and renders mazes.
type MazeService interface {
	// Generate builds a width x height maze. A nil seed picks a time-based one.
	Generate(ctx context.Context, width, height int, seed *int64) (*dmn.Maze, error)

	// ByID returns a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// Image returns the stored maze encoded in format f.
	Image(ctx context.Context, id uuid.UUID, f render.Format) ([]byte, error)
}
