package maze

import "errors"

var (
	// ErrInvalidDimension indicates a requested dimension is even or not positive.
	ErrInvalidDimension = errors.New("maze: dimensions must be odd and positive")
	// ErrDegenerateGrid indicates a grid too small for a random walk to take a step.
	ErrDegenerateGrid = errors.New("maze: grid dimensions must be at least 3")
	// ErrNotPerfect indicates the carved cells do not form a spanning tree over the nodes.
	ErrNotPerfect = errors.New("maze: not a perfect maze")
)
