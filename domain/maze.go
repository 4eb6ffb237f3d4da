// Package domain holds the records the service persists and serves.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// ErrMalformedRows indicates stored rows that do not match the recorded dimensions.
var ErrMalformedRows = errors.New("maze rows do not match dimensions")

// Maze is a stored snapshot of a generated maze.
type Maze struct {
	ID        uuid.UUID // Unique identifier of the maze
	Width     int       // Number of columns
	Height    int       // Number of rows
	Seed      int64     // Seed of the random source the maze was built with
	Walks     int       // Loop-erased walks the build ran
	Rows      []string  // Text form, one string per row
	CreatedAt time.Time // Generation time
}

// NewMaze snapshots a generated maze under a fresh ID.
func NewMaze(m *maze.Maze, seed int64) *Maze {
	return &Maze{
		ID:        uuid.New(),
		Width:     m.Width(),
		Height:    m.Height(),
		Seed:      seed,
		Walks:     m.Walks(),
		Rows:      m.Rows(),
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks that Rows has the recorded shape and only maze symbols.
func (m *Maze) Validate() error {
	if len(m.Rows) != m.Height {
		return ErrMalformedRows
	}
	for _, row := range m.Rows {
		if len(row) != m.Width {
			return ErrMalformedRows
		}
		for i := 0; i < len(row); i++ {
			if row[i] != maze.WallSymbol && row[i] != maze.PathSymbol {
				return ErrMalformedRows
			}
		}
	}
	return nil
}

// View returns a read-only cell view of the stored maze.
func (m *Maze) View() *View {
	return &View{record: m}
}

// View adapts a stored maze to the width/height/cell lookup used for rendering.
type View struct {
	record *Maze
}

// Width returns the number of columns.
func (v *View) Width() int {
	return v.record.Width
}

// Height returns the number of rows.
func (v *View) Height() int {
	return v.record.Height
}

// Cell returns the state of the cell at (x, y). Cells outside the maze are Wall.
func (v *View) Cell(x, y int) maze.CellType {
	if y < 0 || y >= len(v.record.Rows) || x < 0 || x >= len(v.record.Rows[y]) {
		return maze.Wall
	}
	if v.record.Rows[y][x] == maze.PathSymbol {
		return maze.Path
	}
	return maze.Wall
}
