/*
Package maze generates perfect mazes with Wilson's algorithm.

A maze lives on an odd-sized grid of Wall and Path cells. Cells whose
coordinates are both odd are the nodes of the maze graph; the cells between
them are separators that become Path when they join two nodes. Generation
grows a uniform spanning tree over the nodes from the seed node (1, 1) by
repeatedly running loop-erased random walks from nodes outside the tree until
they strike it.

A finished Maze is immutable and exposes its dimensions, a read-only cell
lookup and a text form.
*/
package maze

import (
	"context"
	"fmt"
	"strings"
)

// minDimension is the smallest dimension that leaves every node a legal step.
const minDimension = 3

// Maze is a completed perfect maze.
type Maze struct {
	grid  *Grid
	nodes int
	walks int
}

type builder struct {
	grid   *Grid
	rand   Rand
	logger Logger
}

// New generates a width x height maze using a time-seeded random source.
func New(width, height int) (*Maze, error) {
	return NewWithContext(context.Background(), width, height, nil)
}

// NewWithOptions generates a width x height maze with the given options.
func NewWithOptions(width, height int, opts *Options) (*Maze, error) {
	return NewWithContext(context.Background(), width, height, opts)
}

// NewWithContext generates a width x height maze, checking ctx between walks.
// Both dimensions must be odd (ErrInvalidDimension) and at least 3
// (ErrDegenerateGrid). No maze is returned on any error.
func NewWithContext(ctx context.Context, width, height int, opts *Options) (*Maze, error) {
	o := opts.withDefaults()
	o.Logger.Info(fmt.Sprintf("Starting maze generation: %dx%d", width, height))

	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if width < minDimension || height < minDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDegenerateGrid, width, height)
	}

	b := &builder{grid: grid, rand: o.Rand, logger: o.Logger}
	nodes := b.nodes()
	b.rand.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	walks := 0
	for _, start := range nodes {
		if grid.At(start) == Path {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("maze generation interrupted after %d walks: %w", walks, err)
		}

		walk, err := b.loopErasedWalk(start)
		if err != nil {
			return nil, err
		}
		for _, pos := range walk {
			grid.Set(pos, Path)
		}
		walks++
	}

	o.Logger.Info(fmt.Sprintf("Maze generation complete: %d nodes, %d walks", len(nodes), walks))
	return &Maze{grid: grid, nodes: len(nodes), walks: walks}, nil
}

// nodes lists every node cell of the grid, column by column.
func (b *builder) nodes() []CellPosition {
	nodes := make([]CellPosition, 0, (b.grid.width/2)*(b.grid.height/2))
	for x := 1; x < b.grid.width; x += 2 {
		for y := 1; y < b.grid.height; y += 2 {
			nodes = append(nodes, CellPosition{X: x, Y: y})
		}
	}
	return nodes
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.grid.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.grid.height
}

// InBound reports whether (x, y) lies inside the maze.
func (m *Maze) InBound(x, y int) bool {
	return m.grid.InBound(x, y)
}

// Cell returns the state of the cell at (x, y). Cells outside the maze are Wall.
func (m *Maze) Cell(x, y int) CellType {
	if !m.grid.InBound(x, y) {
		return Wall
	}
	return m.grid.cells[y][x]
}

// Nodes returns the number of node cells.
func (m *Maze) Nodes() int {
	return m.nodes
}

// Walks returns the number of loop-erased walks the build ran.
func (m *Maze) Walks() int {
	return m.walks
}

// Rows returns the text form of the maze, one string per row.
func (m *Maze) Rows() []string {
	rows := make([]string, m.grid.height)
	var sb strings.Builder
	for y, row := range m.grid.cells {
		sb.Reset()
		sb.Grow(len(row))
		for _, c := range row {
			sb.WriteRune(c.Symbol())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n") + "\n"
}
