package maze

import "fmt"

// seed is the node every maze grows from.
var seed = CellPosition{X: 1, Y: 1}

// Grid holds the cell states of a maze under construction.
// Cells are stored row-major: cells[y][x].
type Grid struct {
	width  int
	height int
	cells  [][]CellType
}

// NewGrid returns a width x height grid of walls with the seed node at (1, 1) carved.
// Both dimensions must be odd and positive.
func NewGrid(width, height int) (*Grid, error) {
	if !validDimension(width) || !validDimension(height) {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	cells := make([][]CellType, height)
	for y := range cells {
		cells[y] = make([]CellType, width)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
	if g.InBound(seed.X, seed.Y) {
		g.Set(seed, Path)
	}
	return g, nil
}

func validDimension(n int) bool {
	return n >= 1 && n%2 == 1
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBound reports whether (x, y) lies inside the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the state of the cell at pos.
func (g *Grid) At(pos CellPosition) CellType {
	return g.cells[pos.Y][pos.X]
}

// Set changes the state of the cell at pos.
func (g *Grid) Set(pos CellPosition, c CellType) {
	g.cells[pos.Y][pos.X] = c
}
