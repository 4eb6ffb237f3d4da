package maze

// CellType is the state of a single grid cell.
type CellType uint8

const (
	Wall CellType = iota // Wall is the initial state of every cell.
	Path                 // Path marks a cell carved into the maze.
)

// Symbols used by the text form of a maze.
const (
	WallSymbol = '#'
	PathSymbol = '.'
)

// String returns the name of the cell type.
func (c CellType) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}

// Symbol returns the rune used for the cell in the text form of a maze.
func (c CellType) Symbol() rune {
	if c == Path {
		return PathSymbol
	}
	return WallSymbol
}

// CellPosition represents the position of a cell in the grid.
type CellPosition struct {
	X int // Column index of the cell
	Y int // Row index of the cell
}

// IsNode reports whether the position is a node cell, i.e. both coordinates are odd.
func (p CellPosition) IsNode() bool {
	return p.X%2 == 1 && p.Y%2 == 1
}
