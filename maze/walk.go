package maze

import "fmt"

// loopErasedWalk walks randomly from start, two cells at a time, until it
// lands on a cell that is already Path, then erases the loops of the walk.
// The returned cells alternate between nodes and separators and end on the
// Path cell that stopped the walk.
func (b *builder) loopErasedWalk(start CellPosition) ([]CellPosition, error) {
	b.logger.Debug(fmt.Sprintf("Starting random walk at: (%d, %d)", start.X, start.Y))

	walk := []CellPosition{start}
	current := start
	for b.grid.At(current) == Wall {
		steps := candidateSteps(b.grid, current)
		if len(steps) == 0 {
			return nil, fmt.Errorf("%w: no step out of (%d, %d) in a %dx%d grid",
				ErrDegenerateGrid, current.X, current.Y, b.grid.width, b.grid.height)
		}

		step := steps[b.rand.Intn(len(steps))]
		walk = append(walk, step.Wall, step.To)
		current = step.To
	}

	b.logger.Debug(fmt.Sprintf("Random walk generated: %d cells", len(walk)))
	erased := eraseLoops(walk)
	b.logger.Debug(fmt.Sprintf("Loop-erased walk generated: %d cells", len(erased)))
	return erased, nil
}

// eraseLoops removes every loop from walk. Scanning left to right, each cell
// jumps to its furthest later occurrence, dropping the cells in between. The
// final cell is never a jump target.
//
// Cells after a jump are never touched, so the furthest occurrence of a cell
// is its last index in the raw walk; one pass over a last-seen index
// keeps this linear in the walk length.
func eraseLoops(walk []CellPosition) []CellPosition {
	if len(walk) == 0 {
		return nil
	}

	last := make(map[CellPosition]int, len(walk))
	for i, pos := range walk[:len(walk)-1] {
		last[pos] = i
	}

	erased := make([]CellPosition, 0, len(walk))
	for i := 0; i < len(walk); i++ {
		if j, ok := last[walk[i]]; ok && j > i {
			i = j
		}
		erased = append(erased, walk[i])
	}
	return erased
}
