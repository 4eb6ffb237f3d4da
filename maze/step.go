package maze

// Step is a two-cell move from one node to a neighbouring node.
type Step struct {
	Direction string       // Direction of the step (West, East, North, South)
	Wall      CellPosition // Separator cell crossed by the step
	To        CellPosition // Destination node
}

// candidateSteps returns the steps from pos whose destination stays inside
// [1, size-2] on both axes. Directions are always tried in the same order so a
// seeded Rand replays the same walk.
func candidateSteps(g *Grid, pos CellPosition) []Step {
	steps := make([]Step, 0, 4)
	if pos.X > 1 {
		steps = append(steps, Step{
			Direction: "West",
			Wall:      CellPosition{X: pos.X - 1, Y: pos.Y},
			To:        CellPosition{X: pos.X - 2, Y: pos.Y},
		})
	}
	if pos.X < g.width-2 {
		steps = append(steps, Step{
			Direction: "East",
			Wall:      CellPosition{X: pos.X + 1, Y: pos.Y},
			To:        CellPosition{X: pos.X + 2, Y: pos.Y},
		})
	}
	if pos.Y > 1 {
		steps = append(steps, Step{
			Direction: "North",
			Wall:      CellPosition{X: pos.X, Y: pos.Y - 1},
			To:        CellPosition{X: pos.X, Y: pos.Y - 2},
		})
	}
	if pos.Y < g.height-2 {
		steps = append(steps, Step{
			Direction: "South",
			Wall:      CellPosition{X: pos.X, Y: pos.Y + 1},
			To:        CellPosition{X: pos.X, Y: pos.Y + 2},
		})
	}
	return steps
}
