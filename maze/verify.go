package maze

import "fmt"

var offsets = [4]CellPosition{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Verify checks that the Path cells form a spanning tree over the nodes:
// every node is carved, every carved separator joins two nodes, the carved
// cells are 4-connected, and there is exactly one separator fewer than nodes.
func (m *Maze) Verify() error {
	g := m.grid
	nodes, separators, carved := 0, 0, 0

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			pos := CellPosition{X: x, Y: y}
			c := g.At(pos)
			if c == Path {
				carved++
			}

			switch {
			case pos.IsNode():
				if c != Path {
					return fmt.Errorf("%w: node (%d, %d) is not carved", ErrNotPerfect, x, y)
				}
				nodes++
			case c != Path:
			case x%2 == 0 && y%2 == 0:
				return fmt.Errorf("%w: corner cell (%d, %d) is carved", ErrNotPerfect, x, y)
			default:
				if !m.joinsNodes(pos) {
					return fmt.Errorf("%w: separator (%d, %d) does not join two nodes", ErrNotPerfect, x, y)
				}
				separators++
			}
		}
	}

	if nodes == 0 {
		return nil
	}
	if separators != nodes-1 {
		return fmt.Errorf("%w: %d separators for %d nodes", ErrNotPerfect, separators, nodes)
	}
	if reached := m.reachable(seed); reached != carved {
		return fmt.Errorf("%w: %d of %d carved cells reachable from the seed", ErrNotPerfect, reached, carved)
	}
	return nil
}

// joinsNodes reports whether the separator at pos sits between two carved nodes.
func (m *Maze) joinsNodes(pos CellPosition) bool {
	a, b := pos, pos
	if pos.X%2 == 0 {
		a.X, b.X = pos.X-1, pos.X+1
	} else {
		a.Y, b.Y = pos.Y-1, pos.Y+1
	}
	return m.Cell(a.X, a.Y) == Path && m.Cell(b.X, b.Y) == Path
}

// reachable counts the Path cells 4-connected to start.
func (m *Maze) reachable(start CellPosition) int {
	if m.Cell(start.X, start.Y) != Path {
		return 0
	}

	seen := map[CellPosition]struct{}{start: {}}
	stack := []CellPosition{start}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range offsets {
			next := CellPosition{X: cell.X + d.X, Y: cell.Y + d.Y}
			if m.Cell(next.X, next.Y) != Path {
				continue
			}
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}
