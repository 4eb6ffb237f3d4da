package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directions(steps []Step) []string {
	dirs := make([]string, 0, len(steps))
	for _, s := range steps {
		dirs = append(dirs, s.Direction)
	}
	return dirs
}

func TestCandidateSteps(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		pos    CellPosition
		want   []string
	}{
		{name: "Top left corner", width: 5, height: 5, pos: CellPosition{X: 1, Y: 1}, want: []string{"East", "South"}},
		{name: "Bottom right corner", width: 5, height: 5, pos: CellPosition{X: 3, Y: 3}, want: []string{"West", "North"}},
		{name: "Interior node", width: 7, height: 7, pos: CellPosition{X: 3, Y: 3}, want: []string{"West", "East", "North", "South"}},
		{name: "Top edge node", width: 7, height: 7, pos: CellPosition{X: 3, Y: 1}, want: []string{"West", "East", "South"}},
		{name: "Single column", width: 3, height: 5, pos: CellPosition{X: 1, Y: 1}, want: []string{"South"}},
		{name: "Single node", width: 3, height: 3, pos: CellPosition{X: 1, Y: 1}, want: []string{}},
		{name: "Degenerate grid", width: 1, height: 1, pos: CellPosition{X: 0, Y: 0}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.width, tt.height)
			require.NoError(t, err)

			steps := candidateSteps(g, tt.pos)
			assert.Equal(t, tt.want, directions(steps))
		})
	}
}

func TestCandidateStepsShape(t *testing.T) {
	g, err := NewGrid(9, 7)
	require.NoError(t, err)

	for x := 1; x < g.Width(); x += 2 {
		for y := 1; y < g.Height(); y += 2 {
			pos := CellPosition{X: x, Y: y}
			steps := candidateSteps(g, pos)
			assert.GreaterOrEqual(t, len(steps), 2)
			assert.LessOrEqual(t, len(steps), 4)

			for _, s := range steps {
				assert.True(t, s.To.IsNode(), "destination %v must be a node", s.To)
				assert.False(t, s.Wall.IsNode(), "separator %v must not be a node", s.Wall)
				assert.Equal(t, CellPosition{X: (pos.X + s.To.X) / 2, Y: (pos.Y + s.To.Y) / 2}, s.Wall)
				assert.True(t, s.To.X >= 1 && s.To.X <= g.Width()-2)
				assert.True(t, s.To.Y >= 1 && s.To.Y <= g.Height()-2)
			}
		}
	}
}
