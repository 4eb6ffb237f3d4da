package maze

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos  []string
	debugs []string
}

func (l *recordingLogger) Info(msg string)  { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Debug(msg string) { l.debugs = append(l.debugs, msg) }

func seeded(s int64) *Options {
	return &Options{Rand: rand.New(rand.NewSource(s))}
}

// separators counts carved cells that are not nodes.
func separators(m *Maze) int {
	n := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Cell(x, y) == Path && !p(x, y).IsNode() {
				n++
			}
		}
	}
	return n
}

func TestNew(t *testing.T) {
	t.Run("Rejects even dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{4, 5}, {5, 4}, {4, 4}, {2, 1}, {0, 0}} {
			m, err := NewWithOptions(dims[0], dims[1], seeded(1))
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
			assert.Nil(t, m)
		}
	})

	t.Run("Rejects grids too small to walk", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}} {
			m, err := NewWithOptions(dims[0], dims[1], seeded(1))
			assert.ErrorIs(t, err, ErrDegenerateGrid, "dims %v", dims)
			assert.Nil(t, m)
		}
	})

	t.Run("Three by three is the seed alone", func(t *testing.T) {
		m, err := NewWithOptions(3, 3, seeded(1))
		require.NoError(t, err)
		assert.Equal(t, 1, m.Nodes())
		assert.Equal(t, 0, m.Walks())
		assert.Equal(t, []string{"###", "#.#", "###"}, m.Rows())
	})

	t.Run("Five by five joins four nodes with three separators", func(t *testing.T) {
		for s := int64(0); s < 50; s++ {
			m, err := NewWithOptions(5, 5, seeded(s))
			require.NoError(t, err)
			assert.Equal(t, 4, m.Nodes())
			assert.Equal(t, 3, separators(m))
			assert.NoError(t, m.Verify())
		}
	})

	t.Run("Every size yields a perfect maze", func(t *testing.T) {
		for _, dims := range [][2]int{{3, 5}, {5, 3}, {3, 21}, {21, 3}, {7, 9}, {31, 31}, {61, 35}} {
			m, err := NewWithOptions(dims[0], dims[1], seeded(int64(dims[0]*dims[1])))
			require.NoError(t, err, "dims %v", dims)
			assert.Equal(t, (dims[0]/2)*(dims[1]/2), m.Nodes())
			assert.Equal(t, m.Nodes()-1, separators(m))
			assert.NoError(t, m.Verify(), "dims %v", dims)

			for x := 1; x < m.Width(); x += 2 {
				for y := 1; y < m.Height(); y += 2 {
					assert.Equal(t, Path, m.Cell(x, y))
				}
			}
		}
	})

	t.Run("Default options still produce a perfect maze", func(t *testing.T) {
		m, err := New(21, 15)
		require.NoError(t, err)
		assert.NoError(t, m.Verify())
	})
}

func TestNewIsDeterministic(t *testing.T) {
	first, err := NewWithOptions(41, 29, seeded(42))
	require.NoError(t, err)
	second, err := NewWithOptions(41, 29, seeded(42))
	require.NoError(t, err)
	other, err := NewWithOptions(41, 29, seeded(43))
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first.Walks(), second.Walks())
	assert.NotEqual(t, first.String(), other.String())
}

func TestNewWithContext(t *testing.T) {
	t.Run("Cancelled build returns no maze", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m, err := NewWithContext(ctx, 21, 21, seeded(1))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, m)
	})

	t.Run("Build without walks ignores the context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m, err := NewWithContext(ctx, 3, 3, seeded(1))
		require.NoError(t, err)
		assert.Equal(t, 0, m.Walks())
	})
}

func TestNewLogsProgress(t *testing.T) {
	logger := &recordingLogger{}
	m, err := NewWithOptions(9, 9, &Options{Rand: rand.New(rand.NewSource(7)), Logger: logger})
	require.NoError(t, err)

	require.Len(t, logger.infos, 2)
	assert.Contains(t, logger.infos[0], "Starting maze generation")
	assert.Contains(t, logger.infos[1], "Maze generation complete")
	assert.Len(t, logger.debugs, 3*m.Walks())
}

func TestMazeAccessors(t *testing.T) {
	m, err := NewWithOptions(7, 5, seeded(3))
	require.NoError(t, err)

	assert.Equal(t, 7, m.Width())
	assert.Equal(t, 5, m.Height())
	assert.True(t, m.InBound(6, 4))
	assert.False(t, m.InBound(7, 4))
	assert.Equal(t, Wall, m.Cell(-1, 0))
	assert.Equal(t, Wall, m.Cell(0, 5))

	rows := m.Rows()
	require.Len(t, rows, 5)
	for y, row := range rows {
		require.Len(t, row, 7)
		for x, r := range row {
			assert.Equal(t, m.Cell(x, y).Symbol(), r)
		}
	}
	assert.Equal(t, strings.Join(rows, "\n")+"\n", m.String())
}

func TestCellType(t *testing.T) {
	assert.Equal(t, "Wall", Wall.String())
	assert.Equal(t, "Path", Path.String())
	assert.Equal(t, "Unknown", CellType(9).String())
	assert.Equal(t, WallSymbol, Wall.Symbol())
	assert.Equal(t, PathSymbol, Path.Symbol())
}
