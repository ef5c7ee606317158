package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridValid(t *testing.T) {
	grid := gridOf(
		"..#",
		"...",
	)
	grid.Set(1, 0, Closed)
	grid.Set(1, 1, Path)
	grid.Set(1, 2, Start)

	assert.True(t, grid.Valid(0, 0))
	assert.True(t, grid.Valid(0, 1))
	assert.False(t, grid.Valid(0, 2), "obstacle")
	assert.False(t, grid.Valid(1, 0), "closed")
	assert.False(t, grid.Valid(1, 1), "path")
	assert.False(t, grid.Valid(1, 2), "start")
	assert.False(t, grid.Valid(-1, 0))
	assert.False(t, grid.Valid(0, -1))
	assert.False(t, grid.Valid(2, 0))
	assert.False(t, grid.Valid(0, 3))
}

func TestGridValidRaggedRows(t *testing.T) {
	grid := Grid{
		{Empty, Empty, Empty},
		{Empty},
	}
	assert.True(t, grid.Valid(0, 2))
	assert.False(t, grid.Valid(1, 2), "row 1 has a single column")
	assert.True(t, grid.InBounds(1, 0))
}

func TestGridAt(t *testing.T) {
	grid := gridOf("#.")
	state, ok := grid.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, Obstacle, state)

	_, ok = grid.At(0, 2)
	assert.False(t, ok)
}

func TestGridClone(t *testing.T) {
	grid := NewGrid(2, 2)
	clone := grid.Clone()
	clone.Set(0, 0, Obstacle)

	assert.Equal(t, Empty, grid[0][0], "clone must not alias the source")
	assert.Nil(t, Grid(nil).Clone())
}

func TestGridCount(t *testing.T) {
	grid := gridOf("#.#", "...")
	assert.Equal(t, 2, grid.Count(Obstacle))
	assert.Equal(t, 4, grid.Count(Empty))
	assert.Equal(t, 2, grid.Rows())
}

func TestCellStateText(t *testing.T) {
	for _, state := range []CellState{Empty, Obstacle, Closed, Path, Start, Finish} {
		parsed, err := ParseCellState(state.String())
		require.NoError(t, err)
		assert.Equal(t, state, parsed)
	}
	_, err := ParseCellState("lava")
	assert.Error(t, err)
	assert.Equal(t, "CellState(42)", CellState(42).String())

	var state CellState
	require.NoError(t, state.UnmarshalText([]byte("finish")))
	assert.Equal(t, Finish, state)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(3, 3, 3, 3))
	assert.Equal(t, 9, Manhattan(0, 0, 4, 5))
	assert.Equal(t, 9, Manhattan(4, 5, 0, 0))
	assert.Equal(t, 4, Manhattan(-1, 2, 1, 0))
}
