package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenListOrdersByF(t *testing.T) {
	var open OpenList
	open.Push(Node{X: 0, Y: 0, G: 3, H: 4})
	open.Push(Node{X: 1, Y: 0, G: 1, H: 1})
	open.Push(Node{X: 2, Y: 0, G: 2, H: 3})

	var fs []int
	for open.Len() > 0 {
		node, ok := open.PopMin()
		require.True(t, ok)
		fs = append(fs, node.F())
	}
	assert.Equal(t, []int{2, 5, 7}, fs)
}

func TestOpenListTieBreakMostRecentFirst(t *testing.T) {
	var open OpenList
	open.Push(Node{X: 0, Y: 0, G: 1, H: 4})
	open.Push(Node{X: 1, Y: 1, G: 2, H: 3})
	open.Push(Node{X: 9, Y: 9, G: 0, H: 9})
	open.Push(Node{X: 2, Y: 2, G: 5, H: 0})

	var order []Point
	for open.Len() > 0 {
		node, _ := open.PopMin()
		order = append(order, node.Point())
	}
	assert.Equal(t, []Point{{2, 2}, {1, 1}, {0, 0}, {9, 9}}, order)
}

func TestOpenListTieBreakInterleaved(t *testing.T) {
	var open OpenList
	open.Push(Node{X: 0, Y: 0, G: 0, H: 5})
	open.Push(Node{X: 0, Y: 1, G: 0, H: 5})

	node, _ := open.PopMin()
	assert.Equal(t, Point{0, 1}, node.Point())

	open.Push(Node{X: 0, Y: 2, G: 0, H: 5})
	node, _ = open.PopMin()
	assert.Equal(t, Point{0, 2}, node.Point())
	node, _ = open.PopMin()
	assert.Equal(t, Point{0, 0}, node.Point())
}

func TestOpenListPopEmpty(t *testing.T) {
	var open OpenList
	_, ok := open.PopMin()
	assert.False(t, ok)
}

func TestExpandOrderAndMarking(t *testing.T) {
	grid := gridOf(
		"...",
		"...",
		"...",
	)
	var open OpenList
	cameFrom := map[Point]Point{}
	center := Node{X: 1, Y: 1, G: 2, H: 0}

	pushed := expand(center, &open, grid, Point{X: 1, Y: 1}, cameFrom)
	require.Equal(t, 4, pushed)

	for _, p := range []Point{{0, 1}, {1, 0}, {2, 1}, {1, 2}} {
		assert.Equal(t, Closed, grid[p.X][p.Y], "neighbor %v closed on insertion", p)
		assert.Equal(t, Point{1, 1}, cameFrom[p])
	}
	assert.Equal(t, Empty, grid[1][1], "expanded node itself is not touched")

	// all four share f = 3 + 1, so they come back in reverse push order
	var order []Point
	for open.Len() > 0 {
		node, _ := open.PopMin()
		assert.Equal(t, 3, node.G)
		order = append(order, node.Point())
	}
	assert.Equal(t, []Point{{1, 2}, {2, 1}, {1, 0}, {0, 1}}, order)
}

func TestExpandSkipsInvalid(t *testing.T) {
	grid := gridOf(
		".#",
		"..",
	)
	grid.Set(1, 0, Closed)
	var open OpenList
	pushed := expand(Node{X: 0, Y: 0}, &open, grid, Point{X: 1, Y: 1}, map[Point]Point{})
	assert.Zero(t, pushed)
	assert.Zero(t, open.Len())
}
