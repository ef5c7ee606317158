package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath(t *testing.T) {
	cameFrom := map[string]string{"b": "a", "c": "b", "d": "c"}

	path, ok := ReconstructPath(cameFrom, "d", "a")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)

	path, ok = ReconstructPath(cameFrom, "a", "a")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, path)
}

func TestReconstructPathBrokenChain(t *testing.T) {
	path, ok := ReconstructPath(map[int]int{3: 2}, 3, 0)
	assert.False(t, ok)
	assert.Equal(t, []int{2, 3}, path)
}
