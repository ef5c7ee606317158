package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astar "github.com/pdrpinto/gridastar"
)

const board = `0,1,0,0,0,0,
0,1,0,0,0,0,
0,1,0,0,0,0,
0,1,0,0,0,0,
0,0,0,0,1,0,
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := BuildCLI()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()
	assert.Equal(t, "gridastar", cmd.Use)

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["solve"])
	assert.True(t, names["batch"])
	assert.True(t, names["serve"])

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
}

func TestSolveReferenceBoard(t *testing.T) {
	path := writeFile(t, t.TempDir(), "board.txt", board)

	out, err := execute(t, "solve", path, "--style", "ascii")
	require.NoError(t, err)

	parts := strings.Split(out, "\n\n\n")
	require.Len(t, parts, 2, out)
	assert.Equal(t, 5, strings.Count(parts[0], "#"))
	assert.Contains(t, parts[1], "S ")
	assert.Contains(t, parts[1], "F \n")
	assert.Equal(t, 5, strings.Count(parts[1], "#"))
	assert.Equal(t, 5, strings.Count(parts[1], "\n"))
}

func TestSolveNoPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "wall.txt", "0,0,\n1,1,\n0,0,\n")

	out, err := execute(t, "solve", path, "--start", "0,0", "--goal", "2,1", "--style", "ascii")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "No path found!\n\n"), out)
}

func TestSolveErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "board.txt", board)

	_, err := execute(t, "solve", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = execute(t, "solve", path, "--goal", "9,9")
	assert.ErrorIs(t, err, astar.ErrInvalidInput)

	_, err = execute(t, "solve", path, "--start", "zero")
	assert.Error(t, err)

	_, err = execute(t, "solve", path, "--style", "braille")
	assert.Error(t, err)

	_, err = execute(t, "solve")
	assert.Error(t, err, "file argument is required")
}

func TestSolveWritesPNG(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "board.txt", board)
	pngPath := filepath.Join(dir, "out.png")

	_, err := execute(t, "solve", path, "--png", pngPath, "--cell-size", "4")
	require.NoError(t, err)
	assert.FileExists(t, pngPath)
}

func TestSolveUsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "board.txt", "0,0,\n0,0,\n")
	cfgPath := writeFile(t, dir, "config.yaml", "search:\n  goal: {x: 1, y: 1}\nrender:\n  style: ascii\n")

	cmd := BuildCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "solve", path})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasSuffix(out.String(), "S * \n. F \n"), out.String())
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "open.txt", board)
	writeFile(t, dir, "wall.txt", "0,0,\n1,1,\n0,0,\n")
	manifest := writeFile(t, dir, "jobs.yaml", `
jobs:
  - name: reference
    grid: open.txt
  - name: walled
    grid: wall.txt
    start: {x: 0, y: 0}
    goal: {x: 2, y: 0}
  - name: bad-goal
    grid: wall.txt
    goal: {x: 1, y: 0}
`)

	out, err := execute(t, "batch", manifest, "--workers", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "reference\tfound cost=11"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "walled\tno path"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "bad-goal\terror: invalid input"), lines[2])
}

func TestBatchInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "batch", writeFile(t, dir, "empty.yaml", "jobs: []\n"))
	assert.Error(t, err)

	_, err = execute(t, "batch", writeFile(t, dir, "noname.yaml", "jobs:\n  - grid: a.txt\n"))
	assert.Error(t, err)

	_, err = execute(t, "batch", writeFile(t, dir, "missing.yaml", "jobs:\n  - name: a\n    grid: a.txt\n"))
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, astar.Point{X: 3, Y: 4}, p)

	for _, bad := range []string{"", "1", "1,2,3", "a,1", "1,b"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSolveWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "board.txt", "0,0,\n0,0,\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := BuildCLI()
	out := &syncBuffer{}
	cmd.SetOut(out)
	cmd.SetErr(&syncBuffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "none.yaml"), "solve", path, "--goal", "1,1", "--style", "ascii", "--watch"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool { return strings.Count(out.String(), "F") == 1 }, 5*time.Second, 10*time.Millisecond)

	// block the only route so the re-solve reports failure
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("0,1,\n1,0,\n"), 0o644)
		return strings.Contains(out.String(), "No path found!")
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
