package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/roadwidth/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exec runs the CLI and returns exit code, stdout and stderr.
func exec(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestGenerate_WritesConnectedGraph(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roads.txt")
	code, stdout, stderr := exec("-g", "8", "12", path, "--seed", "5", "--min-width", "20", "--max-width", "40")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "8 12\n", stdout)

	g, err := core.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, g.NumNodes)
	assert.Equal(t, 12, g.NumEdges())
	for _, r := range g.Roads {
		assert.GreaterOrEqual(t, r.Width, int64(20))
		assert.LessOrEqual(t, r.Width, int64(40))
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
	code, _, _ := exec("-g", "10", "20", a, "--seed", "11")
	require.Equal(t, 0, code)
	code, _, _ = exec("-g", "10", "20", b, "--seed", "11")
	require.Equal(t, 0, code)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestGenerate_TooFewEdgesWritesNothing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roads.txt")
	code, stdout, stderr := exec("-g", "5", "3", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid argument")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file may be created on failure")
}

func TestGenerate_TooManyEdges(t *testing.T) {
	t.Parallel()

	code, _, stderr := exec("-g", "4", "7", filepath.Join(t.TempDir(), "x.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "numEdges=7")
}

func TestQuery_ScenarioA(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roads.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 4\n0 1 50\n1 2 30\n2 3 80\n0 3 10\n"), 0o644))

	code, stdout, stderr := exec("-t", "0", "3", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "feasible width from 0 to 3: [1, 20]\n", stdout)

	code, stdout, _ = exec("-t", "0", "3", path, "--path", "--sparse", "--heap")
	require.Equal(t, 0, code)
	assert.Equal(t, "feasible width from 0 to 3: [1, 20]\nroute: 0 -(50)-> 1 -(30)-> 2 -(80)-> 3\n", stdout)
}

func TestQuery_NoPathIsNotAFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roads.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 1\n0 1 10\n"), 0o644))

	code, stdout, _ := exec("-t", "0", "1", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "no path from 0 to 1")
}

func TestQuery_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("2 1\n0 1 10\n"), 0o644))
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("3 2\n0 1 10\n"), 0o644))
	huge := filepath.Join(dir, "huge.txt")
	require.NoError(t, os.WriteFile(huge, []byte("4000000000 0\n"), 0o644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"OutOfRangeNode", []string{"-t", "0", "5", good}, "invalid argument"},
		{"CorruptFile", []string{"-t", "0", "1", bad}, "malformed edge list"},
		{"OversizedHeader", []string{"-t", "0", "1", huge}, "malformed edge list"},
		{"MissingFile", []string{"-t", "0", "1", filepath.Join(dir, "none.txt")}, "no such file"},
		{"NonNumeric", []string{"-t", "zero", "1", good}, "invalid argument"},
		{"NoMode", []string{"0", "1", good}, "exactly one of -g or -t"},
		{"BothModes", []string{"-g", "-t", "0", "1", good}, "exactly one of -g or -t"},
		{"TooFewArgs", []string{"-t", "0", good}, "accepts 3 arg(s)"},
		{"UnknownCommand", []string{"-x", "0", "1", good}, "unknown shorthand flag"},
		{"BadWidthRange", []string{"-g", "3", "2", filepath.Join(dir, "w.txt"), "--min-width", "9", "--max-width", "3"}, "invalid argument"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			code, _, stderr := exec(tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "roadwidth.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
generator:
  min_road_width: 7
  max_road_width: 7
  seed: 3
log:
  level: info
  format: json
`), 0o644))

	out := filepath.Join(dir, "roads.txt")
	code, _, stderr := exec("-g", "4", "5", out, "--config", cfgPath)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, `"msg":"graph written"`)

	g, err := core.LoadFile(out)
	require.NoError(t, err)
	for _, r := range g.Roads {
		assert.Equal(t, int64(7), r.Width)
	}
}
