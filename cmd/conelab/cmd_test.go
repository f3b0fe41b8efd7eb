package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPages(t *testing.T) {
	out, err := run(t, "pages", "0:50", "60:150", "--step", "1", "--limit", "50")
	require.NoError(t, err)
	assert.Equal(t, "0 50 0.33\n60 110 0.67\n110 150 1.00\n", out)
}

func TestPages_Loaded(t *testing.T) {
	out, err := run(t, "pages", "0:20", "--loaded", "1:10", "--loaded", "13:15")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0.33\n11 12 0.67\n16 20 1.00\n", out)
}

func TestPages_AllLoaded(t *testing.T) {
	out, err := run(t, "pages", "5:10", "--loaded", "0:20")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPages_BadInput(t *testing.T) {
	_, err := run(t, "pages", "10-20")
	assert.Error(t, err)

	_, err = run(t, "pages", "20:10")
	assert.Error(t, err)

	_, err = run(t, "pages", "0:10", "--step", "0")
	assert.Error(t, err)

	_, err = run(t, "pages")
	assert.Error(t, err)
}

func TestGraph_Deterministic(t *testing.T) {
	a, err := run(t, "graph", "--seed", "7")
	require.NoError(t, err)
	b, err := run(t, "graph", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "digraph"))
	assert.Contains(t, a, "ini_")
}

func TestGraph_ConfigAndHistory(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("total_cnt: 12\nmax_out_degree: 3\n"), 0o600))
	hist := filepath.Join(dir, "history.json")

	out, err := run(t, "graph", "--config", cfg, "--seed", "3",
		"--color-cone", "ini", "--steps", "1", "--history", hist)
	require.NoError(t, err)
	assert.Contains(t, out, "red")

	data, err := os.ReadFile(hist)
	require.NoError(t, err)
	assert.Contains(t, string(data), "color cone")
}

func TestGraph_Errors(t *testing.T) {
	_, err := run(t, "graph", "--dir", "sideways")
	assert.Error(t, err)

	_, err = run(t, "graph", "--seed", "1", "--delete-cone", "nope")
	assert.Error(t, err)

	_, err = run(t, "graph", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "graph", "--log-level", "loud")
	assert.Error(t, err)
}
