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

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "eval.ini")
	require.NoError(t, os.WriteFile(fname, []byte(`
[Eval]
Mode = compare
Algorithm = direct
Samples = 7
End = 0.5
`), 0o644))

	cfg, err := ReadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, "compare", cfg.Eval.Mode)
	assert.Equal(t, "direct", cfg.Eval.Algorithm)
	assert.Equal(t, 7, cfg.Eval.Samples)
	assert.Equal(t, 0.0, cfg.Eval.Start)
	assert.Equal(t, 0.5, cfg.Eval.End)
	assert.NoError(t, cfg.Eval.CheckInit())

	def, err := ReadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), def)
}

func TestCheckInit(t *testing.T) {
	for _, mod := range []func(*EvalConfig){
		func(c *EvalConfig) { c.Mode = "render" },
		func(c *EvalConfig) { c.Algorithm = "horner" },
		func(c *EvalConfig) { c.Samples = 0 },
		func(c *EvalConfig) { c.Index = -1 },
	} {
		cfg := DefaultConfig()
		mod(&cfg.Eval)
		assert.Error(t, cfg.Eval.CheckInit())
	}
}

func TestRunCurve(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(fname, []byte("0 0 0\n2 4 6\n"), 0o644))

	cfg := DefaultConfig()
	cfg.Eval.Points = fname
	cfg.Eval.Samples = 3

	var buf bytes.Buffer
	require.NoError(t, run(&buf, &cfg.Eval))
	assert.Equal(t, "0 0 0 0\n0.5 1 2 3\n1 2 4 6\n", buf.String())
}

func TestRunTeaspoon(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Eval.Mode = "teaspoon"
	cfg.Eval.Samples = 2

	var buf bytes.Buffer
	require.NoError(t, run(&buf, &cfg.Eval))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 16*2*2)
}

func TestRunBernstein(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Eval.Mode = "bernstein"
	cfg.Eval.Samples = 3

	var buf bytes.Buffer
	require.NoError(t, run(&buf, &cfg.Eval))
	assert.Equal(t, "0 0\n0.5 0.375\n1 0\n", buf.String())

	cfg.Eval.Index = 5
	assert.Error(t, run(&buf, &cfg.Eval))
}

func TestRunCompare(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Eval.Mode = "compare"
	cfg.Eval.Samples = 11

	var buf bytes.Buffer
	require.NoError(t, run(&buf, &cfg.Eval))
	assert.True(t, strings.HasPrefix(buf.String(), "degree 5, 11 samples"), buf.String())
}
