package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/penomaze/internal/config"
	"github.com/samdwyer/penomaze/internal/mazefile"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-maze", "labyrinth", "-check"}, config.Config{Mazefile: "env.maze"})
	require.NoError(t, err)
	assert.Equal(t, options{file: "env.maze", name: "labyrinth", check: true}, opts)

	_, err = parseFlags([]string{"-bogus"}, config.Config{})
	assert.Error(t, err)
}

func TestRunList(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run(context.Background(), options{list: true}, config.Config{}, &out))
	assert.Contains(t, out.String(), "demo2.fixed")
	assert.Contains(t, out.String(), "labyrinth")
}

func TestRunRenderBundled(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run(context.Background(), options{name: "demo2.fixed"}, config.Config{}, &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 3*5)
	for _, line := range lines {
		assert.Len(t, line, 4*9)
	}
}

func TestRunCheck(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run(context.Background(), options{name: "labyrinth", check: true}, config.Config{}, &out))
	assert.Contains(t, out.String(), "walls consistent")

	out.Reset()
	err := run(context.Background(), options{name: "mismatch", check: true}, config.Config{}, &out)
	assert.True(t, errors.Is(err, errInconsistent))
	assert.Contains(t, out.String(), "disagrees")
}

func TestRunInvalidMazefile(t *testing.T) {
	var out strings.Builder
	err := run(context.Background(), options{name: "demo2.orig"}, config.Config{}, &out)
	assert.True(t, mazefile.IsSpecificationViolation(err))
	assert.Empty(t, out.String())
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.maze")
	require.NoError(t, os.WriteFile(path, []byte("2 1 # two corners\nCorner.N Corner.E\n"), 0o600))

	var out strings.Builder
	require.NoError(t, run(context.Background(), options{file: path}, config.Config{}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "+-------++-------+\n"))
}

func TestRunErrors(t *testing.T) {
	var out strings.Builder
	assert.Error(t, run(context.Background(), options{}, config.Config{}, &out))
	assert.Error(t, run(context.Background(), options{name: "missing"}, config.Config{}, &out))
	assert.Error(t, run(context.Background(), options{file: filepath.Join(t.TempDir(), "none.maze")}, config.Config{}, &out))
}
