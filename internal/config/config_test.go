package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".callscope.yaml"), []byte(content), 0o644))
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg := Load(t.TempDir())

	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultStubDepth, cfg.StubDepth)
	assert.Empty(t, cfg.Language)
	assert.Empty(t, cfg.Overrides)
}

func TestLoadReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "language: python\nmax_depth: 5\nstub_depth: 2\noverrides: extra-calls.json\n")

	cfg := Load(dir)

	assert.Equal(t, "python", cfg.Language)
	assert.Equal(t, 5, cfg.MaxDepth)
	assert.Equal(t, 2, cfg.StubDepth)
	assert.Equal(t, "extra-calls.json", cfg.Overrides)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "language: java\n")

	cfg := Load(dir)

	assert.Equal(t, "java", cfg.Language)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultStubDepth, cfg.StubDepth)
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "max_depth: [not\n  valid yaml {{{\n")

	cfg := Load(dir)

	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultStubDepth, cfg.StubDepth)
}

func TestLoadSanitizesOutOfRangeValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "max_depth: 0\nstub_depth: -3\n")

	cfg := Load(dir)

	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultStubDepth, cfg.StubDepth)
}

func TestLoadAllowsZeroStubDepth(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "stub_depth: 0\n")

	cfg := Load(dir)

	assert.Zero(t, cfg.StubDepth)
}
