package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWordList(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "mywords.txt")
	require.NoError(t, os.WriteFile(list, []byte("battle\n"), 0644))

	pr := &PathResolver{executableDir: dir, homeDir: dir, configDir: filepath.Join(dir, "config")}

	path, ok := pr.ResolveWordList(list)
	assert.True(t, ok)
	assert.Equal(t, list, path)

	// relative paths are also tried next to the executable
	path, ok = pr.ResolveWordList("mywords.txt")
	assert.True(t, ok)
	assert.Equal(t, list, path)

	path, ok = pr.ResolveWordList(filepath.Join(dir, "missing.txt"))
	assert.False(t, ok)
	assert.Equal(t, filepath.Join(dir, "missing.txt"), path)
}

func TestResolveWordListDefaults(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "config", "data")
	require.NoError(t, EnsureDir(dataDir))
	list := filepath.Join(dataDir, DefaultWordList[0])
	require.NoError(t, os.WriteFile(list, []byte("battle\n"), 0644))

	pr := &PathResolver{executableDir: filepath.Join(dir, "bin"), homeDir: dir, configDir: filepath.Join(dir, "config")}
	path, ok := pr.ResolveWordList("")
	assert.True(t, ok)
	assert.Equal(t, list, path)
}

func TestTOMLHelpers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "conf.toml")
	require.NoError(t, SaveTOMLFile(map[string]any{
		"query": map[string]any{"wildcards": "?", "completion_limit": 3, "strict_counts": true},
	}, path))

	data, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	section, ok := ExtractSection(data, "query")
	require.True(t, ok)

	s, ok := ExtractString(section, "wildcards")
	assert.True(t, ok)
	assert.Equal(t, "?", s)
	n, ok := ExtractInt64(section, "completion_limit")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	b, ok := ExtractBool(section, "strict_counts")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = ExtractInt64(section, "wildcards")
	assert.False(t, ok)
	_, ok = ExtractSection(data, "missing")
	assert.False(t, ok)
}
