//go:build unit

package file

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerAdapter_WriteAndReadFile(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")
	testContent := []byte("test content")

	t.Run("WriteFile", func(t *testing.T) {
		err := adapter.WriteFile(testFile, testContent, 0644)
		assert.NoError(t, err)
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := adapter.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, testContent, data)
	})

	t.Run("ReadMissingFile", func(t *testing.T) {
		_, err := adapter.ReadFile(filepath.Join(tempDir, "missing.txt"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestManagerAdapter_FileExists(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "exists.txt")

	assert.False(t, adapter.FileExists(testFile))

	require.NoError(t, adapter.WriteFile(testFile, []byte("x"), 0644))
	assert.True(t, adapter.FileExists(testFile))
}

func TestManagerAdapter_Remove(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "remove.txt")

	t.Run("RemovesExistingFile", func(t *testing.T) {
		require.NoError(t, adapter.WriteFile(testFile, []byte("x"), 0644))
		require.NoError(t, adapter.Remove(testFile))
		assert.False(t, adapter.FileExists(testFile))
	})

	t.Run("MissingFileIsNotAnError", func(t *testing.T) {
		assert.NoError(t, adapter.Remove(filepath.Join(tempDir, "never-existed.txt")))
	})
}

func TestManagerAdapter_MkdirAll(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "a", "b", "c")

	require.NoError(t, adapter.MkdirAll(nested, 0755))
	require.NoError(t, adapter.WriteFile(filepath.Join(nested, "file.txt"), []byte("x"), 0644))
	assert.True(t, adapter.FileExists(filepath.Join(nested, "file.txt")))

	t.Run("ExistingDirectoryIsNotAnError", func(t *testing.T) {
		assert.NoError(t, adapter.MkdirAll(nested, 0755))
	})
}
