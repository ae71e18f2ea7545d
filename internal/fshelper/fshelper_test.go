package fshelper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestDirSourcePaths(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "DJI_0002.JPG"))
	touch(t, filepath.Join(root, "DJI_0001.jpg"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "photo.jpeg"))
	touch(t, filepath.Join(root, "flight2", "DJI_0100.jpg"))

	paths, err := NewDirSource(true).Paths(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "DJI_0001.jpg"),
		filepath.Join(root, "DJI_0002.JPG"),
		filepath.Join(root, "flight2", "DJI_0100.jpg"),
	}, paths)

	paths, err = NewDirSource(false).Paths(root)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestDirSourceEmpty(t *testing.T) {
	paths, err := NewDirSource(true).Paths(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDirSourceMissingRoot(t *testing.T) {
	_, err := NewDirSource(true).Paths(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestDirSourceRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.jpg")
	touch(t, file)

	_, err := NewDirSource(true).Paths(file)
	assert.Error(t, err)
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{"b.jpg", "a.jpg"}
	paths, err := src.Paths("ignored")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, paths)
}
