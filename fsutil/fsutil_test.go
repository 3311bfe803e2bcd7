package fsutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileCreatesParents(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "a", "b", "c.txt")
	require.NoError(t, WriteFile(dst, []byte("hello")))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(src, "img", "castle.png"), []byte("png")))
	require.NoError(t, WriteFile(filepath.Join(src, "readme.txt"), []byte("txt")))

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, CopyTree(src, dst))

	got, err := os.ReadFile(filepath.Join(dst, "img", "castle.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(got))
	_, err = os.Stat(filepath.Join(dst, "readme.txt"))
	assert.NoError(t, err)
}

func TestCopyTreeRejectsFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "file")
	require.NoError(t, WriteFile(src, []byte("x")))
	assert.Error(t, CopyTree(src, t.TempDir()))
}

func TestCopyFSAppliesTransform(t *testing.T) {
	fsys := fstest.MapFS{
		"style.css":    {Data: []byte("body {}")},
		"js/search.js": {Data: []byte("var a = 1;")},
	}
	dst := t.TempDir()
	var seen []string
	err := CopyFS(fsys, dst, func(name string, data []byte) ([]byte, error) {
		seen = append(seen, name)
		return bytes.ToUpper(data), nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"style.css", "js/search.js"}, seen)

	got, err := os.ReadFile(filepath.Join(dst, "js", "search.js"))
	require.NoError(t, err)
	assert.Equal(t, "VAR A = 1;", string(got))
}
