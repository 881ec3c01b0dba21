package view_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytewell/strspan/api"
	"github.com/bytewell/strspan/search"
	"github.com/bytewell/strspan/view"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestOpenFile(t *testing.T) {
	content := []byte("hello world\nsecond line\n")
	path := writeTemp(t, content)

	f, err := view.Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, path, f.Path())
	assert.Equal(t, len(content), f.Len())
	assert.Equal(t, content, f.Bytes())

	ok, err := f.Contains([]byte("second"), 0, view.End)
	require.NoError(t, err)
	assert.True(t, ok)

	pos, err := f.Find([]byte("world"), 0, view.End)
	require.NoError(t, err)
	assert.Equal(t, 6, pos)
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := view.Open(path)
	require.Error(t, err)

	var ioe *api.IOError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, "open", ioe.Op)
	assert.Equal(t, path, ioe.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpenEmptyFile(t *testing.T) {
	f, err := view.Open(writeTemp(t, nil))
	require.NoError(t, err)

	assert.Equal(t, 0, f.Len())
	ok, err := f.Contains([]byte(""), 0, view.End)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = f.At(0)
	assert.ErrorIs(t, err, api.ErrOutOfRange)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestFileSubSurvivesClose(t *testing.T) {
	f, err := view.Open(writeTemp(t, []byte("alpha beta gamma")))
	require.NoError(t, err)

	sub, err := f.Sub(6, 10)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t, "beta", sub.String())
	require.NoError(t, sub.Release())
}

func TestFileSplitlines(t *testing.T) {
	f, err := view.Open(writeTemp(t, []byte("one\ntwo\nthree")))
	require.NoError(t, err)
	defer f.Close()

	sp := f.Splitlines(false, '\n', view.NoLimit)
	assert.Equal(t, []string{"one", "two", "three"}, parts(t, sp))
	require.NoError(t, sp.Release())
}

func TestFileCountAcrossPages(t *testing.T) {
	line := []byte("needle in a haystack\n")
	content := bytes.Repeat(line, 4096)
	f, err := view.Open(writeTemp(t, content))
	require.NoError(t, err)
	defer f.Close()

	n, err := f.Count([]byte("needle"), 0, view.End, false)
	require.NoError(t, err)
	assert.Equal(t, 4096, n)

	n, err = f.Count([]byte("\n"), 0, view.End, false)
	require.NoError(t, err)
	assert.Equal(t, 4096, n)
}

func TestOpenWithSearcher(t *testing.T) {
	path := writeTemp(t, []byte("a,b,c"))
	for _, name := range []string{"scalar", "vector"} {
		be, err := search.ByName(name)
		require.NoError(t, err)

		f, err := view.Open(path, view.WithSearcher(be))
		require.NoError(t, err)
		sp := f.Split([]byte(","), view.NoLimit, false)
		assert.Equal(t, []string{"a", "b", "c"}, parts(t, sp), name)
		require.NoError(t, sp.Release())
		require.NoError(t, f.Close())
	}
}
