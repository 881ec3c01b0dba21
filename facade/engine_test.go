package facade_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytewell/strspan/facade"
	"github.com/bytewell/strspan/view"
)

func TestNewDefaults(t *testing.T) {
	e, err := facade.New(nil)
	require.NoError(t, err)
	require.NotNil(t, e.Searcher())

	v := e.NewStr("hello world")
	ok, err := v.Contains([]byte("wor"), 0, view.End)
	require.NoError(t, err)
	assert.True(t, ok)

	m := e.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, int64(1), m["views"])
	assert.Equal(t, int64(1), m["find_calls"])
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := facade.New(&facade.Config{Backend: "quantum"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantum")
}

func TestExplicitBackends(t *testing.T) {
	for _, name := range []string{"scalar", "vector", "auto", ""} {
		e, err := facade.New(&facade.Config{Backend: name})
		require.NoError(t, err, name)

		n, err := e.NewStr("aaaa").Count([]byte("aa"), 0, view.End, true)
		require.NoError(t, err, name)
		assert.Equal(t, 3, n, name)
	}
}

func TestMetricsDisabled(t *testing.T) {
	e, err := facade.New(&facade.Config{Backend: "scalar"})
	require.NoError(t, err)
	e.NewStr("abc")
	assert.Nil(t, e.Metrics())
}

func TestDebugTracing(t *testing.T) {
	var buf bytes.Buffer
	e, err := facade.New(&facade.Config{Backend: "scalar", DebugOut: &buf})
	require.NoError(t, err)

	e.NewStr("abc")
	out := buf.String()
	assert.Contains(t, out, "search backend selected")
	assert.Contains(t, out, "owned view created, 3 bytes")
}

func TestOpenThroughEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree"), 0o644))

	e, err := facade.New(facade.DefaultConfig())
	require.NoError(t, err)

	f, err := e.Open(path)
	require.NoError(t, err)
	defer f.Close()

	sp := f.Splitlines(false, '\n', view.NoLimit)
	assert.Equal(t, 3, sp.Len())
	require.NoError(t, sp.Release())

	m := e.Metrics()
	assert.Equal(t, int64(1), m["mapped_files"])
}

func TestOpenMissingThroughEngine(t *testing.T) {
	e, err := facade.New(facade.DefaultConfig())
	require.NoError(t, err)
	_, err = e.Open(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestFromReaderThroughEngine(t *testing.T) {
	e, err := facade.New(facade.DefaultConfig())
	require.NoError(t, err)

	v, err := e.FromReader(strings.NewReader("k=v;x=y"))
	require.NoError(t, err)
	sp := v.Splitlines(false, ';', view.NoLimit)
	assert.Equal(t, 2, sp.Len())
	require.NoError(t, sp.Release())
}
