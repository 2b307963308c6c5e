package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := snapshot{Name: "deneme", Count: 3}
	require.NoError(t, fs.Save("test-key-v1", in))

	var out snapshot
	require.NoError(t, fs.Load("test-key-v1", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreMissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out snapshot
	err = fs.Load("yok-boyle-anahtar", &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, out)
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bozuk.json"), []byte(`{yarim`), 0644))

	var out snapshot
	assert.Error(t, fs.Load("bozuk", &out))
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "alt", "dizin")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreOverwrite(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Save("k", snapshot{Name: "ilk"}))
	require.NoError(t, fs.Save("k", snapshot{Name: "son"}))

	var out snapshot
	require.NoError(t, fs.Load("k", &out))
	assert.Equal(t, "son", out.Name)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ms := NewMemoryStore()

	require.NoError(t, ms.Save("k", snapshot{Name: "a", Count: 1}))

	var out snapshot
	require.NoError(t, ms.Load("k", &out))
	assert.Equal(t, "a", out.Name)

	err := ms.Load("yok", &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemoryStorePutRawJSON(t *testing.T) {
	ms := NewMemoryStore()
	ms.Put("k", []byte(`{"name":"ham","count":7}`))

	var out snapshot
	require.NoError(t, ms.Load("k", &out))
	assert.Equal(t, snapshot{Name: "ham", Count: 7}, out)
}
