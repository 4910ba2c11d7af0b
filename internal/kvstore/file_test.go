package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/kvstore"
)

type blob struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("cart", blob{Name: "laptop", Count: 2}))

	var got blob
	found, err := s.Load("cart", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, blob{Name: "laptop", Count: 2}, got)
}

func TestFileStore_AbsentKey(t *testing.T) {
	s, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	var got blob
	found, err := s.Load("missing", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestFileStore_CorruptBlobIsAnError(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{broken"), 0o644))

	var got blob
	_, err = s.Load("cart", &got)
	require.Error(t, err, "corrupt blob must surface as an error for the caller to log")
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("k", blob{Count: 1}))
	require.NoError(t, s.Save("k", blob{Count: 2}))

	var got blob
	found, err := s.Load("k", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, got.Count)
}

func TestFileStore_Delete(t *testing.T) {
	s, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("k", blob{}))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("k"), "deleting an absent key is not an error")

	var got blob
	found, err := s.Load("k", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestFileStore_HostileKeyStaysInDir(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save("../escape", blob{Count: 9}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "blob must be written inside the data dir")
}
