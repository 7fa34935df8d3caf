package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "peers.yaml"))
	require.NoError(t, err)
	assert.Empty(t, s.Entries())
	assert.Equal(t, "", s.Name("anything"))
}

func TestStore_SetDeleteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "peers.yaml")
	s, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("keyA", " laptop "))
	require.NoError(t, s.Set("keyB", "phone"))
	require.NoError(t, s.Set("keyA", "work-laptop"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{PublicKey: "keyA", Name: "work-laptop"},
		{PublicKey: "keyB", Name: "phone"},
	}, reloaded.Entries())

	require.NoError(t, reloaded.Delete("keyA"))
	require.NoError(t, reloaded.Delete("missing"))
	require.NoError(t, reloaded.Set("keyB", ""))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, again.Entries())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
peers:
  - public_key: " keyA "
    name: laptop
  - public_key: ""
    name: orphan
  - public_key: keyC
`), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "laptop", s.Name("keyA"))
	assert.Equal(t, "", s.Name("keyC"))
	assert.Len(t, s.Entries(), 2)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("peers: {not: [a list"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse inventory")
}
