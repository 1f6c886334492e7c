package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_SaveLoadClear(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "sub", "session")
	tk := New(fname)

	user, err := tk.Load()
	require.NoError(t, err)
	assert.Empty(t, user, "no token yet")

	require.NoError(t, tk.Save("alice"))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "alice", string(data))

	fi, err := os.Stat(fname)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	user, err = New(fname).Load()
	require.NoError(t, err)
	assert.Equal(t, "alice", user, "token survives restart")

	require.NoError(t, tk.Save("bob"))
	user, err = tk.Load()
	require.NoError(t, err)
	assert.Equal(t, "bob", user)

	require.NoError(t, tk.Clear())
	_, err = os.Stat(fname)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, tk.Clear(), "clear of missing token is fine")

	user, err = tk.Load()
	require.NoError(t, err)
	assert.Empty(t, user)
}

func TestToken_TrimsWhitespace(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "session")
	require.NoError(t, os.WriteFile(fname, []byte("carol\n"), 0o600))
	user, err := New(fname).Load()
	require.NoError(t, err)
	assert.Equal(t, "carol", user)
}

func TestToken_Memory(t *testing.T) {
	tk := New("")
	assert.Equal(t, "location:memory", tk.String())

	require.NoError(t, tk.Save("dave"))
	user, err := tk.Load()
	require.NoError(t, err)
	assert.Equal(t, "dave", user)

	require.NoError(t, tk.Clear())
	user, err = tk.Load()
	require.NoError(t, err)
	assert.Empty(t, user)
}

func TestToken_ReadError(t *testing.T) {
	dir := t.TempDir()
	tk := New(dir) // directory in place of a file
	_, err := tk.Load()
	assert.Error(t, err)
	assert.Error(t, tk.Save("x"))
}
