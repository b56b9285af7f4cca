package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestFileStore_FreshStore_NotAuthenticated(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestFileStore_SetTokens_Authenticates(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.SetTokens("access-1", "refresh-1"))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "access-1", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())
}

func TestFileStore_Clear_RemovesBothTokens(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetTokens("access-1", "refresh-1"))

	require.NoError(t, store.Clear())

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestFileStore_Clear_WhenEmpty_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	assert.False(t, store.IsAuthenticated())
}

func TestFileStore_AuthenticationReflectsLastCall(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.SetTokens("a1", "r1"))
	require.NoError(t, store.Clear())
	require.NoError(t, store.SetTokens("a2", "r2"))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "a2", store.AccessToken())

	require.NoError(t, store.Clear())
	assert.False(t, store.IsAuthenticated())
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.SetTokens("access-1", "refresh-1"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	assert.True(t, reopened.IsAuthenticated())
	assert.Equal(t, "access-1", reopened.AccessToken())
	assert.Equal(t, "refresh-1", reopened.RefreshToken())
}

func TestFileStore_ClearPersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.Clear())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	assert.False(t, reopened.IsAuthenticated())
}

func TestFileStore_CorruptFile_TreatedAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	assert.False(t, store.IsAuthenticated())
}

func TestFileStore_FilePermissions(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.SetTokens("access-1", "refresh-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
