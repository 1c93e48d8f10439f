package credstore

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"billdesk/config"
	domainerrors "billdesk/internal/domain/errors"
	"billdesk/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreForTest(t *testing.T) (repository.CredentialStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	cfg := &config.Config{}
	cfg.Credentials.Path = path
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFileStore(Params{Config: cfg, Logger: logger}), path
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store, _ := newStoreForTest(t)

	_, err := store.Get(repository.KeyAccessToken)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestFileStore_SetPairRoundTrip(t *testing.T) {
	store, _ := newStoreForTest(t)

	require.NoError(t, store.SetPair("access-123", "refresh-456"))

	access, err := store.Get(repository.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access-123", access)

	refresh, err := store.Get(repository.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh-456", refresh)
}

func TestFileStore_SetPreservesOtherToken(t *testing.T) {
	store, _ := newStoreForTest(t)

	require.NoError(t, store.SetPair("access-123", "refresh-456"))
	require.NoError(t, store.Set(repository.KeyAccessToken, "access-789"))

	access, err := store.Get(repository.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access-789", access)

	refresh, err := store.Get(repository.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh-456", refresh)
}

func TestFileStore_ClearPairRemovesBoth(t *testing.T) {
	store, _ := newStoreForTest(t)

	require.NoError(t, store.SetPair("access-123", "refresh-456"))
	require.NoError(t, store.ClearPair())

	_, err := store.Get(repository.KeyAccessToken)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	_, err = store.Get(repository.KeyRefreshToken)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestFileStore_RemoveAbsentKey(t *testing.T) {
	store, _ := newStoreForTest(t)

	assert.NoError(t, store.Remove(repository.KeyAccessToken))
}

func TestFileStore_UnrecognizedKey(t *testing.T) {
	store, _ := newStoreForTest(t)

	_, err := store.Get("session_cookie")
	assert.Error(t, err)

	assert.Error(t, store.Set("session_cookie", "value"))
}

func TestFileStore_CorruptFile(t *testing.T) {
	store, path := newStoreForTest(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := store.Get(repository.KeyAccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestFileStore_FilePermissions(t *testing.T) {
	store, path := newStoreForTest(t)

	require.NoError(t, store.SetPair("access-123", "refresh-456"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
