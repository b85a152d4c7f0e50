package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/devicefarm-e2e/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetDelete(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "secrets"))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "devicefarm/lambdatest/username", "alice"))
	require.NoError(t, store.Put(ctx, "devicefarm/lambdatest/access_key", "key-1"))

	value, err := store.Get(ctx, "devicefarm/lambdatest/username")
	require.NoError(t, err)
	assert.Equal(t, "alice", value)

	require.NoError(t, store.Delete(ctx, "devicefarm/lambdatest/username"))
	_, err = store.Get(ctx, "devicefarm/lambdatest/username")
	require.ErrorIs(t, err, ports.ErrSecretNotFound)

	value, err = store.Get(ctx, "devicefarm/lambdatest/access_key")
	require.NoError(t, err)
	assert.Equal(t, "key-1", value)
}

func TestStoreFileIsOwnerOnly(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(), nil, 0o644))

	require.NoError(t, store.Put(context.Background(), "devicefarm/lambdatest/username", "alice"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreDeleteMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), "devicefarm/lambdatest/username"))
	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.Error(t, store.Put(context.Background(), "  ", "value"))
	_, err := store.Get(context.Background(), "")
	require.Error(t, err)
}

func TestStoreMalformedFileReturnsError(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(), []byte("= broken"), 0o600))

	_, err := store.Get(context.Background(), "devicefarm/lambdatest/username")
	assert.ErrorContains(t, err, "decode secrets file")
}
