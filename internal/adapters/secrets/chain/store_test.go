package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/devicefarm-e2e/internal/ports"
	portmocks "github.com/bnema/devicefarm-e2e/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const usernameKey = "devicefarm/lambdatest/username"

func newChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(Backend{Name: "pass", Store: primary}, Backend{Name: "file", Store: fallback})
	require.NoError(t, err)
	return store, primary, fallback
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, usernameKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), usernameKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, usernameKey).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, usernameKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), usernameKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, usernameKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, usernameKey).Return("", fmt.Errorf("gone: %w", ports.ErrSecretNotFound)).Once()

	_, err := store.Get(context.Background(), usernameKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass backend get: pass failed")
	assert.ErrorContains(t, err, "file backend get")
}

func TestStoreGetNotFoundEverywhere(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, usernameKey).Return("", ports.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, usernameKey).Return("", ports.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), usernameKey)
	require.ErrorIs(t, err, ports.ErrSecretNotFound)
}

func TestStoreGetStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, usernameKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), usernameKey)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStorePutFallsBack(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Put(mock.Anything, usernameKey, "alice").Return(errors.New("pass unavailable")).Once()
	fallback.EXPECT().Put(mock.Anything, usernameKey, "alice").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), usernameKey, "alice"))
}

func TestStoreDeleteReachesEveryBackend(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, usernameKey).Return(errors.New("pass unavailable")).Once()
	fallback.EXPECT().Delete(mock.Anything, usernameKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), usernameKey))
}

func TestStoreDeleteFailsWhenNoBackendDeletes(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, usernameKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, usernameKey).Return(errors.New("disk failed")).Once()

	err := store.Delete(context.Background(), usernameKey)
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "disk failed")
}

func TestNewStoreValidatesBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore()
	require.Error(t, err)

	_, err = NewStore(Backend{Name: "pass"})
	assert.ErrorContains(t, err, `secret backend "pass" is nil`)
}
