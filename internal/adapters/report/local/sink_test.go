package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) *mocks.MockClock {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)).Maybe()
	return clock
}

func TestSinkSaveLogsWritesBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := NewSink(dir, nil, fixedClock(t))

	paths, err := sink.SaveLogs(context.Background(), map[string][]byte{
		"test_send_geth1.log":     []byte("geth"),
		"test_send_requests1.log": []byte("api"),
	})
	require.NoError(t, err)

	batch := filepath.Join(dir, "logs", "20260302T093000Z")
	assert.Equal(t, map[string]string{
		"test_send_geth1.log":     filepath.Join(batch, "test_send_geth1.log"),
		"test_send_requests1.log": filepath.Join(batch, "test_send_requests1.log"),
	}, paths)

	data, err := os.ReadFile(paths["test_send_geth1.log"])
	require.NoError(t, err)
	assert.Equal(t, "geth", string(data))
}

func TestSinkSaveLogsSameSecondUsesNewBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := NewSink(dir, nil, fixedClock(t))
	logs := map[string][]byte{"a.log": []byte("1")}

	first, err := sink.SaveLogs(context.Background(), logs)
	require.NoError(t, err)
	second, err := sink.SaveLogs(context.Background(), logs)
	require.NoError(t, err)

	assert.NotEqual(t, first["a.log"], second["a.log"])
	assert.Equal(t, filepath.Join(dir, "logs", "20260302T093000Z-1", "a.log"), second["a.log"])
}

func TestSinkSaveLogsRejectsPathNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := NewSink(dir, nil, fixedClock(t))

	_, err := sink.SaveLogs(context.Background(), map[string][]byte{"../escape.log": []byte("x")})
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "logs"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSinkSaveLogsEmpty(t *testing.T) {
	t.Parallel()

	paths, err := NewSink(t.TempDir(), nil, nil).SaveLogs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

type recordingRepo struct {
	mock.Mock
}

func (r *recordingRepo) Save(ctx context.Context, test *domain.Test) error {
	return r.Called(ctx, test).Error(0)
}

func (r *recordingRepo) GetByName(ctx context.Context, name string) (*domain.Test, error) {
	args := r.Called(ctx, name)
	test, _ := args.Get(0).(*domain.Test)
	return test, args.Error(1)
}

func (r *recordingRepo) List(ctx context.Context) ([]*domain.Test, error) {
	args := r.Called(ctx)
	tests, _ := args.Get(0).([]*domain.Test)
	return tests, args.Error(1)
}

func TestSinkSaveTestDelegatesToRepository(t *testing.T) {
	t.Parallel()

	repo := &recordingRepo{}
	test := &domain.Test{Name: "test_send"}
	repo.On("Save", mock.Anything, test).Return(nil).Once()
	sink := NewSink(t.TempDir(), repo, nil)

	require.NoError(t, sink.SaveTest(context.Background(), test))
	repo.AssertExpectations(t)
}

func TestSinkSaveTestWrapsRepositoryError(t *testing.T) {
	t.Parallel()

	repo := &recordingRepo{}
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	sink := NewSink(t.TempDir(), repo, nil)

	err := sink.SaveTest(context.Background(), &domain.Test{Name: "test_send"})
	assert.ErrorContains(t, err, "save test test_send: disk full")
}

func TestSinkSaveTestWithoutRepository(t *testing.T) {
	t.Parallel()

	require.Error(t, NewSink(t.TempDir(), nil, nil).SaveTest(context.Background(), &domain.Test{Name: "t"}))
}
