package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryResults struct {
	tests   []*domain.Test
	listErr error
}

func (m *memoryResults) Save(_ context.Context, test *domain.Test) error {
	m.tests = append(m.tests, test)
	return nil
}

func (m *memoryResults) GetByName(_ context.Context, name string) (*domain.Test, error) {
	for _, test := range m.tests {
		if test.Name == name {
			return test, nil
		}
	}
	return nil, domain.ErrTestNotFound
}

func (m *memoryResults) List(context.Context) ([]*domain.Test, error) {
	return m.tests, m.listErr
}

func storedTest(group, name, errText string, runs int) *domain.Test {
	test := &domain.Test{Name: name, GroupName: group}
	for i := 0; i < runs; i++ {
		test.NewRun(testNow)
	}
	test.LatestRun().Error = errText
	return test
}

func TestResultsServiceListSortsAndFilters(t *testing.T) {
	repo := &memoryResults{tests: []*domain.Test{
		storedTest("GroupChat", "test_leave", "", 1),
		storedTest("OneToOne", "test_send", "Device 2: timeout", 2),
		storedTest("GroupChat", "test_invite", "", 1),
	}}
	service := NewResultsService(repo)

	results, err := service.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "test_invite", results[0].Name)
	assert.Equal(t, "test_leave", results[1].Name)
	assert.Equal(t, "test_send", results[2].Name)
	assert.False(t, results[2].Passed)
	assert.Equal(t, 2, results[2].Runs)

	results, err = service.List(context.Background(), "OneToOne")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Device 2: timeout", results[0].Error)
}

func TestResultsServiceGet(t *testing.T) {
	service := NewResultsService(&memoryResults{tests: []*domain.Test{storedTest("G", "test_send", "", 1)}})

	result, err := service.Get(context.Background(), "test_send")
	require.NoError(t, err)
	assert.True(t, result.Passed)

	_, err = service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTestNotFound)
}

func TestResultsServiceListError(t *testing.T) {
	service := NewResultsService(&memoryResults{listErr: errors.New("corrupt file")})

	_, err := service.List(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list test results")
}
