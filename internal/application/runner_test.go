package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGroupSharesPoolAcrossMethods(t *testing.T) {
	sessions := []*fakeSession{newFakeSession("sid-1"), newFakeSession("sid-2")}
	builder := NewPoolBuilder(sessionsFactory(sessions...), DefaultPoolBuilderConfig(), nil)
	sink := &fakeSink{}
	group := NewMultiDeviceGroup(GroupConfig{
		Name: testGroup,
		Spec: domain.DeviceSpec{Quantity: 2, AppURL: "lt://APP1"},
	}, nil, builder, sink, WithClock(fixedClock{now: testNow}))

	var seen []int
	t.Run("group", func(t *testing.T) {
		RunGroup(t, group,
			Method{Name: "test_send", Run: func(t *testing.T, pool Pool, errs *Errors) {
				seen = append(seen, len(pool))
				for _, device := range pool.Devices() {
					device.Info(context.Background(), "sending")
				}
			}},
			Method{Name: "test_reply", Run: func(t *testing.T, pool Pool, errs *Errors) {
				seen = append(seen, len(pool))
			}},
		)
	})

	assert.Equal(t, []int{2, 2}, seen)
	assert.Equal(t, GroupClosed, group.State())
	require.Len(t, sink.tests, 2)
	send := sink.tests[0]
	for _, s := range sessions {
		ordinal, err := send.LatestRun().Ordinal(s.id)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Quits())
		assert.Equal(t, []string{
			"lambda-testCase-start=test_send",
			"lambda-testCase-start=test_reply",
			domain.StatusHookScript(ordinal, domain.StatusPassed),
		}, s.Scripts())
	}
	assert.Equal(t, testGroup, send.GroupName)
	assert.Empty(t, send.LatestRun().Error)
	assert.Equal(t, []string{"Device 1: sending", "Device 2: sending"}, send.LatestRun().Steps)
}

func TestRunGroupWithoutMethodsDoesNothing(t *testing.T) {
	group := NewMultiDeviceGroup(GroupConfig{Name: testGroup}, nil, nil, &fakeSink{})

	RunGroup(t, group)

	assert.Equal(t, GroupUnprepared, group.State())
}

func TestGroupSetupFailurePropagatesToEveryTest(t *testing.T) {
	sink := &fakeSink{}
	group := NewMultiDeviceGroup(GroupConfig{Name: testGroup}, startedSuite("test_send", "test_reply"), nil, sink,
		WithPrepare(func(context.Context, *MultiDeviceGroup) (Pool, error) {
			return nil, errors.New("hub timeout")
		}),
	)
	require.Error(t, group.Prepare(context.Background()))
	for _, test := range group.Suite().Tests {
		test.LatestRun().AppendError("Test setup failed: hub timeout")
	}

	rt := &recordingT{}
	assert.Nil(t, group.SetupMethod(context.Background(), rt, "test_reply"))
	require.NoError(t, group.TeardownGroup(context.Background()))

	assert.Equal(t, []string{"Test setup failed: hub timeout"}, rt.fatals)
	require.Len(t, sink.tests, 2)
	for _, test := range sink.tests {
		assert.True(t, test.LatestRun().SetupFailed(), test.Name)
	}
}
