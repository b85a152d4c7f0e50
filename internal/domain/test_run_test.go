package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestTestRunOrdinalLookup(t *testing.T) {
	t.Parallel()

	run := NewTestRun(testNow)
	run.RegisterJob("sess-a", 1)
	run.RegisterJob("sess-b", 2)

	ordinal, err := run.Ordinal("sess-b")
	require.NoError(t, err)
	assert.Equal(t, 2, ordinal)

	_, err = run.Ordinal("sess-missing")
	require.ErrorIs(t, err, ErrOrdinalNotRegistered)
	assert.ErrorContains(t, err, "sess-missing")
}

func TestTestRunOrdinalOnNilRun(t *testing.T) {
	t.Parallel()

	var run *TestRun
	_, err := run.Ordinal("sess-a")
	require.ErrorIs(t, err, ErrOrdinalNotRegistered)
}

func TestTestRunAppendErrorKeepsPreviousMessage(t *testing.T) {
	t.Parallel()

	run := NewTestRun(testNow)
	assert.False(t, run.HasError())

	run.AppendError("Not all 3 drivers are created")
	run.AppendError("also Unexpected Alert is shown: 'Oops'")

	assert.Equal(t, "Not all 3 drivers are created; also Unexpected Alert is shown: 'Oops'", run.Error)
	assert.False(t, run.SetupFailed())
}

func TestTestRunSetupFailedMarker(t *testing.T) {
	t.Parallel()

	run := NewTestRun(testNow)
	run.AppendError("Test setup failed: session launch failed")
	assert.True(t, run.SetupFailed())
}

func TestSuiteBeginReusesExistingTest(t *testing.T) {
	t.Parallel()

	suite := NewSuite()
	first := suite.Begin("test_send", testNow)
	suite.Begin("test_receive", testNow)
	again := suite.Begin("test_send", testNow)

	assert.Same(t, first, again)
	assert.Len(t, suite.Tests, 2)
	assert.Len(t, first.TestRuns, 1)
	assert.Same(t, first.LatestRun(), suite.CurrentRun())
	assert.Same(t, first, suite.First())
}

func TestSuiteCurrentRunBeforeBegin(t *testing.T) {
	t.Parallel()

	suite := NewSuite()
	assert.Nil(t, suite.Current())
	assert.Nil(t, suite.CurrentRun())
	assert.Nil(t, suite.First())
}

func TestTestNewRunTracksRetries(t *testing.T) {
	t.Parallel()

	test := &Test{Name: "test_retry"}
	first := test.NewRun(testNow)
	first.AppendError("flaky")
	second := test.NewRun(testNow.Add(time.Minute))

	assert.Same(t, second, test.LatestRun())
	assert.False(t, test.Failed())
	assert.NotEqual(t, first.ID, second.ID)
}
