package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceOrdinalResolvedThroughCurrentRun(t *testing.T) {
	suite := startedSuite("test_send_message")
	device := registeredDevice(suite, newFakeSession("sid-2"), 2)

	ordinal, err := device.Ordinal()
	require.NoError(t, err)
	assert.Equal(t, 2, ordinal)
	assert.Equal(t, "Device 2", device.Label())
}

func TestDeviceOrdinalUnregisteredSession(t *testing.T) {
	suite := startedSuite("test_send_message")
	device := NewDevice(newFakeSession("sid-x"), suite, nil)

	_, err := device.Ordinal()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOrdinalNotRegistered)
	assert.Equal(t, "Device sid-x", device.Label())
}

func TestDeviceInfoRecordsSteps(t *testing.T) {
	suite := startedSuite("test_send_message")
	device := registeredDevice(suite, newFakeSession("sid-1"), 1)

	device.Info(context.Background(), "Sending message")
	device.InfoRaw(context.Background(), "Group step")

	assert.Equal(t, []string{"Device 1: Sending message", "Group step"}, suite.CurrentRun().Steps)
}

func TestDeviceFailStopsTestWithPrefixedMessage(t *testing.T) {
	suite := startedSuite("test_send_message")
	device := registeredDevice(suite, newFakeSession("sid-3"), 3)
	rt := &recordingT{name: "test_send_message"}

	device.Fail(rt, "message not delivered")

	assert.Equal(t, []string{"Device 3: message not delivered"}, rt.fatals)
	assert.Equal(t, "Device 3: message not delivered", suite.CurrentRun().Error)
}

func TestDeviceReportStatusSendsHook(t *testing.T) {
	suite := startedSuite("test_send_message")
	session := newFakeSession("sid-1")
	device := registeredDevice(suite, session, 1)

	device.ReportStatus(context.Background(), 1, domain.StatusPassed)

	assert.Equal(t, []string{
		`lambda-hook: {"action":"setTestStatus","arguments":{"status":"passed","remark":"Device 1"}}`,
	}, session.Scripts())
}

func TestDeviceReportStatusSwallowsErrors(t *testing.T) {
	remote := mocks.NewMockRemoteSession(t)
	remote.EXPECT().SessionID().Return(domain.SessionID("sid-1")).Maybe()
	remote.EXPECT().ExecuteScript(mockAnyContext(), domain.StatusHookScript(1, domain.StatusFailed)).
		Return(domain.ErrSessionDisconnected)

	device := NewDevice(remote, startedSuite("t"), nil)

	assert.NotPanics(t, func() {
		device.ReportStatus(context.Background(), 1, domain.StatusFailed)
	})
}

func TestDeviceTerminateQuitsOnce(t *testing.T) {
	remote := mocks.NewMockRemoteSession(t)
	remote.EXPECT().SessionID().Return(domain.SessionID("sid-1")).Maybe()
	remote.EXPECT().Quit(mockAnyContext()).Return(errors.New("connection reset")).Once()

	device := NewDevice(remote, startedSuite("t"), nil)
	device.Terminate(context.Background())
	device.Terminate(context.Background())

	assert.True(t, device.Terminated())
}

func TestDevicePullLogDecodesBase64(t *testing.T) {
	dir := domain.AppDataDir("", "")
	session := newFakeSession("sid-1").withLogs(dir, "geth output", "api output")
	device := NewDevice(session, startedSuite("t"), nil)

	content, err := device.PullLog(context.Background(), dir+domain.GethLogFile)
	require.NoError(t, err)
	assert.Equal(t, "geth output", string(content))
}

func TestDevicePullLogRejectsInvalidEncoding(t *testing.T) {
	session := newFakeSession("sid-1")
	session.files["/broken.log"] = "not base64!"
	device := NewDevice(session, startedSuite("t"), nil)

	_, err := device.PullLog(context.Background(), "/broken.log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode /broken.log")
}

func TestDeviceAlertText(t *testing.T) {
	session := newFakeSession("sid-1")
	device := NewDevice(session, startedSuite("t"), nil)

	text, err := device.AlertText(context.Background())
	require.NoError(t, err)
	assert.Empty(t, text)

	session.alert = "Status stopped working"
	text, err = device.AlertText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Status stopped working", text)

	session.disconnect()
	_, err = device.AlertText(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionDisconnected)
}

func TestDeviceSessionInfo(t *testing.T) {
	device := NewDevice(newFakeSession("abc123"), startedSuite("t"), nil)

	assert.Equal(t, "LambdaTestSessionID=abc123 job-name=nightly-e2e", device.SessionInfo("nightly-e2e"))
}

func TestDeviceLogEventUsesAppiumVendor(t *testing.T) {
	session := newFakeSession("sid-1")
	device := NewDevice(session, startedSuite("t"), nil)

	require.NoError(t, device.LogEvent(context.Background(), "Started test_send_message"))
	assert.Equal(t, []string{"appium:Started test_send_message"}, session.Events())

}
