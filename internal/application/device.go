package application

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/logging"
	"github.com/bnema/devicefarm-e2e/internal/ports"
)

const eventVendor = "appium"

// Device is the handle tests use to act on one remote session of a pool.
// Its ordinal is looked up in the current test run, so the same handle stays
// valid across every method of a group.
type Device struct {
	remote     ports.RemoteSession
	runs       domain.RunSource
	logger     *slog.Logger
	terminated atomic.Bool
}

func NewDevice(remote ports.RemoteSession, runs domain.RunSource, logger *slog.Logger) *Device {
	return &Device{
		remote: remote,
		runs:   runs,
		logger: logging.OrDiscard(logger),
	}
}

func (d *Device) SessionID() domain.SessionID {
	return d.remote.SessionID()
}

func (d *Device) Remote() ports.RemoteSession {
	return d.remote
}

// Ordinal returns the 1-based position of the device in its pool.
func (d *Device) Ordinal() (int, error) {
	return d.runs.CurrentRun().Ordinal(d.SessionID())
}

// Label is the "Device N" prefix used in logs and failure messages. Sessions
// missing from the jobs map are labelled by session id.
func (d *Device) Label() string {
	ordinal, err := d.Ordinal()
	if err != nil {
		return fmt.Sprintf("Device %s", d.SessionID())
	}
	return domain.DeviceLabel(ordinal)
}

// Info logs text prefixed with the device label and records it as a step of
// the current run.
func (d *Device) Info(ctx context.Context, text string) {
	d.step(ctx, d.Label()+": "+text)
}

// InfoRaw is Info without the device prefix.
func (d *Device) InfoRaw(ctx context.Context, text string) {
	d.step(ctx, text)
}

func (d *Device) step(ctx context.Context, line string) {
	d.logger.InfoContext(ctx, line, "session_id", d.SessionID())
	if run := d.runs.CurrentRun(); run != nil {
		run.AddStep(line)
	}
}

// Fail stops the current test with a device-prefixed message.
func (d *Device) Fail(t ports.TestingT, text string) {
	t.Helper()

	msg := d.Label() + ": " + text
	if run := d.runs.CurrentRun(); run != nil {
		run.AppendError(msg)
	}
	t.Fatal(msg)
}

// LogEvent writes a vendor event into the remote session log.
func (d *Device) LogEvent(ctx context.Context, text string) error {
	if err := d.remote.LogEvent(ctx, eventVendor, text); err != nil {
		return fmt.Errorf("log event on %s: %w", d.SessionID(), err)
	}
	return nil
}

// ReportStatus sets the final vendor status of the session. Failures are
// logged and dropped.
func (d *Device) ReportStatus(ctx context.Context, ordinal int, status string) {
	if err := d.remote.ExecuteScript(ctx, domain.StatusHookScript(ordinal, status)); err != nil {
		d.logger.DebugContext(ctx, "report session status failed",
			"session_id", d.SessionID(), "status", status, "error", err)
	}
}

// Terminate quits the remote session once. Later calls are no-ops and quit
// failures are logged and dropped.
func (d *Device) Terminate(ctx context.Context) {
	if !d.terminated.CompareAndSwap(false, true) {
		return
	}
	if err := d.remote.Quit(ctx); err != nil {
		d.logger.DebugContext(ctx, "quit session failed", "session_id", d.SessionID(), "error", err)
	}
}

func (d *Device) Terminated() bool {
	return d.terminated.Load()
}

// PullLog downloads a file from the device and decodes it from base64.
func (d *Device) PullLog(ctx context.Context, path string) ([]byte, error) {
	encoded, err := d.remote.PullFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("pull %s: %w", path, err)
	}

	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return content, nil
}

// AlertText returns the text of a native alert dialog, or "" when none is shown.
func (d *Device) AlertText(ctx context.Context) (string, error) {
	text, err := d.remote.FindElementText(ctx, "id", domain.AlertMessageID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSuchElement) {
			return "", nil
		}
		return "", err
	}
	return text, nil
}

func (d *Device) SessionInfo(jobName string) string {
	return fmt.Sprintf("LambdaTestSessionID=%s job-name=%s", d.SessionID(), jobName)
}
