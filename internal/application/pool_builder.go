package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/logging"
	"github.com/bnema/devicefarm-e2e/internal/ports"
	"github.com/sourcegraph/conc/pool"
)

const DefaultImplicitWait = 5 * time.Second

// Pool maps a device's launch index (ordinal - 1) to its handle.
type Pool map[int]*Device

func (p Pool) Keys() []int {
	keys := make([]int, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

// Devices returns the handles ordered by ordinal.
func (p Pool) Devices() []*Device {
	devices := make([]*Device, 0, len(p))
	for _, key := range p.Keys() {
		devices = append(devices, p[key])
	}
	return devices
}

// Ordinal returns the device with the given 1-based ordinal.
func (p Pool) Ordinal(ordinal int) (*Device, bool) {
	d, ok := p[ordinal-1]
	return d, ok
}

type PoolBuilderConfig struct {
	ImplicitWait time.Duration
	Settings     map[string]any
	Network      domain.ConnectionType
}

func DefaultPoolBuilderConfig() PoolBuilderConfig {
	return PoolBuilderConfig{
		ImplicitWait: DefaultImplicitWait,
		Settings:     map[string]any{"enforceXPath1": true},
		Network:      domain.ConnectionAllNetworkOn,
	}
}

// PoolBuilder opens the sessions of a pool in parallel and prepares them for
// the tests of a group.
type PoolBuilder struct {
	factory ports.SessionFactory
	cfg     PoolBuilderConfig
	logger  *slog.Logger
}

func NewPoolBuilder(factory ports.SessionFactory, cfg PoolBuilderConfig, logger *slog.Logger) *PoolBuilder {
	if cfg.ImplicitWait <= 0 {
		cfg.ImplicitWait = DefaultImplicitWait
	}
	if cfg.Settings == nil {
		cfg.Settings = DefaultPoolBuilderConfig().Settings
	}
	if cfg.Network == domain.ConnectionNone {
		cfg.Network = domain.ConnectionAllNetworkOn
	}

	return &PoolBuilder{factory: factory, cfg: cfg, logger: logging.OrDiscard(logger)}
}

type launchResult struct {
	index   int
	session ports.RemoteSession
	err     error
}

// Build launches quantity sessions at once and waits for all of them.
//
// A session that fails on its own only shrinks the pool: the current run gets
// a "Not all N drivers are created" error and the partial pool is returned.
// A launch failure (domain.ErrLaunchFailed, a malformed response, a panicking
// factory, a canceled context) or a failure while configuring a session aborts the build: every
// session opened so far is marked failed and terminated, and the error is
// returned with a nil pool.
func (b *PoolBuilder) Build(ctx context.Context, runs domain.RunSource, quantity int, caps domain.Capabilities) (Pool, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("build pool: quantity must be at least 1, got %d", quantity)
	}
	run := runs.CurrentRun()
	if run == nil {
		return nil, fmt.Errorf("build pool: %w", domain.ErrNoCurrentTest)
	}

	b.logger.InfoContext(ctx, "launching sessions", "quantity", quantity, "device", deviceName(caps))

	launches := pool.NewWithResults[launchResult]().WithMaxGoroutines(quantity)
	for i := 0; i < quantity; i++ {
		index := i
		launches.Go(func() (result launchResult) {
			result.index = index
			defer func() {
				if r := recover(); r != nil {
					result.session = nil
					result.err = fmt.Errorf("%w: create panicked: %v", domain.ErrLaunchFailed, r)
				}
			}()

			session, err := b.factory.Create(ctx, caps)
			if err == nil && session == nil {
				err = domain.ErrMalformedSession
			}
			result.session, result.err = session, err
			return result
		})
	}
	results := launches.Wait()

	devices := Pool{}
	var launchErr error
	for _, result := range results {
		switch {
		case result.err == nil:
			devices[result.index] = NewDevice(result.session, runs, b.logger)
		case isLaunchFailure(result.err):
			launchErr = errors.Join(launchErr, fmt.Errorf("launch session %d: %w", result.index+1, result.err))
		default:
			b.logger.WarnContext(ctx, "session was not created", "index", result.index, "error", result.err)
		}
	}

	if launchErr != nil {
		return nil, b.abort(ctx, run, devices, launchErr)
	}

	if len(devices) < quantity {
		run.AppendError(fmt.Sprintf("Not all %d drivers are created", quantity))
		b.logger.WarnContext(ctx, "pool is short of sessions", "requested", quantity, "created", len(devices))
	}

	for _, key := range devices.Keys() {
		device := devices[key]
		run.RegisterJob(device.SessionID(), key+1)
		if err := b.configure(ctx, device); err != nil {
			return nil, b.abort(ctx, run, devices, fmt.Errorf("configure session %d: %w", key+1, err))
		}
	}

	return devices, nil
}

func (b *PoolBuilder) configure(ctx context.Context, d *Device) error {
	remote := d.Remote()
	if err := remote.SetImplicitWait(ctx, b.cfg.ImplicitWait); err != nil {
		return fmt.Errorf("set implicit wait: %w", err)
	}
	if err := remote.UpdateSettings(ctx, b.cfg.Settings); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if err := remote.SetNetworkConnection(ctx, b.cfg.Network); err != nil {
		return fmt.Errorf("set network connection: %w", err)
	}
	return nil
}

func (b *PoolBuilder) abort(ctx context.Context, run *domain.TestRun, devices Pool, cause error) error {
	run.AppendError(cause.Error())
	b.logger.ErrorContext(ctx, "pool launch failed, releasing created sessions", "created", len(devices), "error", cause)

	cleanupCtx := context.WithoutCancel(ctx)
	for _, key := range devices.Keys() {
		device := devices[key]
		device.ReportStatus(cleanupCtx, key+1, domain.StatusFailed)
		device.Terminate(cleanupCtx)
	}

	return fmt.Errorf("build pool: %w", cause)
}

func isLaunchFailure(err error) bool {
	return errors.Is(err, domain.ErrLaunchFailed) ||
		errors.Is(err, domain.ErrMalformedSession) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func deviceName(caps domain.Capabilities) string {
	if caps.LT == nil {
		return ""
	}
	return caps.LT.DeviceName
}
