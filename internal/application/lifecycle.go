package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/logging"
	"github.com/bnema/devicefarm-e2e/internal/ports"
)

// Lifecycle is the per-method contract a test group implements.
type Lifecycle interface {
	SetupMethod(ctx context.Context, t ports.TestingT, name string) *Errors
	TeardownMethod(ctx context.Context, t ports.TestingT, name string)
	Environment() string
}

type GroupState int

const (
	GroupUnprepared GroupState = iota
	GroupPreparing
	GroupReady
	GroupTearingDown
	GroupClosed
)

func (s GroupState) String() string {
	switch s {
	case GroupUnprepared:
		return "unprepared"
	case GroupPreparing:
		return "preparing"
	case GroupReady:
		return "ready"
	case GroupTearingDown:
		return "tearing down"
	case GroupClosed:
		return "closed"
	default:
		return fmt.Sprintf("GroupState(%d)", int(s))
	}
}

// PrepareFunc allocates the devices of a group. It runs inside the group
// scope, which stays alive until TeardownGroup.
type PrepareFunc func(ctx context.Context, g *MultiDeviceGroup) (Pool, error)

type GroupConfig struct {
	Name        string
	Spec        domain.DeviceSpec
	Environment string
	AppPackage  string
	APK         string
	JobName     string
}

// MultiDeviceGroup shares one pool of remote devices between all test
// methods of a group and owns the cleanup of that pool.
type MultiDeviceGroup struct {
	cfg     GroupConfig
	suite   *domain.Suite
	builder *PoolBuilder
	sink    ports.ReportSink
	clock   ports.Clock
	logger  *slog.Logger
	prepare PrepareFunc

	state  GroupState
	pool   Pool
	errors *Errors
	cancel context.CancelFunc
	// runs whose method teardown already ran
	tornDown map[*domain.TestRun]bool
}

var _ Lifecycle = (*MultiDeviceGroup)(nil)

type GroupOption func(*MultiDeviceGroup)

// WithPrepare replaces the default pool allocation.
func WithPrepare(fn PrepareFunc) GroupOption {
	return func(g *MultiDeviceGroup) {
		g.prepare = fn
	}
}

func WithClock(clock ports.Clock) GroupOption {
	return func(g *MultiDeviceGroup) {
		if clock != nil {
			g.clock = clock
		}
	}
}

func WithLogger(logger *slog.Logger) GroupOption {
	return func(g *MultiDeviceGroup) {
		g.logger = logging.OrDiscard(logger)
	}
}

func NewMultiDeviceGroup(cfg GroupConfig, suite *domain.Suite, builder *PoolBuilder, sink ports.ReportSink, opts ...GroupOption) *MultiDeviceGroup {
	if suite == nil {
		suite = domain.NewSuite()
	}

	g := &MultiDeviceGroup{
		cfg:     cfg,
		suite:   suite,
		builder: builder,
		sink:    sink,
		clock:   ports.SystemClock{},
		logger:  logging.Discard(),

		tornDown: map[*domain.TestRun]bool{},
	}
	g.prepare = buildPool
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("group", cfg.Name)

	return g
}

func buildPool(ctx context.Context, g *MultiDeviceGroup) (Pool, error) {
	if g.builder == nil {
		return nil, errors.New("no pool builder configured")
	}

	spec := g.cfg.Spec
	if spec.Name == "" {
		spec.Name = g.cfg.Name
	}
	caps, err := spec.Capabilities()
	if err != nil {
		return nil, err
	}

	return g.builder.Build(ctx, g.suite, spec.Quantity, caps)
}

func (g *MultiDeviceGroup) Name() string {
	return g.cfg.Name
}

func (g *MultiDeviceGroup) Suite() *domain.Suite {
	return g.suite
}

func (g *MultiDeviceGroup) Pool() Pool {
	return g.pool
}

func (g *MultiDeviceGroup) State() GroupState {
	return g.state
}

// Errors returns the aggregator of the running method, nil before the first
// SetupMethod.
func (g *MultiDeviceGroup) Errors() *Errors {
	return g.errors
}

func (g *MultiDeviceGroup) Environment() string {
	return g.cfg.Environment
}

// LogsDir is the on-device directory holding the app logs.
func (g *MultiDeviceGroup) LogsDir() string {
	return domain.AppDataDir(g.cfg.AppPackage, g.cfg.APK)
}

func (g *MultiDeviceGroup) currentRun() *domain.TestRun {
	return g.suite.CurrentRun()
}

// Prepare allocates the pool once for the whole group. Whatever pool the
// prepare step produced is kept even when it fails, and the group always
// ends up Ready; SetupMethod refuses to run tests on an empty pool.
//
// The group scope handed to the prepare step bounds session launch only and
// is canceled by TeardownGroup. Per-method calls run on the caller's context.
func (g *MultiDeviceGroup) Prepare(ctx context.Context) (err error) {
	if g.state != GroupUnprepared {
		return fmt.Errorf("prepare group %s: already %s", g.cfg.Name, g.state)
	}

	g.state = GroupPreparing
	g.suite.SetGroupName(g.cfg.Name)

	scope, cancel := context.WithCancel(ctx)
	g.cancel = cancel

	var pool Pool
	defer func() {
		g.pool = pool
		g.state = GroupReady
	}()

	pool, err = g.prepare(scope, g)
	if err != nil {
		g.logger.ErrorContext(ctx, "group preparation failed", "error", err)
		return fmt.Errorf("prepare group %s: %w", g.cfg.Name, err)
	}

	g.logger.InfoContext(ctx, "group prepared", "devices", len(pool))
	return nil
}

// SetupMethod starts test method name on every device and returns the error
// aggregator for it. It fails t when the group has no devices.
func (g *MultiDeviceGroup) SetupMethod(ctx context.Context, t ports.TestingT, name string) *Errors {
	t.Helper()

	if g.state != GroupReady {
		t.Fatal(fmt.Sprintf("%s: group %s is %s", domain.ErrGroupNotReady, g.cfg.Name, g.state))
		return nil
	}

	test := g.suite.Begin(name, g.clock.Now())
	test.GroupName = g.cfg.Name
	run := test.LatestRun()

	if len(g.pool) == 0 {
		msg := run.Error
		if msg == "" {
			msg = domain.ErrEmptyPool.Error()
		}
		t.Fatal(msg)
		return nil
	}

	if len(run.Jobs) == 0 {
		for key, device := range g.pool {
			run.RegisterJob(device.SessionID(), key+1)
		}
	}

	for _, device := range g.pool.Devices() {
		if err := device.Remote().ExecuteScript(ctx, domain.TestCaseStartScript(name)); err != nil {
			device.Fail(t, fmt.Sprintf("mark test case start: %v", err))
			return nil
		}
		if err := device.LogEvent(ctx, "Started "+name); err != nil {
			device.Fail(t, err.Error())
			return nil
		}
	}

	g.errors = NewErrors(g.suite, g.logger)
	return g.errors
}

// TeardownMethod collects session info, unexpected alerts and both app logs
// from every device. Nothing here fails the test. It runs once per test run
// and does nothing once the group is torn down.
func (g *MultiDeviceGroup) TeardownMethod(ctx context.Context, t ports.TestingT, name string) {
	t.Helper()

	run := g.currentRun()
	if run == nil || g.state != GroupReady || g.tornDown[run] {
		return
	}
	g.tornDown[run] = true

	bundle := &logBundle{}
	for _, device := range g.pool.Devices() {
		tryCleanup(ctx, g.logger, "collect method logs", func() error {
			return g.collectMethodLogs(ctx, device, name, run, bundle)
		})
	}

	logs, ok := bundle.zip()
	if !ok {
		g.logger.WarnContext(ctx, "log names and contents differ, skipping log upload",
			"test", name, "names", len(bundle.names), "contents", len(bundle.contents))
		return
	}
	if len(logs) == 0 {
		return
	}

	tryCleanup(ctx, g.logger, "save method logs", func() error {
		paths, err := g.sink.SaveLogs(ctx, logs)
		if err != nil {
			return err
		}
		run.AttachLogs(paths)
		return nil
	})
}

func (g *MultiDeviceGroup) collectMethodLogs(ctx context.Context, d *Device, name string, run *domain.TestRun, bundle *logBundle) error {
	ordinal, err := d.Ordinal()
	if err != nil {
		return err
	}

	g.logger.InfoContext(ctx, d.SessionInfo(g.cfg.JobName))
	if err := g.addAlertTextToReport(ctx, d, run); err != nil {
		return err
	}

	dir := g.LogsDir()
	if err := bundle.pull(ctx, d, domain.GethLogName(name, ordinal), dir+domain.GethLogFile); err != nil {
		return err
	}
	return bundle.pull(ctx, d, domain.RequestsLogName(name, ordinal), dir+domain.RequestsLogFile)
}

func (g *MultiDeviceGroup) addAlertTextToReport(ctx context.Context, d *Device, run *domain.TestRun) error {
	text, err := d.AlertText(ctx)
	switch {
	case errors.Is(err, domain.ErrSessionDisconnected):
		run.AppendError("\n RemoteDisconnected")
		return err
	case err != nil:
		return err
	case text != "":
		run.AppendError(fmt.Sprintf("also Unexpected Alert is shown: '%s'", text))
	}
	return nil
}

// TeardownGroup releases every session of the pool and reports every test.
// When the group setup failed, both app logs are pulled from each device and
// attached to all tests of the batch. Calling it again is a no-op.
func (g *MultiDeviceGroup) TeardownGroup(ctx context.Context) error {
	if g.state == GroupTearingDown || g.state == GroupClosed {
		return nil
	}
	g.state = GroupTearingDown
	defer func() {
		g.release()
		g.state = GroupClosed
	}()

	failed := g.setupFailed()
	status := domain.StatusPassed
	if failed {
		status = domain.StatusFailed
	}

	bundle := &logBundle{}
	dir := g.LogsDir()
	for _, key := range g.pool.Keys() {
		device := g.pool[key]
		ordinal := key + 1

		if failed {
			tryCleanup(ctx, g.logger, "pull geth log", func() error {
				return bundle.pull(ctx, device, domain.GethLogName(g.cfg.Name, ordinal), dir+domain.GethLogFile)
			})
			tryCleanup(ctx, g.logger, "pull requests log", func() error {
				return bundle.pull(ctx, device, domain.RequestsLogName(g.cfg.Name, ordinal), dir+domain.RequestsLogFile)
			})
		}

		device.ReportStatus(ctx, ordinal, status)
		device.Terminate(ctx)
	}

	var paths map[string]string
	if logs, ok := bundle.zip(); !ok {
		g.logger.WarnContext(ctx, "log names and contents differ, skipping group log upload")
	} else if len(logs) > 0 {
		tryCleanup(ctx, g.logger, "save group logs", func() error {
			saved, err := g.sink.SaveLogs(ctx, logs)
			paths = saved
			return err
		})
	}

	var errs error
	for _, test := range g.suite.Tests {
		if failed && len(paths) > 0 {
			if run := test.LatestRun(); run != nil {
				run.AttachLogs(paths)
			}
		}
		if err := g.sink.SaveTest(ctx, test); err != nil {
			errs = errors.Join(errs, fmt.Errorf("save test %s: %w", test.Name, err))
		}
	}

	g.logger.InfoContext(ctx, "group closed", "status", status, "tests", len(g.suite.Tests))
	return errs
}

func (g *MultiDeviceGroup) setupFailed() bool {
	first := g.suite.First()
	if first == nil {
		return false
	}
	return first.LatestRun().SetupFailed()
}

func (g *MultiDeviceGroup) release() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
