package application

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/ports"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeSession struct {
	id domain.SessionID

	mu           sync.Mutex
	scripts      []string
	events       []string
	files        map[string]string
	alert        string
	quits        int
	implicitWait time.Duration
	settings     map[string]any
	network      domain.ConnectionType
	disconnected bool
	configureErr error
}

var _ ports.RemoteSession = (*fakeSession)(nil)

func newFakeSession(id string) *fakeSession {
	return &fakeSession{id: domain.SessionID(id), files: map[string]string{}}
}

func (s *fakeSession) withLogs(dir string, geth, requests string) *fakeSession {
	s.files[dir+domain.GethLogFile] = base64.StdEncoding.EncodeToString([]byte(geth))
	s.files[dir+domain.RequestsLogFile] = base64.StdEncoding.EncodeToString([]byte(requests))
	return s
}

func (s *fakeSession) disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnected = true
}

func (s *fakeSession) check() error {
	if s.disconnected {
		return fmt.Errorf("session %s: %w", s.id, domain.ErrSessionDisconnected)
	}
	return nil
}

func (s *fakeSession) SessionID() domain.SessionID {
	return s.id
}

func (s *fakeSession) ExecuteScript(_ context.Context, script string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return err
	}
	s.scripts = append(s.scripts, script)
	return nil
}

func (s *fakeSession) PullFile(_ context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return "", err
	}
	content, ok := s.files[path]
	if !ok {
		return "", fmt.Errorf("no such file %s", path)
	}
	return content, nil
}

func (s *fakeSession) SetImplicitWait(_ context.Context, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.configureErr != nil {
		return s.configureErr
	}
	s.implicitWait = timeout
	return nil
}

func (s *fakeSession) UpdateSettings(_ context.Context, settings map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}

func (s *fakeSession) SetNetworkConnection(_ context.Context, connection domain.ConnectionType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.network = connection
	return nil
}

func (s *fakeSession) LogEvent(_ context.Context, vendor string, event string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return err
	}
	s.events = append(s.events, vendor+":"+event)
	return nil
}

func (s *fakeSession) FindElementText(_ context.Context, _ string, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return "", err
	}
	if value == domain.AlertMessageID && s.alert != "" {
		return s.alert, nil
	}
	return "", domain.ErrNoSuchElement
}

func (s *fakeSession) Quit(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quits++
	return s.check()
}

func (s *fakeSession) Scripts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.scripts...)
}

func (s *fakeSession) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func (s *fakeSession) Quits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quits
}

func (s *fakeSession) statusScripts() []string {
	var statuses []string
	for _, script := range s.Scripts() {
		if strings.HasPrefix(script, "lambda-hook: ") {
			statuses = append(statuses, script)
		}
	}
	return statuses
}

// fakeFactory hands out prepared outcomes in call order.
type fakeFactory struct {
	outcomes []factoryOutcome
	calls    atomic.Int32
}

type factoryOutcome struct {
	session   *fakeSession
	err       error
	panicWith any
}

func (f *fakeFactory) Create(_ context.Context, _ domain.Capabilities) (ports.RemoteSession, error) {
	i := int(f.calls.Add(1)) - 1
	if i >= len(f.outcomes) {
		return nil, fmt.Errorf("unexpected create call %d", i)
	}
	outcome := f.outcomes[i]
	if outcome.panicWith != nil {
		panic(outcome.panicWith)
	}
	if outcome.err != nil {
		return nil, outcome.err
	}
	if outcome.session == nil {
		return nil, nil
	}
	return outcome.session, nil
}

func sessionsFactory(sessions ...*fakeSession) *fakeFactory {
	outcomes := make([]factoryOutcome, 0, len(sessions))
	for _, s := range sessions {
		outcomes = append(outcomes, factoryOutcome{session: s})
	}
	return &fakeFactory{outcomes: outcomes}
}

type fakeSink struct {
	mu       sync.Mutex
	logCalls []map[string][]byte
	tests    []*domain.Test
	saveErr  error
}

var _ ports.ReportSink = (*fakeSink)(nil)

func (s *fakeSink) SaveLogs(_ context.Context, logs map[string][]byte) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logCalls = append(s.logCalls, logs)

	paths := make(map[string]string, len(logs))
	for name := range logs {
		paths[name] = "/reports/logs/" + name
	}
	return paths, nil
}

func (s *fakeSink) SaveTest(_ context.Context, test *domain.Test) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.tests = append(s.tests, test)
	return nil
}

// recordingT captures failures without stopping the calling goroutine.
type recordingT struct {
	name   string
	errors []string
	fatals []string
}

var _ ports.TestingT = (*recordingT)(nil)

func (t *recordingT) Helper()      {}
func (t *recordingT) Name() string { return t.name }

func (t *recordingT) Error(args ...any) {
	t.errors = append(t.errors, fmt.Sprint(args...))
}

func (t *recordingT) Fatal(args ...any) {
	t.fatals = append(t.fatals, fmt.Sprint(args...))
}

func (t *recordingT) failed() bool {
	return len(t.errors) > 0 || len(t.fatals) > 0
}

// registeredDevice builds a device whose session already has ordinal in the
// current run of suite.
func registeredDevice(suite *domain.Suite, session *fakeSession, ordinal int) *Device {
	suite.CurrentRun().RegisterJob(session.SessionID(), ordinal)
	return NewDevice(session, suite, nil)
}

func startedSuite(names ...string) *domain.Suite {
	suite := domain.NewSuite()
	for _, name := range names {
		suite.Begin(name, testNow)
	}
	if len(names) > 0 {
		suite.Begin(names[0], testNow)
	}
	return suite
}

func mockAnyContext() interface{} {
	return mock.Anything
}
