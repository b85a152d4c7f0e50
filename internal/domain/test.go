package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SetupFailedMarker is the substring that flags a run whose group setup failed.
const SetupFailedMarker = "setup failed"

type SessionID string

type TestRun struct {
	ID        string
	Error     string
	Steps     []string
	Jobs      map[SessionID]int
	LogsPaths map[string]string
	StartedAt time.Time
}

func NewTestRun(now time.Time) *TestRun {
	return &TestRun{
		ID:        uuid.NewString(),
		Jobs:      map[SessionID]int{},
		LogsPaths: map[string]string{},
		StartedAt: now,
	}
}

func (r *TestRun) HasError() bool {
	return r != nil && r.Error != ""
}

func (r *TestRun) SetupFailed() bool {
	return r.HasError() && strings.Contains(r.Error, SetupFailedMarker)
}

// AppendError adds msg after the existing error, separated by "; ".
func (r *TestRun) AppendError(msg string) {
	if r.Error == "" {
		r.Error = msg
		return
	}
	r.Error = r.Error + "; " + msg
}

func (r *TestRun) AddStep(step string) {
	r.Steps = append(r.Steps, step)
}

func (r *TestRun) RegisterJob(id SessionID, ordinal int) {
	if r.Jobs == nil {
		r.Jobs = map[SessionID]int{}
	}
	r.Jobs[id] = ordinal
}

func (r *TestRun) Ordinal(id SessionID) (int, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: %s (no test run)", ErrOrdinalNotRegistered, id)
	}
	ordinal, ok := r.Jobs[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrOrdinalNotRegistered, id)
	}
	return ordinal, nil
}

func (r *TestRun) AttachLogs(paths map[string]string) {
	if r.LogsPaths == nil {
		r.LogsPaths = map[string]string{}
	}
	for name, path := range paths {
		r.LogsPaths[name] = path
	}
}

type Test struct {
	Name      string
	GroupName string
	TestRuns  []*TestRun
}

func (t *Test) NewRun(now time.Time) *TestRun {
	run := NewTestRun(now)
	t.TestRuns = append(t.TestRuns, run)
	return run
}

// LatestRun returns the most recent run, or nil before the test started.
func (t *Test) LatestRun() *TestRun {
	if t == nil || len(t.TestRuns) == 0 {
		return nil
	}
	return t.TestRuns[len(t.TestRuns)-1]
}

func (t *Test) Failed() bool {
	return t.LatestRun().HasError()
}
