package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/logging"
	"github.com/bnema/devicefarm-e2e/internal/ports"
)

// Errors collects device errors raised during one test method so the test
// can keep going and fail once with all of them.
type Errors struct {
	mu     sync.Mutex
	queue  []string
	runs   domain.RunSource
	logger *slog.Logger
}

func NewErrors(runs domain.RunSource, logger *slog.Logger) *Errors {
	return &Errors{runs: runs, logger: logging.OrDiscard(logger)}
}

// Record queues errs for d. errs must be a string, a []string or a []any
// holding only strings; anything else returns domain.ErrInvalidErrors and
// leaves the queue untouched.
func (e *Errors) Record(ctx context.Context, d *Device, errs any) error {
	msgs, err := errorMessages(errs)
	if err != nil {
		return err
	}

	for _, msg := range msgs {
		e.add(ctx, d, msg)
	}
	return nil
}

// Add is Record for callers that already hold strings.
func (e *Errors) Add(ctx context.Context, d *Device, msgs ...string) {
	for _, msg := range msgs {
		e.add(ctx, d, msg)
	}
}

func (e *Errors) add(ctx context.Context, d *Device, msg string) {
	text := d.Label() + ": " + msg

	e.logger.ErrorContext(ctx, text, "session_id", d.SessionID())
	if err := d.LogEvent(ctx, text); err != nil {
		e.logger.DebugContext(ctx, "forward error to session log", "error", err)
	}

	e.mu.Lock()
	e.queue = append(e.queue, text)
	e.mu.Unlock()
}

func (e *Errors) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// Drain returns the queued errors and empties the queue in one step.
func (e *Errors) Drain() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	drained := e.queue
	e.queue = nil
	return drained
}

// FlushAndFail fails t with every queued error joined by newlines. It does
// nothing when the queue is empty.
func (e *Errors) FlushAndFail(t ports.TestingT) {
	t.Helper()

	msgs := e.Drain()
	if len(msgs) == 0 {
		return
	}

	msg := JoinErrors(msgs)
	if e.runs != nil {
		if run := e.runs.CurrentRun(); run != nil {
			run.AppendError(msg)
		}
	}
	t.Fatal(msg)
}

func JoinErrors(msgs []string) string {
	return strings.Join(msgs, "\n ")
}

func errorMessages(errs any) ([]string, error) {
	switch v := errs.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		msgs := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list item of type %T", domain.ErrInvalidErrors, item)
			}
			msgs = append(msgs, s)
		}
		return msgs, nil
	default:
		return nil, fmt.Errorf("%w: got %T", domain.ErrInvalidErrors, errs)
	}
}
