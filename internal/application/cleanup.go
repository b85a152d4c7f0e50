package application

import (
	"context"
	"fmt"
	"log/slog"
)

// tryCleanup runs one best-effort teardown step. Errors and panics are logged
// and swallowed so one unreachable device never blocks the others.
func tryCleanup(ctx context.Context, logger *slog.Logger, op string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WarnContext(ctx, "cleanup step panicked", "op", op, "panic", fmt.Sprint(r))
		}
	}()

	if err := fn(); err != nil {
		logger.WarnContext(ctx, "cleanup step failed", "op", op, "error", err)
	}
}

// logBundle pairs artifact names with their content. A name is registered
// before its content is fetched, so a failed fetch leaves the two lists out
// of step and the bundle refuses to zip.
type logBundle struct {
	names    []string
	contents [][]byte
}

func (b *logBundle) pull(ctx context.Context, d *Device, name, path string) error {
	b.names = append(b.names, name)

	content, err := d.PullLog(ctx, path)
	if err != nil {
		return err
	}
	b.contents = append(b.contents, content)
	return nil
}

func (b *logBundle) zip() (map[string][]byte, bool) {
	if len(b.names) != len(b.contents) {
		return nil, false
	}

	logs := make(map[string][]byte, len(b.names))
	for i, name := range b.names {
		logs[name] = b.contents[i]
	}
	return logs, true
}
