package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/ports"
)

const (
	logsDirName  = "logs"
	logsDirMode  = 0o755
	logsFileMode = 0o644
	batchLayout  = "20060102T150405Z"
)

// Sink keeps pulled device logs under <dir>/logs/<batch>/ and hands test
// results to a result repository.
type Sink struct {
	dir     string
	results ports.ResultRepository
	clock   ports.Clock
}

var _ ports.ReportSink = (*Sink)(nil)

func NewSink(dir string, results ports.ResultRepository, clock ports.Clock) *Sink {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Sink{dir: filepath.Clean(dir), results: results, clock: clock}
}

func (s *Sink) LogsDir() string {
	return filepath.Join(s.dir, logsDirName)
}

// SaveLogs writes every log of one hand-off into a fresh batch directory and
// returns the file path of each log by name. Nothing is written when a name
// is unusable as a file name.
func (s *Sink) SaveLogs(ctx context.Context, logs map[string][]byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return map[string]string{}, nil
	}

	names := make([]string, 0, len(logs))
	for name := range logs {
		if err := validLogName(name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	batch, err := s.batchDir()
	if err != nil {
		return nil, err
	}

	paths := make(map[string]string, len(logs))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		path := filepath.Join(batch, name)
		if err := os.WriteFile(path, logs[name], logsFileMode); err != nil {
			return paths, fmt.Errorf("write log %s: %w", name, err)
		}
		paths[name] = path
	}

	return paths, nil
}

func (s *Sink) SaveTest(ctx context.Context, test *domain.Test) error {
	if s.results == nil {
		return errors.New("save test: no result repository configured")
	}
	if err := s.results.Save(ctx, test); err != nil {
		return fmt.Errorf("save test %s: %w", test.Name, err)
	}
	return nil
}

// batchDir creates a directory named after the current time, adding a
// counter when the same second was already used.
func (s *Sink) batchDir() (string, error) {
	root := s.LogsDir()
	if err := os.MkdirAll(root, logsDirMode); err != nil {
		return "", fmt.Errorf("create logs directory: %w", err)
	}

	stamp := s.clock.Now().UTC().Format(batchLayout)
	for i := 0; ; i++ {
		name := stamp
		if i > 0 {
			name = fmt.Sprintf("%s-%d", stamp, i)
		}

		dir := filepath.Join(root, name)
		err := os.Mkdir(dir, logsDirMode)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("create log batch directory: %w", err)
		}
	}
}

func validLogName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid log name %q", name)
	}
	return nil
}
