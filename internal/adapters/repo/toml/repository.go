package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/devicefarm-e2e/internal/config"
	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	resultsFileMode = 0o600
	resultsDirMode  = 0o700
	tempFilePattern = ".results-*.toml.tmp"
)

// Repository stores test results in a single TOML file, one entry per test
// name holding every run of that test.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ResultRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(config.KeyReportResultsPath)
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "reports", "results.toml")
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

// Save replaces the stored entry of test, or appends it when the name is new.
func (r *Repository) Save(ctx context.Context, test *domain.Test) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if test == nil || test.Name == "" {
		return errors.New("save test result: test name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(test)
	updated := false
	for i := range file.Tests {
		if file.Tests[i].Name == encoded.Name {
			file.Tests[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Tests = append(file.Tests, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Test, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	for _, entry := range file.Tests {
		if entry.Name == name {
			return fromSchema(entry), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrTestNotFound, name)
}

func (r *Repository) List(ctx context.Context) ([]*domain.Test, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	tests := make([]*domain.Test, 0, len(file.Tests))
	for _, entry := range file.Tests {
		tests = append(tests, fromSchema(entry))
	}

	return tests, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read results file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode results file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), resultsDirMode); err != nil {
		return fmt.Errorf("create results directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode results file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp results file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp results file: %w", err)
	}
	if err := tempFile.Chmod(resultsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp results file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp results file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace results file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve results path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(test *domain.Test) testSchema {
	runs := make([]runSchema, 0, len(test.TestRuns))
	for _, run := range test.TestRuns {
		jobs := make(map[string]int, len(run.Jobs))
		for id, ordinal := range run.Jobs {
			jobs[string(id)] = ordinal
		}

		runs = append(runs, runSchema{
			ID:        run.ID,
			Error:     run.Error,
			StartedAt: formatTime(run.StartedAt),
			Steps:     run.Steps,
			Jobs:      jobs,
			LogsPaths: run.LogsPaths,
		})
	}

	return testSchema{Name: test.Name, GroupName: test.GroupName, Runs: runs}
}

func fromSchema(entry testSchema) *domain.Test {
	test := &domain.Test{Name: entry.Name, GroupName: entry.GroupName}
	for _, run := range entry.Runs {
		jobs := make(map[domain.SessionID]int, len(run.Jobs))
		for id, ordinal := range run.Jobs {
			jobs[domain.SessionID(id)] = ordinal
		}
		logs := run.LogsPaths
		if logs == nil {
			logs = map[string]string{}
		}

		test.TestRuns = append(test.TestRuns, &domain.TestRun{
			ID:        run.ID,
			Error:     run.Error,
			Steps:     run.Steps,
			Jobs:      jobs,
			LogsPaths: logs,
			StartedAt: parseTime(run.StartedAt),
		})
	}
	return test
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
