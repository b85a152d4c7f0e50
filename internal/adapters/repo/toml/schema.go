package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Tests   []testSchema `toml:"tests"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported results schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type testSchema struct {
	Name      string      `toml:"name"`
	GroupName string      `toml:"group_name,omitempty"`
	Runs      []runSchema `toml:"runs"`
}

type runSchema struct {
	ID        string            `toml:"id"`
	Error     string            `toml:"error,omitempty"`
	StartedAt string            `toml:"started_at,omitempty"`
	Steps     []string          `toml:"steps,omitempty"`
	Jobs      map[string]int    `toml:"jobs,omitempty"`
	LogsPaths map[string]string `toml:"logs_paths,omitempty"`
}
