package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/devicefarm-e2e/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	storeDirMode   = 0o700
	secretFileMode = 0o600
	FileName       = "credentials.toml"
)

// Store keeps secrets in one owner-only TOML file, keyed by secret name.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

// NewStore returns a store backed by <dir>/credentials.toml.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(filepath.Clean(dir), FileName)}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := validKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	secrets, err := s.read()
	if err != nil {
		return err
	}
	secrets[key] = value

	return s.write(secrets)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := validKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	secrets, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := secrets[key]
	if !ok {
		return "", fmt.Errorf("file secret %q: %w", key, ports.ErrSecretNotFound)
	}
	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := validKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	secrets, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := secrets[key]; !ok {
		return nil
	}
	delete(secrets, key)

	return s.write(secrets)
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read secrets file: %w", err)
	}

	secrets := map[string]string{}
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("decode secrets file: %w", err)
	}
	return secrets, nil
}

func (s *Store) write(secrets map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create secrets directory: %w", err)
	}

	data, err := toml.Marshal(secrets)
	if err != nil {
		return fmt.Errorf("encode secrets file: %w", err)
	}

	if err := os.WriteFile(s.path, data, secretFileMode); err != nil {
		return fmt.Errorf("write secrets file: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(s.path, secretFileMode); err != nil {
		return fmt.Errorf("chmod secrets file: %w", err)
	}
	return nil
}

func validKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}
	if strings.ContainsAny(trimmed, "\n\r") {
		return "", fmt.Errorf("invalid secret key %q", key)
	}
	return trimmed, nil
}
