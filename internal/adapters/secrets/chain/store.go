package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/devicefarm-e2e/internal/adapters/secrets/file"
	passstore "github.com/bnema/devicefarm-e2e/internal/adapters/secrets/pass"
	"github.com/bnema/devicefarm-e2e/internal/ports"
)

// Store tries its backends in order. Reads and writes stop at the first
// backend that succeeds; deletes reach every backend so no stale copy of a
// credential survives.
type Store struct {
	backends []ports.SecretStore
	names    []string
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret store chain has no backends")

type Backend struct {
	Name  string
	Store ports.SecretStore
}

func NewStore(backends ...Backend) (*Store, error) {
	s := &Store{}
	for _, backend := range backends {
		if backend.Store == nil {
			return nil, fmt.Errorf("secret backend %q is nil", backend.Name)
		}
		s.backends = append(s.backends, backend.Store)
		s.names = append(s.names, backend.Name)
	}
	if len(s.backends) == 0 {
		return nil, errNoBackends
	}

	return s, nil
}

// NewPassFirstWithFileFallback prefers pass and falls back to a credentials
// file in fileDir.
func NewPassFirstWithFileFallback(passPrefix string, fileDir string) (*Store, error) {
	return NewStore(
		Backend{Name: "pass", Store: passstore.NewStore(passPrefix)},
		Backend{Name: "file", Store: filestore.NewStore(fileDir)},
	)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs error
	for i, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if shouldStop(err) {
			return err
		}
		errs = errors.Join(errs, fmt.Errorf("%s backend put: %w", s.names[i], err))
	}

	return errs
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs error
	notFound := true
	for i, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if shouldStop(err) {
			return "", err
		}
		if !errors.Is(err, ports.ErrSecretNotFound) {
			notFound = false
		}
		errs = errors.Join(errs, fmt.Errorf("%s backend get: %w", s.names[i], err))
	}

	if notFound {
		return "", fmt.Errorf("secret %q: %w", key, ports.ErrSecretNotFound)
	}
	return "", errs
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs error
	deleted := false
	for i, backend := range s.backends {
		err := backend.Delete(ctx, key)
		if err == nil {
			deleted = true
			continue
		}
		if shouldStop(err) {
			return err
		}
		errs = errors.Join(errs, fmt.Errorf("%s backend delete: %w", s.names[i], err))
	}

	if deleted {
		return nil
	}
	return errs
}

func shouldStop(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
