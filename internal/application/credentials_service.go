package application

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/ports"
)

const (
	UsernameSecretKey  = "devicefarm/lambdatest/username"
	AccessKeySecretKey = "devicefarm/lambdatest/access_key"

	UsernameEnv  = "LT_USERNAME"
	AccessKeyEnv = "LT_ACCESS_KEY"

	DefaultHubHost = "mobile-hub.lambdatest.com"
)

type Credentials struct {
	Username  string
	AccessKey string
}

func (c Credentials) Empty() bool {
	return c.Username == "" || c.AccessKey == ""
}

type CredentialsService struct {
	store  ports.SecretStore
	getenv func(string) string
}

func NewCredentialsService(store ports.SecretStore) *CredentialsService {
	return &CredentialsService{store: store, getenv: os.Getenv}
}

func (s *CredentialsService) Set(ctx context.Context, creds Credentials) error {
	if strings.TrimSpace(creds.Username) == "" || strings.TrimSpace(creds.AccessKey) == "" {
		return errors.New("username and access key are required")
	}

	if err := s.store.Put(ctx, UsernameSecretKey, creds.Username); err != nil {
		return fmt.Errorf("store username: %w", err)
	}
	if err := s.store.Put(ctx, AccessKeySecretKey, creds.AccessKey); err != nil {
		if rollbackErr := s.store.Delete(ctx, UsernameSecretKey); rollbackErr != nil {
			return fmt.Errorf("store access key and rollback username: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("store access key: %w", err)
	}

	return nil
}

// Get resolves credentials from the environment first, then from the store.
func (s *CredentialsService) Get(ctx context.Context) (Credentials, error) {
	creds := Credentials{
		Username:  s.getenv(UsernameEnv),
		AccessKey: s.getenv(AccessKeyEnv),
	}
	if !creds.Empty() {
		return creds, nil
	}

	username, err := s.store.Get(ctx, UsernameSecretKey)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", domain.ErrCredentialsNotFound, err)
	}
	accessKey, err := s.store.Get(ctx, AccessKeySecretKey)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", domain.ErrCredentialsNotFound, err)
	}

	return Credentials{Username: username, AccessKey: accessKey}, nil
}

func (s *CredentialsService) Remove(ctx context.Context) error {
	var errs error
	for _, key := range []string{UsernameSecretKey, AccessKeySecretKey} {
		if err := s.store.Delete(ctx, key); err != nil {
			errs = errors.Join(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errs
}

// HubURL returns the authenticated WebDriver endpoint for host.
func HubURL(host string, creds Credentials) string {
	if host == "" {
		host = DefaultHubHost
	}
	u := url.URL{
		Scheme: "https",
		User:   url.UserPassword(creds.Username, creds.AccessKey),
		Host:   host,
		Path:   "/wd/hub",
	}
	return u.String()
}
