package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	resultsview "github.com/bnema/devicefarm-e2e/internal/adapters/render/results"
	tomlrepo "github.com/bnema/devicefarm-e2e/internal/adapters/repo/toml"
	locallogs "github.com/bnema/devicefarm-e2e/internal/adapters/report/local"
	chainstore "github.com/bnema/devicefarm-e2e/internal/adapters/secrets/chain"
	"github.com/bnema/devicefarm-e2e/internal/application"
	"github.com/bnema/devicefarm-e2e/internal/config"
	"github.com/bnema/devicefarm-e2e/internal/logging"
	"github.com/bnema/devicefarm-e2e/internal/ports"
	"github.com/spf13/viper"
)

const (
	configPathEnv  = "DFE_CONFIG"
	passPrefixEnv  = "DFE_PASS_PREFIX"
	hubTimeout     = 15 * time.Second
	defaultPassDir = "devicefarm-e2e"
)

type app struct {
	cfg             *config.Config
	viper           *viper.Viper
	configPath      string
	results         *application.ResultsService
	credentials     *application.CredentialsService
	sink            *locallogs.Sink
	resultsRenderer func([]application.TestResult, resultsview.RenderOptions) (string, error)
	httpClient      *http.Client
	logger          *slog.Logger
}

func wireApp(logOutput io.Writer) (*app, error) {
	v := viper.New()
	configPath := os.Getenv(configPathEnv)

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}
	if configPath == "" {
		configPath, err = config.Path()
		if err != nil {
			return nil, err
		}
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOutput)

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire result repository: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(envOrDefault(passPrefixEnv, defaultPassDir), cfg.Secrets.Dir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:             cfg,
		viper:           v,
		configPath:      configPath,
		results:         application.NewResultsService(repo),
		credentials:     application.NewCredentialsService(secretStore),
		sink:            locallogs.NewSink(cfg.Report.Dir, repo, ports.SystemClock{}),
		resultsRenderer: resultsview.Render,
		httpClient:      &http.Client{Timeout: hubTimeout},
		logger:          logger,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
