package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/devicefarm-e2e/internal/application"
	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".devicefarm"
	envPrefix  = "DFE"

	KeyEnv                 = "env"
	KeyFarmHubHost         = "farm.hub_host"
	KeyFarmBuild           = "farm.build"
	KeyFarmJobName         = "farm.job_name"
	KeyAppAPK              = "app.apk"
	KeyAppURL              = "app.url"
	KeyAppPackage          = "app.package"
	KeyDeviceKind          = "device.kind"
	KeyDeviceName          = "device.name"
	KeyDevicePlatform      = "device.platform_version"
	KeyDeviceQuantity      = "device.quantity"
	KeySessionImplicitWait = "session.implicit_wait"
	KeyReportDir           = "report.dir"
	KeyReportResultsPath   = "report.results_path"
	KeySecretsDir          = "secrets.dir"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"

	DefaultHubHost      = "mobile-hub.lambdatest.com"
	DefaultEnv          = "lt"
	DefaultQuantity     = 2
	DefaultImplicitWait = 5 * time.Second
	resultsFileName     = "results.toml"
)

type Config struct {
	Env     string  `mapstructure:"env"`
	Farm    Farm    `mapstructure:"farm"`
	App     App     `mapstructure:"app"`
	Device  Device  `mapstructure:"device"`
	Session Session `mapstructure:"session"`
	Report  Report  `mapstructure:"report"`
	Secrets Secrets `mapstructure:"secrets"`
	Log     Log     `mapstructure:"log"`
}

type Farm struct {
	HubHost string `mapstructure:"hub_host"`
	Build   string `mapstructure:"build"`
	JobName string `mapstructure:"job_name"`
}

// App points at the build under test. URL is the farm's app id (lt://...),
// APK is the file name the build was uploaded from.
type App struct {
	APK     string `mapstructure:"apk"`
	URL     string `mapstructure:"url"`
	Package string `mapstructure:"package"`
}

type Device struct {
	Kind            string `mapstructure:"kind"`
	Name            string `mapstructure:"name"`
	PlatformVersion int    `mapstructure:"platform_version"`
	Quantity        int    `mapstructure:"quantity"`
}

type Session struct {
	ImplicitWait time.Duration `mapstructure:"implicit_wait"`
}

type Report struct {
	Dir         string `mapstructure:"dir"`
	ResultsPath string `mapstructure:"results_path"`
}

type Secrets struct {
	Dir string `mapstructure:"dir"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads ~/.devicefarm/config.toml (or path when set) into v, overlays
// DFE_* environment variables and returns the decoded configuration. A
// missing default config file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	SetDefaults(v, dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if cfg.Report.ResultsPath == "" {
		cfg.Report.ResultsPath = filepath.Join(cfg.Report.Dir, resultsFileName)
	}
	v.Set(KeyReportDir, cfg.Report.Dir)
	v.Set(KeyReportResultsPath, cfg.Report.ResultsPath)
	v.Set(KeySecretsDir, cfg.Secrets.Dir)

	return &cfg, nil
}

func SetDefaults(v *viper.Viper, dir string) {
	v.SetDefault(KeyEnv, DefaultEnv)
	v.SetDefault(KeyFarmHubHost, DefaultHubHost)
	v.SetDefault(KeyFarmBuild, "")
	v.SetDefault(KeyFarmJobName, "")
	v.SetDefault(KeyAppAPK, "")
	v.SetDefault(KeyAppURL, "")
	v.SetDefault(KeyAppPackage, domain.DefaultAppPackage)
	v.SetDefault(KeyDeviceKind, string(domain.DeviceKindEmulator))
	v.SetDefault(KeyDeviceName, "")
	v.SetDefault(KeyDevicePlatform, domain.DefaultPlatformVersion)
	v.SetDefault(KeyDeviceQuantity, DefaultQuantity)
	v.SetDefault(KeySessionImplicitWait, DefaultImplicitWait.String())
	v.SetDefault(KeyReportDir, filepath.Join(dir, "reports"))
	v.SetDefault(KeyReportResultsPath, "")
	v.SetDefault(KeySecretsDir, filepath.Join(dir, "secrets"))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

func (c *Config) expandPaths() error {
	for _, path := range []*string{&c.Report.Dir, &c.Report.ResultsPath, &c.Secrets.Dir} {
		if *path == "" {
			continue
		}
		expanded, err := homedir.Expand(*path)
		if err != nil {
			return fmt.Errorf("expand path %s: %w", *path, err)
		}
		*path = expanded
	}
	return nil
}

// DeviceSpec describes the pool a group named name asks the farm for.
func (c *Config) DeviceSpec(name string) domain.DeviceSpec {
	return domain.DeviceSpec{
		Kind:            domain.DeviceKind(c.Device.Kind),
		Quantity:        c.Device.Quantity,
		PlatformVersion: c.Device.PlatformVersion,
		DeviceName:      c.Device.Name,
		AppURL:          c.App.URL,
		Build:           c.Farm.Build,
		Name:            name,
	}
}

// PoolBuilder returns the session settings applied to every launched session.
func (c *Config) PoolBuilder() application.PoolBuilderConfig {
	cfg := application.DefaultPoolBuilderConfig()
	if c.Session.ImplicitWait > 0 {
		cfg.ImplicitWait = c.Session.ImplicitWait
	}
	return cfg
}

func (c *Config) Group(name string) application.GroupConfig {
	return application.GroupConfig{
		Name:        name,
		Spec:        c.DeviceSpec(name),
		Environment: c.Env,
		AppPackage:  c.App.Package,
		APK:         c.App.APK,
		JobName:     c.Farm.JobName,
	}
}

// Dir returns the configuration directory, ~/.devicefarm.
func Dir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName+"."+configType), nil
}

// WriteDefault writes the default configuration to path unless a file is
// already there.
func WriteDefault(path string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	v := viper.New()
	SetDefaults(v, dir)
	v.SetConfigType(configType)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
