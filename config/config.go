package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvPath    = ".env"
	dateLayout        = "2006-01-02"
)

type Config struct {
	AppName    string `envconfig:"APP_NAME" yaml:"app_name"`
	AppVersion string `envconfig:"APP_VERSION" yaml:"app_version"`
	AppEnv     string `envconfig:"APP_ENV" yaml:"app_env"`
	Port       string `envconfig:"PORT" yaml:"port"`
	LogLevel   string `envconfig:"LOG_LEVEL" yaml:"log_level"`
	SentryDSN  string `envconfig:"SENTRY_DSN" yaml:"sentry_dsn,omitempty"`

	Database DatabaseConfig `envconfig:"DATABASE" yaml:"database"`
	Climate  ClimateConfig  `envconfig:"CLIMATE" yaml:"climate"`
}

type DatabaseConfig struct {
	Path            string        `envconfig:"DATABASE_PATH" yaml:"path"`
	MaxOpenConns    int           `envconfig:"DATABASE_MAX_OPEN_CONNS" yaml:"max_open_conns"`
	MaxIdleConns    int           `envconfig:"DATABASE_MAX_IDLE_CONNS" yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `envconfig:"DATABASE_CONN_MAX_LIFETIME" yaml:"conn_max_lifetime"`
}

// ClimateConfig pins the canned queries. WindowEnd is the last date of the
// dataset; the one-year window starts 365 days before it.
type ClimateConfig struct {
	WindowEnd   string `envconfig:"CLIMATE_WINDOW_END" yaml:"window_end"`
	TobsStation string `envconfig:"CLIMATE_TOBS_STATION" yaml:"tobs_station"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(cfg *Config) error
}

// FileConfigProvider layers defaults, a YAML file, a .env file and the
// process environment, in that order of increasing precedence.
type FileConfigProvider struct {
	path    string
	envPath string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:    path,
		envPath: DefaultEnvPath,
	}
}

func Default() *Config {
	return &Config{
		AppName:    "climate-api",
		AppVersion: "1.0.0",
		AppEnv:     "development",
		Port:       "8080",
		LogLevel:   "debug",
		Database: DatabaseConfig{
			Path:            "Resources/hawaii.sqlite",
			MaxOpenConns:    4,
			MaxIdleConns:    2,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Climate: ClimateConfig{
			WindowEnd:   "2017-08-23",
			TobsStation: "USC00519281",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// .env never overrides variables already present in the environment
	if err := godotenv.Load(p.envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", p.envPath, err)
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read YAML config: %w", err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	if cnf.AppName == "" {
		return errors.New("app.name is required")
	}
	if cnf.Port == "" {
		return errors.New("port is required")
	}
	if cnf.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if _, err := time.Parse(dateLayout, cnf.Climate.WindowEnd); err != nil {
		return fmt.Errorf("climate.window_end must be YYYY-MM-DD: %w", err)
	}
	if cnf.Climate.TobsStation == "" {
		return errors.New("climate.tobs_station is required")
	}

	return nil
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

// WindowStart returns the first date of the one-year observation window.
func (c ClimateConfig) WindowStart() (string, error) {
	end, err := time.Parse(dateLayout, c.WindowEnd)
	if err != nil {
		return "", err
	}
	return end.AddDate(0, 0, -365).Format(dateLayout), nil
}
