package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config/config.yaml"

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Log     LogConfig     `yaml:"log"`
	Notify  NotifyConfig  `yaml:"notify"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

// BackendConfig describes the weather data service the dashboard reads from.
type BackendConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
	// Timeout in seconds for a single request; 0 disables it.
	Timeout int `yaml:"timeout" envconfig:"TIMEOUT"`
	// RequestsPerSecond throttles outbound requests; 0 disables throttling.
	RequestsPerSecond float64 `yaml:"requests_per_second" envconfig:"REQUESTS_PER_SECOND"`
	Burst             int     `yaml:"burst" envconfig:"BURST"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type NotifyConfig struct {
	// URLs are shoutrrr service URLs, e.g. "slack://token@channel".
	URLs     []string `yaml:"urls" envconfig:"URLS"`
	FeedSize int      `yaml:"feed_size" envconfig:"FEED_SIZE"`
	Timeout  int      `yaml:"timeout" envconfig:"TIMEOUT"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn" envconfig:"DSN"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a yaml file, then applies environment overrides.
// A missing file is not an error.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// NewConfig loads the yaml file at path, DefaultConfigPath when empty.
func NewConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cfg, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := provider.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:8000",
			Burst:   1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Notify: NotifyConfig{
			FeedSize: 20,
			Timeout:  10,
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cfg := Default()

	if err := p.loadFromFile(cfg); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cfg, nil
}

func (p *FileConfigProvider) loadFromFile(cfg *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cfg *Config) error {
	var errs []error

	if cfg.App.Name == "" {
		errs = append(errs, errors.New("app.name is required"))
	}
	if cfg.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 || cfg.Server.IdleTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}

	if cfg.Backend.BaseURL == "" {
		errs = append(errs, errors.New("backend.base_url is required"))
	} else if u, err := url.Parse(cfg.Backend.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("backend.base_url must be an absolute http(s) URL, got %q", cfg.Backend.BaseURL))
	}
	if cfg.Backend.Timeout < 0 {
		errs = append(errs, errors.New("backend.timeout must not be negative"))
	}
	if cfg.Backend.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("backend.requests_per_second must not be negative"))
	}
	if cfg.Backend.RequestsPerSecond > 0 && cfg.Backend.Burst < 1 {
		errs = append(errs, errors.New("backend.burst must be at least 1 when throttling is enabled"))
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", cfg.Log.Format))
	}

	if cfg.Notify.FeedSize < 0 {
		errs = append(errs, errors.New("notify.feed_size must not be negative"))
	}
	if cfg.Notify.Timeout < 0 {
		errs = append(errs, errors.New("notify.timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.Timeout) * time.Second
}

func (c *Config) NotifyTimeout() time.Duration {
	return time.Duration(c.Notify.Timeout) * time.Second
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (s ServerConfig) Timeouts() (read, write, idle time.Duration) {
	return seconds(s.ReadTimeout), seconds(s.WriteTimeout), seconds(s.IdleTimeout)
}
