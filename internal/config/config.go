package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/langtab.log"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	DataDir     string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir  string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
	DatasetFile string `yaml:"dataset_file" envconfig:"DATASET_FILE" default:"data/languages.csv"`
}

// Load loads configuration from environment variables and, when present,
// a YAML config file whose non-zero values override the environment.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("LANGTAB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(cfg, *fileCfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// configFilePath returns the config file location, overridable via env.
func configFilePath() string {
	if path := os.Getenv("LANGTAB_CONFIG_FILE"); path != "" {
		return path
	}
	return "langtab.yaml"
}

// merge overlays non-zero values from overlay onto base.
func merge(base, overlay Config) Config {
	out := base
	if overlay.Server.Port != 0 {
		out.Server.Port = overlay.Server.Port
	}
	if overlay.Server.ReadTimeout != 0 {
		out.Server.ReadTimeout = overlay.Server.ReadTimeout
	}
	if overlay.Server.WriteTimeout != 0 {
		out.Server.WriteTimeout = overlay.Server.WriteTimeout
	}
	if overlay.Server.IdleTimeout != 0 {
		out.Server.IdleTimeout = overlay.Server.IdleTimeout
	}
	if overlay.Server.ShutdownTimeout != 0 {
		out.Server.ShutdownTimeout = overlay.Server.ShutdownTimeout
	}
	if overlay.Logging.Level != "" {
		out.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Output != "" {
		out.Logging.Output = overlay.Logging.Output
	}
	if overlay.Logging.FilePath != "" {
		out.Logging.FilePath = overlay.Logging.FilePath
	}
	if overlay.Paths.DataDir != "" {
		out.Paths.DataDir = overlay.Paths.DataDir
	}
	if overlay.Paths.ReportsDir != "" {
		out.Paths.ReportsDir = overlay.Paths.ReportsDir
	}
	if overlay.Paths.DatasetFile != "" {
		out.Paths.DatasetFile = overlay.Paths.DatasetFile
	}
	return out
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}
	return nil
}

// EnsureDirectories creates the configured data and reports directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.ReportsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
