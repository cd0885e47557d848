package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`

	// DataDir holds the session file, local cache and logs.
	DataDir string `yaml:"data_dir"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file exists.
// A fresh install must work without any setup.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".gymlog")
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:3210/api",
			TimeoutSeconds: 30,
		},
		Log: LogConfig{
			File:  filepath.Join(dataDir, "gymlog.log"),
			Level: "warn",
		},
		DataDir: dataDir,
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error: defaults apply. Env vars:
//
//	GYMLOG_API_BASE_URL, GYMLOG_API_TIMEOUT_SECONDS,
//	GYMLOG_LOG_FILE, GYMLOG_LOG_LEVEL, GYMLOG_DATA_DIR
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GYMLOG_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("GYMLOG_API_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("GYMLOG_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("GYMLOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GYMLOG_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	// The backend mounts everything under /api; accept base URLs given
	// either way.
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if !strings.HasSuffix(c.API.BaseURL, "/api") {
		c.API.BaseURL += "/api"
	}
	return nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".gymlog", "config.yaml")
}
