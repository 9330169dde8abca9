package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const appName = "taskkeeper"

// Config holds the client's runtime settings
type Config struct {
	APIURL         string        `yaml:"api_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	SettleDelay    time.Duration `yaml:"settle_delay"`
	ScanInterval   time.Duration `yaml:"scan_interval"`
	LogFile        string        `yaml:"log_file"`
	SettingsDB     string        `yaml:"settings_db"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		APIURL:         "http://localhost:8000",
		RequestTimeout: 10 * time.Second,
		SettleDelay:    2 * time.Second,
		ScanInterval:   time.Minute,
		LogFile:        filepath.Join(xdgDir("XDG_STATE_HOME", ".local", "state"), appName, appName+".log"),
		SettingsDB:     filepath.Join(xdgDir("XDG_DATA_HOME", ".local", "share"), appName, appName+".db"),
	}
}

// DefaultPath is where Load looks when no path is given
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appName, "config.yaml")
}

// Load reads the YAML file at path over the defaults, then applies environment
// overrides. A missing file is not an error. A .env file in the working
// directory is loaded first if present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, err
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	// VITE_API_URL is read from a shared frontend .env; TASKKEEPER_API_URL wins.
	for _, key := range []string{"VITE_API_URL", "TASKKEEPER_API_URL"} {
		if v := os.Getenv(key); v != "" {
			c.APIURL = v
		}
	}
	if v := os.Getenv("TASKKEEPER_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("TASKKEEPER_SETTINGS_DB"); v != "" {
		c.SettingsDB = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"TASKKEEPER_TIMEOUT", &c.RequestTimeout},
		{"TASKKEEPER_SETTLE_DELAY", &c.SettleDelay},
		{"TASKKEEPER_SCAN_INTERVAL", &c.ScanInterval},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}

// Validate rejects settings the client cannot run with
func (c Config) Validate() error {
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("api_url must be an http(s) URL, got %q", c.APIURL)
	}
	if c.RequestTimeout < 0 || c.SettleDelay < 0 || c.ScanInterval < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(append([]string{os.TempDir()}, fallback...)...)
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}
