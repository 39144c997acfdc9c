package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL        = "http://localhost:7255"
	defaultPollSeconds    = 10
	defaultPaymentMinutes = 30

	configFile = "config.json"
)

// Config holds the client configuration persisted in the config directory.
type Config struct {
	// APIBaseURL is the backend host, e.g. https://api.verdex.app.
	APIBaseURL string `json:"api_base_url"`
	// PollIntervalSeconds is the payment status polling cadence.
	PollIntervalSeconds int `json:"poll_interval_seconds"`
	// PaymentTimeoutMinutes bounds how long the awaiting-payment screen
	// keeps polling before giving up.
	PaymentTimeoutMinutes int `json:"payment_timeout_minutes"`

	configDir string
}

// Load reads config from dir (or creates defaults). dir defaults to ~/.verdex.
// A .env file in the working directory and the VERDEX_API_BASE_URL variable
// override the persisted base URL for a single invocation.
func Load(dir string) (*Config, error) {
	// Best-effort: a missing .env is not an error.
	_ = godotenv.Load()

	if dir == "" {
		dir = os.Getenv("VERDEX_CONFIG_DIR")
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".verdex")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg.configDir = dir
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if env := os.Getenv("VERDEX_API_BASE_URL"); env != "" {
		cfg.APIBaseURL = env
	}
	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = defaultPollSeconds
	}
	if cfg.PaymentTimeoutMinutes <= 0 {
		cfg.PaymentTimeoutMinutes = defaultPaymentMinutes
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string { return c.configDir }

// PollInterval returns the payment polling cadence as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// PaymentTimeout returns the awaiting-payment screen deadline.
func (c *Config) PaymentTimeout() time.Duration {
	return time.Duration(c.PaymentTimeoutMinutes) * time.Minute
}

func defaults(dir string) *Config {
	return &Config{
		APIBaseURL:            defaultBaseURL,
		PollIntervalSeconds:   defaultPollSeconds,
		PaymentTimeoutMinutes: defaultPaymentMinutes,
		configDir:             dir,
	}
}
