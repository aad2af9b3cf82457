package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	appDirName     = "brainbox"
	configFileName = "config.toml"
)

// Config captures the runtime configuration for the brainbox client.
type Config struct {
	APIBaseURL        string        `toml:"api_base_url"`
	StatePath         string        `toml:"state_path"`
	LogFile           string        `toml:"log_file"`
	HTTPTimeout       time.Duration `toml:"-"`
	HTTPTimeoutText   string        `toml:"http_timeout"`
	OAuthCallbackPort int           `toml:"oauth_callback_port"`
}

func defaults() Config {
	stateDir, _ := os.UserHomeDir()
	return Config{
		APIBaseURL:        "https://api.brainbox.app",
		StatePath:         filepath.Join(stateDir, ".local", "share", appDirName, "state.db"),
		LogFile:           "",
		HTTPTimeout:       15 * time.Second,
		OAuthCallbackPort: 8377,
	}
}

// Path returns the config file location under the user's config directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDirName, configFileName), nil
}

// Load builds the configuration from defaults, then the optional config file,
// then environment variable overrides. A missing file is not an error; an
// unreadable or invalid one is.
func Load() (Config, error) {
	cfg := defaults()

	path, err := Path()
	if err == nil {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile behaves like Load but reads the given file instead of the default
// location. The file must exist.
func LoadFile(path string) (Config, error) {
	cfg := defaults()
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file: %w", err)
	}
	if err := applyFile(&cfg, path); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.HTTPTimeoutText != "" {
		d, err := time.ParseDuration(cfg.HTTPTimeoutText)
		if err != nil {
			return fmt.Errorf("parse http_timeout: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BRAINBOX_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("BRAINBOX_STATE_PATH"); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv("BRAINBOX_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("BRAINBOX_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("BRAINBOX_OAUTH_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.OAuthCallbackPort = p
		}
	}
}
