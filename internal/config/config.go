package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// API contains configuration for the storefront backend.
type API struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Advisor contains configuration for the generative style advisor endpoint.
type Advisor struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Voice contains configuration for the speech capability.
type Voice struct {
	Language string `toml:"language"`
}

// Storefront contains local state paths and checkout settings.
type Storefront struct {
	DataDir       string `toml:"data_dir"`
	PaymentMethod string `toml:"payment_method"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the boutique client.
//
// Configuration sections by subsystem:
//   - API: backend REST endpoint for products, categories, customers, orders
//   - Advisor: generative text endpoint used by the style advisor
//   - Voice: speech recognition settings
//   - Storefront: local data directory (cart database, session) and payment tag
//   - Logging: log format and level
type Config struct {
	API        API        `toml:"api"`
	Advisor    Advisor    `toml:"advisor"`
	Voice      Voice      `toml:"voice"`
	Storefront Storefront `toml:"storefront"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/boutique/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("boutique.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the local data directory used for the cart
// database, the session file, and logs.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Storefront.DataDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Storefront.DataDir, err)
	}
	return nil
}

// CartDBPath returns the cart database location inside the data directory.
func (c *Config) CartDBPath() string {
	return filepath.Join(c.Storefront.DataDir, "cart.db")
}

// SessionPath returns the persisted session file location.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Storefront.DataDir, "session.json")
}

// CheckoutLockPath returns the lock file held while a checkout is in flight.
func (c *Config) CheckoutLockPath() string {
	return filepath.Join(c.Storefront.DataDir, "checkout.lock")
}

// LogPath returns the log file location inside the data directory.
func (c *Config) LogPath() string {
	return filepath.Join(c.Storefront.DataDir, "boutique.log")
}

// SampleConfig returns the embedded sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

// ExpandPath resolves ~ prefixes and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
