package testsupport

import (
	"path/filepath"
	"testing"

	"smartboutique/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp data directory per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Storefront.DataDir = filepath.Join(base, "state")
	cfg.Advisor.APIKey = "test"

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithAPIBaseURL points the backend API at a test server.
func WithAPIBaseURL(url string) ConfigOption {
	return func(c *config.Config) {
		c.API.BaseURL = url
	}
}

// WithAdvisorBaseURL points the style advisor at a test server.
func WithAdvisorBaseURL(url string) ConfigOption {
	return func(c *config.Config) {
		c.Advisor.BaseURL = url
	}
}
