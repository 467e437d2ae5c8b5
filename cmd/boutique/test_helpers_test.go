package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smartboutique/internal/testsupport"
)

type cliTestEnv struct {
	server     *testsupport.CatalogServer
	configPath string
	dataDir    string
}

// setupCLITestEnv points HOME at a temp directory with a config file wired to
// an httptest backend, so commands run fully isolated.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("GEMINI_API_KEY", "test-key")

	server := testsupport.NewCatalogServer(t)
	dataDir := filepath.Join(base, "data")

	configPath := filepath.Join(homeDir, ".config", "boutique", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(`[api]
base_url = %q
timeout_seconds = 5

[advisor]
base_url = %q
model = "gemini-test"
timeout_seconds = 5

[storefront]
data_dir = %q
`, server.URL, server.URL, dataDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{server: server, configPath: configPath, dataDir: dataDir}
}

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIWithInput(t, "", args...)
}

func runCLIWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if input != "" {
		cmd.SetIn(strings.NewReader(input))
	} else {
		cmd.SetIn(io.NopCloser(strings.NewReader("")))
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}
