package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"showboat/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if cfg.Server.Bind != "127.0.0.1:8787" {
		t.Fatalf("unexpected default bind: %q", cfg.Server.Bind)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected default log level: %q", cfg.Logging.Level)
	}
	if cfg.Storage.Database == "" || !filepath.IsAbs(cfg.Storage.Database) {
		t.Fatalf("database path must be absolute: %q", cfg.Storage.Database)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
bind = "0.0.0.0:9000"
token = "secret123"

[storage]
database = "` + filepath.Join(dir, "data", "showboat.db") + `"

[client]
remote_url = "http://example.test/receive"

[logging]
level = "DEBUG"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Server.Bind != "0.0.0.0:9000" || cfg.Server.Token != "secret123" {
		t.Fatalf("unexpected server config: %#v", cfg.Server)
	}
	if cfg.Client.RemoteURL != "http://example.test/receive" {
		t.Fatalf("unexpected client config: %#v", cfg.Client)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging values must be normalized: %#v", cfg.Logging)
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log level")
	}

	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestEnvironmentOverridesRemoteURL(t *testing.T) {
	t.Setenv("SHOWBOAT_URL", "http://env.test/receive?token=abc")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Client.RemoteURL != "http://env.test/receive?token=abc" {
		t.Fatalf("environment must win: %q", cfg.Client.RemoteURL)
	}
}

func TestEnsureDirectoriesCreatesDatabaseDir(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Database = filepath.Join(t.TempDir(), "nested", "deep", "showboat.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(filepath.Dir(cfg.Storage.Database))
	if err != nil || !info.IsDir() {
		t.Fatalf("database directory missing: %v", err)
	}
}

func TestLockPath(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Database = "/tmp/showboat.db"
	if cfg.LockPath() != "/tmp/showboat.db.lock" {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[server]") {
		t.Fatalf("sample should document the server section: %s", data)
	}

	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	expanded, err := config.ExpandPath("~/showboat/config.toml")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if expanded != filepath.Join(home, "showboat", "config.toml") {
		t.Fatalf("unexpected expansion: %q", expanded)
	}
}
