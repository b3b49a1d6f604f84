package testsupport

import (
	"path/filepath"
	"testing"

	"showboat/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config backed by a unique temp database per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Bind = "127.0.0.1:0"
	cfg.Storage.Database = filepath.Join(t.TempDir(), "showboat.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithToken sets the shared write token on the test config.
func WithToken(token string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Server.Token = token
	}
}
