// Package testsupport provides shared helpers for package tests:
// temp-directory configs, store opening with cleanup, and seeded rows.
package testsupport

import (
	"path/filepath"
	"testing"

	"animora/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Catalog.Source = config.CatalogSourceLocal

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithCatalogSource overrides the catalog source on the test config.
func WithCatalogSource(source string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.Source = source
	}
}
