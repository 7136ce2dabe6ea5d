package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"animora/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Catalog.Source != "local" {
		t.Fatalf("expected default catalog source local, got %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.PageSize != 25 {
		t.Fatalf("expected default page size 25, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Session.SortBy != "lastWatched" {
		t.Fatalf("expected default sort lastWatched, got %q", cfg.Session.SortBy)
	}
	if !filepath.IsAbs(cfg.Paths.DataDir) {
		t.Fatalf("expected expanded data dir, got %q", cfg.Paths.DataDir)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"

[catalog]
source = "jikan"
base_url = "https://example.test/v4/"
page_size = 10

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved existing path %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Catalog.Source != "jikan" {
		t.Fatalf("expected jikan source, got %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.BaseURL != "https://example.test/v4" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.PageSize != 10 {
		t.Fatalf("expected page size 10, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "animora.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
}

func TestLoadRejectsUnknownCatalogSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[catalog]\nsource = \"myanimelist\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for unknown catalog source")
	}
	if !strings.Contains(err.Error(), "catalog.source") {
		t.Fatalf("expected catalog.source in error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Catalog.Source != "local" {
		t.Fatalf("sample should default to local catalog, got %q", cfg.Catalog.Source)
	}
}
