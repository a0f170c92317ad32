package lint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".fieldset.yaml")
	data := []byte("markers:\n  - qb.Merge\nparallel: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Markers) != 1 || cfg.Markers[0] != "qb.Merge" {
		t.Fatalf("markers not overlaid: %v", cfg.Markers)
	}
	if cfg.Parallel != 4 {
		t.Fatalf("parallel not overlaid: %d", cfg.Parallel)
	}
	// untouched fields keep their defaults
	if len(cfg.Packages) == 0 {
		t.Fatalf("expected default packages to survive")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("markers: {not: a list}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}
