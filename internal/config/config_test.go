package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"recalc/internal/config"
	"recalc/internal/units"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Deadline() != config.DefaultDeadline {
		t.Errorf("Deadline() = %v, want default", cfg.Deadline())
	}
	if cfg.MaxDiagnostics() != config.DefaultMaxDiagnostics {
		t.Errorf("MaxDiagnostics() = %d, want default", cfg.MaxDiagnostics())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[eval]
deadline = "500ms"
max-diagnostics = 8

[units.mile]
of = "km"
scale = 1.609344
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != dir {
		t.Errorf("Root = %q, want %q", cfg.Root, dir)
	}
	if cfg.Deadline() != 500*time.Millisecond {
		t.Errorf("Deadline() = %v, want 500ms", cfg.Deadline())
	}
	if cfg.MaxDiagnostics() != 8 {
		t.Errorf("MaxDiagnostics() = %d, want 8", cfg.MaxDiagnostics())
	}

	table := units.NewTable()
	if err := cfg.ApplyUnits(table); err != nil {
		t.Fatalf("ApplyUnits: %v", err)
	}
	if _, ok := table.Resolve("mile"); !ok {
		t.Errorf("mile not registered")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[eval]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := config.Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: %v, ok=%v", err, ok)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want manifest in %q", path, root)
	}
}

func TestLoadWithoutManifest(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != "" {
		t.Errorf("Root = %q, want empty for defaults", cfg.Root)
	}
}

func TestBadDeadlineFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[eval]\ndeadline = \"soon\"\n")
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Deadline() != config.DefaultDeadline {
		t.Errorf("Deadline() = %v, want default fallback", cfg.Deadline())
	}
}
