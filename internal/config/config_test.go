package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, payload string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DefaultExtension != "quiz" || cfg.Indent != 4 || cfg.UI != "auto" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Log.MaxSizeMB != DefaultMaxSizeMB || cfg.Log.MaxBackups != DefaultMaxBackups {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `default_extension: ".json"
indent: 2
ui: " Plain "
log:
  path: " audit.log "
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultExtension != "json" {
		t.Fatalf("expected extension json, got %q", cfg.DefaultExtension)
	}
	if cfg.Indent != 2 || cfg.UI != "plain" || cfg.Log.Path != "audit.log" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "colour: true\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadRejectsMultipleDocuments(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "indent: 2\n---\nindent: 3\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	cfg := Default()
	cfg.Indent = 12
	cfg.UI = "fancy"
	cfg.DefaultExtension = "a/b"
	err := Validate(&cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", validationErr.Issues)
	}
	if !strings.Contains(err.Error(), "indent:") {
		t.Fatalf("expected indent issue in %q", err.Error())
	}
}

func TestFindConfigPathSearchesParents(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "indent: 2\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != path {
		t.Fatalf("expected %q, got %q", path, found)
	}
}

func TestResolveExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "indent: 3\n")
	cfg, used, err := Resolve(path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if used != path || cfg.Indent != 3 {
		t.Fatalf("unexpected resolve result %q %+v", used, cfg)
	}
	if _, _, err := Resolve(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestScaffoldWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected scaffold to match defaults, got %+v", cfg)
	}
	if err := Scaffold(path); err == nil {
		t.Fatalf("expected error when config exists")
	}
}
