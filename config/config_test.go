package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
server:
  port: 9090
gemini:
  apiKey: test-key
database:
  uri: mongodb://localhost:27017/pitchjury
organizer:
  accessToken: secret
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Gemini.ApiKey != "test-key" {
		t.Errorf("apiKey = %q", cfg.Gemini.ApiKey)
	}

	// Defaults for values the file leaves unset.
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("default model = %q", cfg.Gemini.Model)
	}
	if cfg.Upload.MaxSizeMB != 10 {
		t.Errorf("default maxSizeMB = %d", cfg.Upload.MaxSizeMB)
	}
	if cfg.Evaluator.TimeoutSeconds != 60 {
		t.Errorf("default timeoutSeconds = %d", cfg.Evaluator.TimeoutSeconds)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yml"); err == nil {
		t.Error("expected error for missing file")
	}
}
