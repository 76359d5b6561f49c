package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected default request_timeout 30s, got %s", cfg.RequestTimeout)
	}
	if cfg.Prompts.Count != 3 || cfg.Prompts.DefaultTheme != "general" {
		t.Errorf("expected 3 general prompts, got %+v", cfg.Prompts)
	}
	if cfg.Timings.FlashDismiss != 5*time.Second {
		t.Errorf("expected flash_dismiss 5s, got %s", cfg.Timings.FlashDismiss)
	}
	if cfg.Timings.NoticeDismiss != 3*time.Second {
		t.Errorf("expected notice_dismiss 3s, got %s", cfg.Timings.NoticeDismiss)
	}
	if cfg.Timings.CopyFeedback != 2*time.Second {
		t.Errorf("expected copy_feedback 2s, got %s", cfg.Timings.CopyFeedback)
	}
	if cfg.Timings.ScrollDebounce != 150*time.Millisecond {
		t.Errorf("expected scroll_debounce 150ms, got %s", cfg.Timings.ScrollDebounce)
	}
	if cfg.BackToTopThreshold != 300 {
		t.Errorf("expected back_to_top_threshold 300, got %d", cfg.BackToTopThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.studio.yml")

	original := DefaultConfig()
	original.UpstreamURL = "https://studio.example.com"
	original.Port = 9090
	original.Headers = map[string]string{"Cookie": "session=abc"}
	original.Prompts.Count = 5
	original.Timings.CopyFeedback = 1500 * time.Millisecond
	original.Uploads.AudioPatterns = []string{"*.flac"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.UpstreamURL != original.UpstreamURL {
		t.Errorf("upstream_url: got %q, want %q", loaded.UpstreamURL, original.UpstreamURL)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Headers["Cookie"] != "session=abc" {
		t.Errorf("headers: got %v", loaded.Headers)
	}
	if loaded.Prompts.Count != 5 {
		t.Errorf("prompts.count: got %d, want 5", loaded.Prompts.Count)
	}
	if loaded.Timings.CopyFeedback != 1500*time.Millisecond {
		t.Errorf("timings.copy_feedback: got %s, want 1.5s", loaded.Timings.CopyFeedback)
	}
	if len(loaded.Uploads.AudioPatterns) != 1 || loaded.Uploads.AudioPatterns[0] != "*.flac" {
		t.Errorf("uploads.audio_patterns: got %v", loaded.Uploads.AudioPatterns)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("STUDIO_UPSTREAM_URL", "https://override.example.com")
	t.Setenv("STUDIO_PROMPTS_DEFAULT_THEME", "travel")
	t.Setenv("STUDIO_TIMINGS_NOTICE_DISMISS", "10s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.UpstreamURL != "https://override.example.com" {
		t.Errorf("env override failed: got %q", loaded.UpstreamURL)
	}
	if loaded.Prompts.DefaultTheme != "travel" {
		t.Errorf("nested env override failed: got %q", loaded.Prompts.DefaultTheme)
	}
	if loaded.Timings.NoticeDismiss != 10*time.Second {
		t.Errorf("duration env override failed: got %s", loaded.Timings.NoticeDismiss)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"STUDIO_PORT":                  "port",
		"STUDIO_UPSTREAM_URL":          "upstream_url",
		"STUDIO_UPLOADS_MAX_BYTES":     "uploads.max_bytes",
		"STUDIO_BACK_TO_TOP_THRESHOLD": "back_to_top_threshold",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("port: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty upstream", func(c *Config) { c.UpstreamURL = "" }},
		{"non-http upstream", func(c *Config) { c.UpstreamURL = "ftp://example.com" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
		{"zero prompt count", func(c *Config) { c.Prompts.Count = 0 }},
		{"negative timing", func(c *Config) { c.Timings.CopyFeedback = -time.Second }},
		{"negative threshold", func(c *Config) { c.BackToTopThreshold = -1 }},
		{"bad pattern", func(c *Config) { c.Uploads.AudioPatterns = []string{"[a-"} }},
		{"negative max bytes", func(c *Config) { c.Uploads.MaxBytes = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateURLAndPort(t *testing.T) {
	if err := validateURL("http://localhost:5000"); err != nil {
		t.Errorf("expected valid URL, got %v", err)
	}
	if err := validateURL("localhost"); err == nil {
		t.Error("expected error for URL without scheme")
	}
	if err := validatePort("8080"); err != nil {
		t.Errorf("expected valid port, got %v", err)
	}
	if err := validatePort("http"); err == nil {
		t.Error("expected error for non-numeric port")
	}
}
