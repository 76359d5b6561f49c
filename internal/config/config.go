package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// nestedSections are the config sections whose keys can be set from the
// environment, e.g. STUDIO_TIMINGS_COPY_FEEDBACK -> timings.copy_feedback.
var nestedSections = []string{"prompts", "timings", "uploads"}

// envKey maps an environment variable onto a config key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "STUDIO_"))
	for _, section := range nestedSections {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (STUDIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: STUDIO_UPSTREAM_URL -> upstream_url, etc.
	if err := k.Load(env.Provider("STUDIO_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.UpstreamURL == "" {
		return fmt.Errorf("upstream_url is required")
	}
	u, err := url.Parse(c.UpstreamURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid upstream_url %q: must be an http or https URL", c.UpstreamURL)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}

	if c.Prompts.Count <= 0 {
		return fmt.Errorf("prompts.count must be positive")
	}

	t := c.Timings
	if t.FlashDismiss < 0 || t.NoticeDismiss < 0 || t.CopyFeedback < 0 || t.ScrollDebounce < 0 {
		return fmt.Errorf("timings must be non-negative")
	}

	if c.BackToTopThreshold < 0 {
		return fmt.Errorf("back_to_top_threshold must be non-negative")
	}

	for _, p := range c.Uploads.AudioPatterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid uploads.audio_patterns entry %q", p)
		}
	}
	if c.Uploads.MaxBytes < 0 {
		return fmt.Errorf("uploads.max_bytes must be non-negative")
	}

	return nil
}
