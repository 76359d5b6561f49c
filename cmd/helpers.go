package cmd

import (
	"fmt"

	"github.com/ziadkadry99/content-studio/internal/apiclient"
	"github.com/ziadkadry99/content-studio/internal/config"
	"github.com/ziadkadry99/content-studio/internal/content"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `studio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newClientFromConfig creates the upstream API client.
func newClientFromConfig(cfg *config.Config) (*apiclient.Client, error) {
	client, err := apiclient.New(cfg.UpstreamURL,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithHeaders(cfg.Headers),
	)
	if err != nil {
		return nil, fmt.Errorf("creating upstream client: %w", err)
	}
	return client, nil
}

// audioPolicyFromConfig builds the audio attachment rules.
func audioPolicyFromConfig(cfg *config.Config) content.AudioPolicy {
	policy := content.DefaultAudioPolicy()
	if len(cfg.Uploads.AudioPatterns) > 0 {
		policy.Patterns = cfg.Uploads.AudioPatterns
	}
	if cfg.Uploads.MaxBytes > 0 {
		policy.MaxBytes = cfg.Uploads.MaxBytes
	}
	return policy
}
