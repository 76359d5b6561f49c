package config

import "time"

// Config is the top-level studio configuration, corresponding to .studio.yml.
type Config struct {
	UpstreamURL        string            `yaml:"upstream_url" koanf:"upstream_url"`
	Port               int               `yaml:"port" koanf:"port"`
	Headers            map[string]string `yaml:"headers,omitempty" koanf:"headers"`
	RequestTimeout     time.Duration     `yaml:"request_timeout" koanf:"request_timeout"`
	BackToTopThreshold int               `yaml:"back_to_top_threshold" koanf:"back_to_top_threshold"`
	Prompts            PromptsConfig     `yaml:"prompts" koanf:"prompts"`
	Timings            TimingsConfig     `yaml:"timings" koanf:"timings"`
	Uploads            UploadsConfig     `yaml:"uploads" koanf:"uploads"`
}

// PromptsConfig holds prompt suggestion settings.
type PromptsConfig struct {
	Count        int    `yaml:"count" koanf:"count"`
	DefaultTheme string `yaml:"default_theme" koanf:"default_theme"`
}

// TimingsConfig holds the delays of the transient UI affordances.
type TimingsConfig struct {
	FlashDismiss   time.Duration `yaml:"flash_dismiss" koanf:"flash_dismiss"`
	NoticeDismiss  time.Duration `yaml:"notice_dismiss" koanf:"notice_dismiss"`
	CopyFeedback   time.Duration `yaml:"copy_feedback" koanf:"copy_feedback"`
	ScrollDebounce time.Duration `yaml:"scroll_debounce" koanf:"scroll_debounce"`
}

// UploadsConfig restricts audio attachments.
type UploadsConfig struct {
	AudioPatterns []string `yaml:"audio_patterns" koanf:"audio_patterns"`
	MaxBytes      int64    `yaml:"max_bytes" koanf:"max_bytes"`
}

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".studio.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		UpstreamURL:        "http://localhost:5000",
		Port:               8080,
		RequestTimeout:     30 * time.Second,
		BackToTopThreshold: 300,
		Prompts: PromptsConfig{
			Count:        3,
			DefaultTheme: "general",
		},
		Timings: TimingsConfig{
			FlashDismiss:   5 * time.Second,
			NoticeDismiss:  3 * time.Second,
			CopyFeedback:   2 * time.Second,
			ScrollDebounce: 150 * time.Millisecond,
		},
		Uploads: UploadsConfig{
			AudioPatterns: []string{"*.mp3", "*.wav", "*.m4a", "*.ogg"},
			MaxBytes:      16 << 20,
		},
	}
}
