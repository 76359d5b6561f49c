package content

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultAudioPatterns are the upload names accepted for voice and avatar videos.
var DefaultAudioPatterns = []string{"*.mp3", "*.wav", "*.m4a", "*.ogg"}

// DefaultMaxUploadBytes mirrors the upstream's request size cap.
const DefaultMaxUploadBytes int64 = 16 << 20

var (
	ErrAudioType     = errors.New("unsupported audio file type")
	ErrAudioTooLarge = errors.New("audio file too large")
)

// AudioPolicy decides whether an attached file may be sent upstream.
type AudioPolicy struct {
	Patterns []string
	MaxBytes int64
}

// DefaultAudioPolicy returns the policy used when configuration is silent.
func DefaultAudioPolicy() AudioPolicy {
	return AudioPolicy{Patterns: DefaultAudioPatterns, MaxBytes: DefaultMaxUploadBytes}
}

// Accepts checks the base name of filename against the policy patterns
// (case-insensitively) and size against MaxBytes. A non-positive MaxBytes
// disables the size check.
func (p AudioPolicy) Accepts(filename string, size int64) error {
	name := strings.ToLower(path.Base(strings.ReplaceAll(filename, "\\", "/")))
	matched := len(p.Patterns) == 0
	for _, pattern := range p.Patterns {
		ok, err := doublestar.Match(strings.ToLower(pattern), name)
		if err != nil {
			return fmt.Errorf("audio pattern %q: %w", pattern, err)
		}
		if ok {
			matched = true
			break
		}
	}
	if !matched {
		return fmt.Errorf("%w: %s", ErrAudioType, name)
	}
	if p.MaxBytes > 0 && size > p.MaxBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrAudioTooLarge, size, p.MaxBytes)
	}
	return nil
}
