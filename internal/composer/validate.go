package composer

import (
	"strings"

	"github.com/ziadkadry99/content-studio/internal/content"
)

// ValidationKind names the rule a submission broke.
type ValidationKind string

const (
	MissingFormat  ValidationKind = "missing_format"
	MissingTitle   ValidationKind = "missing_title"
	MissingContent ValidationKind = "missing_content"
)

// ValidationError blocks a submission.
type ValidationError struct {
	Kind   ValidationKind
	Format content.Format
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + string(e.Kind)
}

// Message is the alert shown to the user.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case MissingFormat:
		return "Please select a content type"
	case MissingTitle:
		return "Please enter a title"
	case MissingContent:
		if e.Format.AcceptsAudio() {
			return "Please provide either text or an audio file"
		}
		return "Please enter some text content"
	}
	return "Please check the form"
}

// Submission is what the create form holds when submitted.
type Submission struct {
	Format   content.Format
	Title    string
	Text     string
	HasAudio bool
}

// Validate applies the submission rules in order: a format, a title, then
// content (text, or for voice and avatar videos text or audio).
func Validate(s Submission) error {
	if !s.Format.Valid() {
		return &ValidationError{Kind: MissingFormat}
	}
	if strings.TrimSpace(s.Title) == "" {
		return &ValidationError{Kind: MissingTitle, Format: s.Format}
	}
	hasText := strings.TrimSpace(s.Text) != ""
	if s.Format.AcceptsAudio() {
		if !hasText && !s.HasAudio {
			return &ValidationError{Kind: MissingContent, Format: s.Format}
		}
		return nil
	}
	if !hasText {
		return &ValidationError{Kind: MissingContent, Format: s.Format}
	}
	return nil
}
