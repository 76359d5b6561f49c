package composer

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/ui"
)

// ErrUnknownFormat is returned when a selection names no known format.
var ErrUnknownFormat = errors.New("unknown content format")

// State is the composer form. Format is the hidden content_type field and
// the highlighted format card at once; there is no second copy to drift.
type State struct {
	Format      content.Format
	Title       string
	Text        string
	AudioLabel  string
	Suggestions []string
}

// SelectFormat is the only transition of Format. An unknown format leaves
// the state untouched.
func (s State) SelectFormat(f content.Format) (State, error) {
	if !f.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	s.Format = f
	return s, nil
}

// WithSuggestions replaces the suggestion picker.
func (s State) WithSuggestions(prompts []string) State {
	s.Suggestions = append([]string(nil), prompts...)
	return s
}

// PickSuggestion copies a chosen suggestion into the text field. The empty
// "Select a prompt..." entry changes nothing.
func (s State) PickSuggestion(prompt string) State {
	if prompt != "" {
		s.Text = prompt
	}
	return s
}

// AttachAudio records the chosen audio file, replacing any earlier label.
func (s State) AttachAudio(filename string) State {
	if filename == "" {
		return s
	}
	s.AudioLabel = "Selected file: " + ui.FileLabel(filename, "")
	return s
}

// Visibility says which input sections are shown.
type Visibility struct {
	Text  bool
	Audio bool
}

// Sections maps a format to its input sections. Nothing is shown until a
// format is chosen.
func Sections(f content.Format) Visibility {
	switch f {
	case content.FormatPhotoQuote, content.FormatVideoReel:
		return Visibility{Text: true}
	case content.FormatVoiceVideo, content.FormatAvatarVideo:
		return Visibility{Text: true, Audio: true}
	}
	return Visibility{}
}

// Placeholder is the preview area's icon and caption.
type Placeholder struct {
	Icon string
	Text string
}

var placeholders = map[content.Format]Placeholder{
	content.FormatPhotoQuote:  {Icon: "fa-quote-right", Text: "Quote preview will appear here"},
	content.FormatVideoReel:   {Icon: "fa-film", Text: "Video preview will appear here"},
	content.FormatVoiceVideo:  {Icon: "fa-microphone", Text: "Voice video preview will appear here"},
	content.FormatAvatarVideo: {Icon: "fa-user-tie", Text: "Avatar video preview will appear here"},
}

// DefaultPlaceholder is shown before a format is chosen.
var DefaultPlaceholder = Placeholder{Icon: "fa-image", Text: "Select a content type to see preview"}

// Preview returns the placeholder for f.
func Preview(f content.Format) Placeholder {
	if p, ok := placeholders[f]; ok {
		return p
	}
	return DefaultPlaceholder
}
