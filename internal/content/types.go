package content

import "time"

// Format identifies the kind of generated artifact a content item holds.
type Format string

const (
	FormatNone        Format = ""
	FormatPhotoQuote  Format = "photo_quote"
	FormatVideoReel   Format = "video_reel"
	FormatVoiceVideo  Format = "voice_video"
	FormatAvatarVideo Format = "avatar_video"
)

// formats lists every selectable format in display order.
var formats = []Format{FormatPhotoQuote, FormatVideoReel, FormatVoiceVideo, FormatAvatarVideo}

var formatLabels = map[Format]string{
	FormatPhotoQuote:  "Photo Quote",
	FormatVideoReel:   "Video Reel",
	FormatVoiceVideo:  "Voice Video",
	FormatAvatarVideo: "Avatar Video",
}

// Formats returns the selectable formats in display order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat returns the Format named by s, or false if s names none.
func ParseFormat(s string) (Format, bool) {
	f := Format(s)
	return f, f.Valid()
}

// Valid reports whether f is one of the four selectable formats.
func (f Format) Valid() bool {
	_, ok := formatLabels[f]
	return ok
}

// Label returns the human-readable name of f.
func (f Format) Label() string {
	if l, ok := formatLabels[f]; ok {
		return l
	}
	return "Unknown"
}

// IsVideo reports whether f renders to a video file.
func (f Format) IsVideo() bool {
	switch f {
	case FormatVideoReel, FormatVoiceVideo, FormatAvatarVideo:
		return true
	}
	return false
}

// AcceptsAudio reports whether f takes an uploaded audio track.
func (f Format) AcceptsAudio() bool {
	return f == FormatVoiceVideo || f == FormatAvatarVideo
}

// Item is the dashboard's read-only view of one upstream content record.
type Item struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    Format `json:"type"`
	Created string `json:"created"`
}

// Detail is the full record returned by the upstream content API.
type Detail struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	ContentType   Format            `json:"content_type"`
	InputText     string            `json:"input_text"`
	OutputPath    string            `json:"output_path"`
	ThumbnailPath string            `json:"thumbnail_path"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
	Metadata      map[string]string `json:"metadata"`
}

// Created parses the upstream ISO timestamp. The zero time is returned when
// the field is empty or malformed.
func (d Detail) Created() time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, d.CreatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CalendarEntry is one dated suggestion from the upstream content calendar.
type CalendarEntry struct {
	Date        string `json:"date"`
	Suggestion  string `json:"suggestion"`
	ContentType Format `json:"content_type"`
}

// Day parses Date. The zero time is returned for a malformed date.
func (e CalendarEntry) Day() time.Time {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
