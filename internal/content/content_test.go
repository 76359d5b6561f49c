package content

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"photo_quote", FormatPhotoQuote, true},
		{"video_reel", FormatVideoReel, true},
		{"voice_video", FormatVoiceVideo, true},
		{"avatar_video", FormatAvatarVideo, true},
		{"", FormatNone, false},
		{"podcast", Format("podcast"), false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatPredicates(t *testing.T) {
	if FormatPhotoQuote.IsVideo() {
		t.Error("photo_quote should not be a video")
	}
	for _, f := range []Format{FormatVideoReel, FormatVoiceVideo, FormatAvatarVideo} {
		if !f.IsVideo() {
			t.Errorf("%s should be a video", f)
		}
	}
	if FormatVideoReel.AcceptsAudio() || FormatPhotoQuote.AcceptsAudio() {
		t.Error("text-only formats should not accept audio")
	}
	if !FormatVoiceVideo.AcceptsAudio() || !FormatAvatarVideo.AcceptsAudio() {
		t.Error("voice and avatar formats should accept audio")
	}
}

func TestFormatsReturnsCopy(t *testing.T) {
	f := Formats()
	f[0] = "mutated"
	if Formats()[0] != FormatPhotoQuote {
		t.Error("Formats should not expose its backing array")
	}
}

func TestAudioPolicyAccepts(t *testing.T) {
	p := DefaultAudioPolicy()

	if err := p.Accepts("voice.MP3", 1024); err != nil {
		t.Errorf("expected mp3 to be accepted, got %v", err)
	}
	if err := p.Accepts(`C:\fakepath\take2.wav`, 1024); err != nil {
		t.Errorf("expected windows-style path to be accepted, got %v", err)
	}
	if err := p.Accepts("notes.txt", 10); !errors.Is(err, ErrAudioType) {
		t.Errorf("expected ErrAudioType, got %v", err)
	}
	if err := p.Accepts("long.mp3", DefaultMaxUploadBytes+1); !errors.Is(err, ErrAudioTooLarge) {
		t.Errorf("expected ErrAudioTooLarge, got %v", err)
	}
}

func TestDetailCreated(t *testing.T) {
	d := Detail{CreatedAt: "2024-03-01T10:30:00.123456"}
	if got := d.Created(); got.Year() != 2024 || got.Month() != 3 || got.Minute() != 30 {
		t.Errorf("unexpected parse: %v", got)
	}
	if !(Detail{CreatedAt: "yesterday"}).Created().IsZero() {
		t.Error("expected zero time for malformed timestamp")
	}
}

func TestCalendarEntryDay(t *testing.T) {
	e := CalendarEntry{Date: "2023-04-03"}
	if got := e.Day(); got.Year() != 2023 || got.Month() != 4 || got.Day() != 3 {
		t.Errorf("unexpected parse: %v", got)
	}
	if !(CalendarEntry{Date: "soon"}).Day().IsZero() {
		t.Error("expected zero time for malformed date")
	}
}
