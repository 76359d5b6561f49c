package composer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/content-studio/internal/apiclient"
	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/ui"
)

type fakeSource struct {
	prompts []string
	err     error
	themes  []string
	block   chan struct{}
}

func (f *fakeSource) GeneratePrompts(ctx context.Context, theme string, count int) ([]string, error) {
	f.themes = append(f.themes, theme)
	if f.block != nil {
		<-f.block
	}
	return f.prompts, f.err
}

type fakeSubmitter struct {
	mu    sync.Mutex
	got   []apiclient.Submission
	audio []byte
	err   error
}

func (f *fakeSubmitter) SubmitContent(ctx context.Context, s apiclient.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.Audio != nil {
		b, _ := io.ReadAll(s.Audio)
		f.audio = b
		s.Audio = nil
	}
	f.got = append(f.got, s)
	return f.err
}

func setupComposer(t *testing.T, src *fakeSource, sub *fakeSubmitter) (chi.Router, *ui.FlashBoard) {
	t.Helper()
	flashes := ui.NewFlashBoard(ui.NewManualScheduler(), 0)
	c := New(NewPromptTrigger(src, 3, ""), sub, Options{Flashes: flashes})
	r := chi.NewRouter()
	c.RegisterRoutes(r)
	return r, flashes
}

type upload struct {
	name string
	data []byte
}

func postForm(t *testing.T, r http.Handler, fields map[string][]string, file *upload) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, vs := range fields {
		for _, v := range vs {
			if err := mw.WriteField(k, v); err != nil {
				t.Fatalf("writing field: %v", err)
			}
		}
	}
	if file != nil {
		fw, err := mw.CreateFormFile("audio_file", file.name)
		if err != nil {
			t.Fatalf("creating file part: %v", err)
		}
		fw.Write(file.data)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/create", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSelectFormat(t *testing.T) {
	var s State
	s, err := s.SelectFormat(content.FormatVoiceVideo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Format != content.FormatVoiceVideo {
		t.Errorf("expected voice_video, got %q", s.Format)
	}

	s, err = s.SelectFormat("hologram")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if s.Format != content.FormatVoiceVideo {
		t.Errorf("expected format unchanged, got %q", s.Format)
	}
}

func TestSections(t *testing.T) {
	tests := []struct {
		format content.Format
		want   Visibility
	}{
		{content.FormatNone, Visibility{}},
		{content.FormatPhotoQuote, Visibility{Text: true}},
		{content.FormatVideoReel, Visibility{Text: true}},
		{content.FormatVoiceVideo, Visibility{Text: true, Audio: true}},
		{content.FormatAvatarVideo, Visibility{Text: true, Audio: true}},
	}
	for _, tt := range tests {
		if got := Sections(tt.format); got != tt.want {
			t.Errorf("Sections(%q): expected %+v, got %+v", tt.format, tt.want, got)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := Preview(content.FormatVideoReel); got.Icon != "fa-film" {
		t.Errorf("expected fa-film, got %q", got.Icon)
	}
	if got := Preview(content.FormatAvatarVideo); got.Icon != "fa-user-tie" {
		t.Errorf("expected fa-user-tie, got %q", got.Icon)
	}
	if got := Preview(""); got != DefaultPlaceholder {
		t.Errorf("expected default placeholder, got %+v", got)
	}
}

func TestPickSuggestion(t *testing.T) {
	s := State{Text: "draft"}.WithSuggestions([]string{"a", "b"})
	if got := s.PickSuggestion("").Text; got != "draft" {
		t.Errorf("expected empty pick to keep text, got %q", got)
	}
	if got := s.PickSuggestion("b").Text; got != "b" {
		t.Errorf("expected b, got %q", got)
	}
}

func TestAttachAudio(t *testing.T) {
	s := State{}.AttachAudio("C:\\fakepath\\song.mp3")
	if s.AudioLabel != "Selected file: song.mp3" {
		t.Errorf("expected base name label, got %q", s.AudioLabel)
	}
	s = s.AttachAudio("other.wav")
	if s.AudioLabel != "Selected file: other.wav" {
		t.Errorf("expected label replaced, got %q", s.AudioLabel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Submission
		kind    ValidationKind
		message string
	}{
		{"no format", Submission{Title: "t", Text: "x"}, MissingFormat, "Please select a content type"},
		{"bad format", Submission{Format: "hologram", Title: "t", Text: "x"}, MissingFormat, "Please select a content type"},
		{"blank title", Submission{Format: content.FormatPhotoQuote, Title: "  ", Text: "x"}, MissingTitle, "Please enter a title"},
		{"text format without text", Submission{Format: content.FormatVideoReel, Title: "t", HasAudio: true}, MissingContent, "Please enter some text content"},
		{"audio format without either", Submission{Format: content.FormatAvatarVideo, Title: "t"}, MissingContent, "Please provide either text or an audio file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *ValidationError
			if err := Validate(tt.in); !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, verr.Kind)
			}
			if verr.Message() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, verr.Message())
			}
		})
	}

	ok := []Submission{
		{Format: content.FormatPhotoQuote, Title: "t", Text: "x"},
		{Format: content.FormatVoiceVideo, Title: "t", HasAudio: true},
		{Format: content.FormatAvatarVideo, Title: "t", Text: "x"},
	}
	for _, s := range ok {
		if err := Validate(s); err != nil {
			t.Errorf("expected %+v to pass, got %v", s, err)
		}
	}
}

func TestPromptTriggerDefaultTheme(t *testing.T) {
	src := &fakeSource{prompts: []string{"one"}}
	trig := NewPromptTrigger(src, 0, "")

	got, err := trig.Request(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"one"}, got); diff != "" {
		t.Errorf("prompts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{DefaultTheme}, src.themes); diff != "" {
		t.Errorf("themes mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptTriggerBusy(t *testing.T) {
	src := &fakeSource{prompts: []string{"one"}, block: make(chan struct{})}
	var transitions []bool
	var mu sync.Mutex
	trig := NewPromptTrigger(src, 3, "", WithBusyHook(func(busy bool) {
		mu.Lock()
		transitions = append(transitions, busy)
		mu.Unlock()
	}))

	done := make(chan error, 1)
	go func() {
		_, err := trig.Request(context.Background(), "travel")
		done <- err
	}()

	for !trig.Disabled() {
	}
	if trig.Label() != BusyLabel {
		t.Errorf("expected busy label, got %q", trig.Label())
	}
	if _, err := trig.Request(context.Background(), "again"); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	close(src.block)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trig.Disabled() || trig.Label() != IdleLabel {
		t.Errorf("expected trigger released, got label %q", trig.Label())
	}
	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff([]bool{true, false}, transitions); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptTriggerReleasesOnFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	trig := NewPromptTrigger(src, 3, "")

	if _, err := trig.Request(context.Background(), "x"); err == nil {
		t.Fatal("expected error")
	}
	if trig.Disabled() {
		t.Error("expected trigger re-enabled after failure")
	}
}

func TestCreatePage(t *testing.T) {
	r, _ := setupComposer(t, &fakeSource{}, &fakeSubmitter{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/create", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`id="create-form"`, `value="format:photo_quote"`, "Select a content type to see preview", `id="text-input-section" style="display: none;"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestSelectFormatAction(t *testing.T) {
	r, _ := setupComposer(t, &fakeSource{}, &fakeSubmitter{})

	w := postForm(t, r, map[string][]string{"action": {"format:voice_video"}, "title": {"kept"}}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `name="content_type" id="content_type" value="voice_video"`) {
		t.Error("expected hidden content_type to carry voice_video")
	}
	if !strings.Contains(body, "fa-microphone") {
		t.Error("expected voice preview placeholder")
	}
	if strings.Contains(body, `id="audio-input-section" style="display: none;"`) {
		t.Error("expected audio section visible")
	}
	if !strings.Contains(body, `value="kept"`) {
		t.Error("expected title preserved")
	}
}

func TestGeneratePromptsAction(t *testing.T) {
	src := &fakeSource{prompts: []string{"Sunrise hope", "Quiet strength"}}
	r, _ := setupComposer(t, src, &fakeSubmitter{})

	w := postForm(t, r, map[string][]string{"action": {"prompts"}, "title": {"mornings"}}, nil)
	body := w.Body.String()
	if !strings.Contains(body, `<option value="Sunrise hope">Sunrise hope</option>`) {
		t.Error("expected suggestions in picker")
	}
	if diff := cmp.Diff([]string{"mornings"}, src.themes); diff != "" {
		t.Errorf("themes mismatch (-want +got):\n%s", diff)
	}

	w = postForm(t, r, map[string][]string{"action": {"pick"}, "prompt": {"Quiet strength"}, "suggestion": {"Sunrise hope", "Quiet strength"}}, nil)
	if !strings.Contains(w.Body.String(), ">Quiet strength</textarea>") {
		t.Error("expected picked prompt copied into text")
	}
}

func TestGeneratePromptsFailure(t *testing.T) {
	r, _ := setupComposer(t, &fakeSource{err: errors.New("down")}, &fakeSubmitter{})

	w := postForm(t, r, map[string][]string{"action": {"prompts"}}, nil)
	if !strings.Contains(w.Body.String(), PromptFailureMessage) {
		t.Error("expected failure alert")
	}
	if !strings.Contains(w.Body.String(), IdleLabel) {
		t.Error("expected trigger re-enabled")
	}
}

func TestSubmitValidationBlocks(t *testing.T) {
	sub := &fakeSubmitter{}
	r, _ := setupComposer(t, &fakeSource{}, sub)

	w := postForm(t, r, map[string][]string{"action": {"submit"}, "content_type": {"photo_quote"}, "title": {"t"}}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please enter some text content") {
		t.Error("expected missing content alert")
	}
	if !strings.Contains(w.Body.String(), "was-validated") {
		t.Error("expected was-validated marker")
	}
	if len(sub.got) != 0 {
		t.Errorf("expected no submission, got %d", len(sub.got))
	}
}

func TestSubmitGateBlocksLongTitle(t *testing.T) {
	sub := &fakeSubmitter{}
	r, _ := setupComposer(t, &fakeSource{}, sub)

	w := postForm(t, r, map[string][]string{
		"action": {"submit"}, "content_type": {"photo_quote"},
		"title": {strings.Repeat("x", 201)}, "input_text": {"body"},
	}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "is-invalid") {
		t.Error("expected title marked invalid")
	}
	if len(sub.got) != 0 {
		t.Errorf("expected no submission, got %d", len(sub.got))
	}
}

func TestSubmitRejectsAudioType(t *testing.T) {
	sub := &fakeSubmitter{}
	r, _ := setupComposer(t, &fakeSource{}, sub)

	w := postForm(t, r, map[string][]string{"action": {"submit"}, "content_type": {"voice_video"}, "title": {"t"}},
		&upload{name: "notes.txt", data: []byte("hi")})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if len(sub.got) != 0 {
		t.Errorf("expected no submission, got %d", len(sub.got))
	}
}

func TestSubmitSuccess(t *testing.T) {
	sub := &fakeSubmitter{}
	r, flashes := setupComposer(t, &fakeSource{}, sub)

	w := postForm(t, r, map[string][]string{"action": {"submit"}, "content_type": {"voice_video"}, "title": {" Hello "}},
		&upload{name: "voice.MP3", data: []byte("ID3")})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard?reload=1" {
		t.Errorf("expected redirect to dashboard, got %q", loc)
	}

	want := []apiclient.Submission{{Format: content.FormatVoiceVideo, Title: "Hello", AudioName: "voice.MP3"}}
	if diff := cmp.Diff(want, sub.got); diff != "" {
		t.Errorf("submission mismatch (-want +got):\n%s", diff)
	}
	if string(sub.audio) != "ID3" {
		t.Errorf("expected audio bytes forwarded, got %q", sub.audio)
	}

	msgs := flashes.Messages()
	if len(msgs) != 1 || msgs[0].Message != "Content created successfully!" {
		t.Errorf("expected success flash, got %+v", msgs)
	}
}

func TestSubmitUpstreamFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("503")}
	r, flashes := setupComposer(t, &fakeSource{}, sub)

	w := postForm(t, r, map[string][]string{"action": {"submit"}, "content_type": {"photo_quote"}, "title": {"t"}, "input_text": {"x"}}, nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if len(flashes.Messages()) != 0 {
		t.Error("expected no success flash")
	}
}

func TestRerenderDoesNotClaimAudioAttached(t *testing.T) {
	sub := &fakeSubmitter{}
	r, _ := setupComposer(t, &fakeSource{prompts: []string{"Calm"}}, sub)

	w := postForm(t, r, map[string][]string{"action": {"prompts"}, "content_type": {"voice_video"}, "title": {"t"}},
		&upload{name: "take.mp3", data: []byte("ID3")})
	body := w.Body.String()
	if !strings.Contains(body, `<p class="text-muted mt-2" id="audio-label"></p>`) {
		t.Error("expected the audio label to start empty on a re-rendered page")
	}
	if !strings.Contains(body, "take.mp3 was not kept") {
		t.Error("expected a hint to attach take.mp3 again")
	}

	// The browser resubmits without the file; the page must not have said otherwise.
	w = postForm(t, r, map[string][]string{"action": {"submit"}, "content_type": {"voice_video"}, "title": {"t"}}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	body = w.Body.String()
	if !strings.Contains(body, "Please provide either text or an audio file") {
		t.Error("expected missing input alert")
	}
	if strings.Contains(body, `id="audio-dropped"`) {
		t.Error("expected no dropped-file hint when nothing was sent")
	}
	if len(sub.got) != 0 {
		t.Errorf("expected no submission, got %d", len(sub.got))
	}
}

func TestPromptButtonDisablesOnSubmit(t *testing.T) {
	r, _ := setupComposer(t, &fakeSource{}, &fakeSubmitter{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/create", nil))
	body := w.Body.String()
	if !strings.Contains(body, `data-busy-label="`+BusyLabel+`"`) {
		t.Error("expected the busy caption on the prompts button")
	}
	if !strings.Contains(body, "prompts.disabled = true") {
		t.Error("expected the prompts button to disable itself on submit")
	}
}

type fakeCalendar struct {
	entries []content.CalendarEntry
	err     error
}

func (f *fakeCalendar) ContentCalendar(ctx context.Context) ([]content.CalendarEntry, error) {
	return f.entries, f.err
}

func TestCreatePageShowsCalendar(t *testing.T) {
	cal := &fakeCalendar{entries: []content.CalendarEntry{
		{Date: "2023-04-03", Suggestion: "Share a short video about your creative process", ContentType: content.FormatVideoReel},
	}}
	c := New(NewPromptTrigger(&fakeSource{}, 3, ""), &fakeSubmitter{}, Options{Calendar: cal})
	r := chi.NewRouter()
	c.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/create", nil))
	body := w.Body.String()
	for _, want := range []string{`id="content-calendar"`, "Mon, Apr 3", "Share a short video about your creative process", `form="create-form" name="action" value="format:video_reel"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}

	cal.err = errors.New("down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/create", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `id="content-calendar"`) {
		t.Error("expected the panel hidden when the calendar fails")
	}
}
