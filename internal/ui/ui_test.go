package ui

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDebounceCollapsesBurst(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	var firedAt time.Duration
	fn := Debounce(s, 150*time.Millisecond, func() {
		calls++
		firedAt = s.Elapsed()
	})

	// Five calls within 50ms.
	for i := 0; i < 5; i++ {
		fn()
		if i < 4 {
			s.Advance(10 * time.Millisecond)
		}
	}
	s.Advance(149 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("expected no call before the quiet period ends, got %d", calls)
	}
	s.Advance(time.Second)

	if calls != 1 {
		t.Fatalf("expected exactly 1 call, got %d", calls)
	}
	if want := 40*time.Millisecond + 150*time.Millisecond; firedAt != want {
		t.Errorf("fired at %v, want %v", firedAt, want)
	}
}

func TestDebounceSeparateBursts(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	fn := Debounce(s, 100*time.Millisecond, func() { calls++ })

	fn()
	s.Advance(200 * time.Millisecond)
	fn()
	fn()
	s.Advance(200 * time.Millisecond)

	if calls != 2 {
		t.Errorf("expected 2 calls for 2 bursts, got %d", calls)
	}
}

func TestDebounceRealScheduler(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	done := make(chan struct{}, 1)
	fn := Debounce(RealScheduler, 30*time.Millisecond, func() {
		mu.Lock()
		calls++
		mu.Unlock()
		done <- struct{}{}
	})
	for i := 0; i < 5; i++ {
		fn()
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function never ran")
	}
	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestFlashBoardDismissesAfterDelay(t *testing.T) {
	s := NewManualScheduler()
	b := NewFlashBoard(s, 5*time.Second)

	b.Add("success", "Content created successfully!")
	s.Advance(2 * time.Second)
	b.Add("info", "second")

	s.Advance(3 * time.Second)
	msgs := b.Messages()
	if len(msgs) != 1 || msgs[0].Message != "second" {
		t.Fatalf("expected only the second message to remain, got %+v", msgs)
	}
	s.Advance(2 * time.Second)
	if len(b.Messages()) != 0 {
		t.Errorf("expected all messages dismissed, got %+v", b.Messages())
	}
}

func TestFlashBoardManualDismissIsOneShot(t *testing.T) {
	s := NewManualScheduler()
	b := NewFlashBoard(s, 0)
	f := b.Add("info", "hello")

	if !b.Dismiss(f.ID) {
		t.Fatal("expected first dismiss to succeed")
	}
	if b.Dismiss(f.ID) {
		t.Error("expected second dismiss to report false")
	}
	s.Advance(DefaultFlashDismiss)
	if len(b.Messages()) != 0 {
		t.Error("expected board to stay empty")
	}
}

func TestFlashBoardSubscribeReceivesDismissals(t *testing.T) {
	s := NewManualScheduler()
	b := NewFlashBoard(s, 0)
	dismissed, cancel := b.Subscribe()
	defer cancel()

	f := b.Add("success", "Content created successfully!")
	select {
	case got := <-dismissed:
		t.Fatalf("expected nothing before the delay, got %+v", got)
	default:
	}

	s.Advance(DefaultFlashDismiss)
	select {
	case got := <-dismissed:
		if got != f {
			t.Errorf("expected %+v, got %+v", f, got)
		}
	default:
		t.Fatal("expected a dismissal after the delay")
	}

	cancel()
	if _, ok := <-dismissed; ok {
		t.Error("expected channel closed after cancel")
	}
	b.Add("info", "later")
	s.Advance(DefaultFlashDismiss)
}

func TestActiveNavExactMatchOnly(t *testing.T) {
	links := []NavLink{
		{Href: "/", Text: "Home"},
		{Href: "/dashboard", Text: "Dashboard"},
		{Href: "/content", Text: "Content"},
	}

	got := ActiveNav(links, "/dashboard")
	want := []NavLink{
		{Href: "/", Text: "Home"},
		{Href: "/dashboard", Text: "Dashboard", Active: true},
		{Href: "/content", Text: "Content"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ActiveNav mismatch (-want +got):\n%s", diff)
	}

	for _, l := range ActiveNav(links, "/content/7") {
		if l.Active {
			t.Errorf("prefix match activated %q", l.Href)
		}
	}
	if links[1].Active {
		t.Error("ActiveNav must not mutate its input")
	}
}

func TestFormGate(t *testing.T) {
	form := &Form{Fields: []Field{
		{Name: "title", Type: "text", Required: true, MaxLength: 10},
		{Name: "email", Type: "email"},
		{Name: "code", Type: "text", Pattern: "[A-Z]{3}"},
		{Name: "count", Type: "number"},
	}}

	err := form.Submit(map[string]string{"title": ""})
	var invalid *InvalidFormError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidFormError, got %v", err)
	}
	if len(invalid.Fields) != 1 || invalid.Fields[0].Field != "title" {
		t.Errorf("unexpected field errors: %+v", invalid.Fields)
	}
	if !form.WasValidated {
		t.Error("expected WasValidated after a failed submit")
	}

	err = form.Submit(map[string]string{
		"title": "far too long a title",
		"email": "nope",
		"code":  "abc",
		"count": "x",
	})
	if !errors.As(err, &invalid) || len(invalid.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %v", err)
	}

	err = form.Submit(map[string]string{
		"title": "Sunrise",
		"email": "a@b.co",
		"code":  "ABC",
		"count": "3",
	})
	if err != nil {
		t.Errorf("expected valid form, got %v", err)
	}
}

func TestFileLabel(t *testing.T) {
	if got := FileLabel(`C:\fakepath\voice.mp3`, "Choose file"); got != "voice.mp3" {
		t.Errorf("got %q, want voice.mp3", got)
	}
	if got := FileLabel("", "Choose file"); got != "Choose file" {
		t.Errorf("got %q, want fallback", got)
	}
}

type fakeClipboard struct {
	written []string
	err     error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, text)
	return nil
}

func TestCopyButtonFeedback(t *testing.T) {
	s := NewManualScheduler()
	clip := &fakeClipboard{}
	b := NewCopyButton("https://studio.example/content/7", "Copy link", clip, s, 2*time.Second)

	if err := b.Click(); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if b.Label() != CopiedLabel {
		t.Errorf("label = %q, want %q", b.Label(), CopiedLabel)
	}
	if len(clip.written) != 1 || clip.written[0] != b.Text() {
		t.Errorf("clipboard = %v", clip.written)
	}

	s.Advance(1 * time.Second)
	if err := b.Click(); err != nil {
		t.Fatalf("second Click: %v", err)
	}
	s.Advance(1500 * time.Millisecond)
	if b.Label() != CopiedLabel {
		t.Error("second click should restart the feedback window")
	}
	s.Advance(time.Second)
	if b.Label() != "Copy link" {
		t.Errorf("label = %q, want original label restored", b.Label())
	}
}

func TestCopyButtonWriteFailureKeepsLabel(t *testing.T) {
	s := NewManualScheduler()
	b := NewCopyButton("x", "Copy", &fakeClipboard{err: errors.New("no display")}, s, 0)

	if err := b.Click(); err == nil {
		t.Fatal("expected error")
	}
	if b.Label() != "Copy" {
		t.Errorf("label changed on failure: %q", b.Label())
	}
	if s.Pending() != 0 {
		t.Error("no restore should be scheduled on failure")
	}
}

func TestBackToTop(t *testing.T) {
	s := NewManualScheduler()
	var changes []bool
	b := NewBackToTop(s, DefaultScrollDebounce, DefaultBackToTopThreshold, func(v bool) {
		changes = append(changes, v)
	})

	b.Scroll(120)
	b.Scroll(280)
	b.Scroll(301)
	if b.Visible() {
		t.Fatal("visibility should wait for the debounce")
	}
	s.Advance(DefaultScrollDebounce)
	if !b.Visible() {
		t.Fatal("expected visible past 300px")
	}

	b.Scroll(300)
	s.Advance(DefaultScrollDebounce)
	if b.Visible() {
		t.Error("exactly 300px should hide the button")
	}
	if diff := cmp.Diff([]bool{true, false}, changes); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}

	if got := b.Click(); got.Top != 0 || got.Behavior != "smooth" {
		t.Errorf("Click = %+v", got)
	}
}

func TestInitWidgets(t *testing.T) {
	w := InitWidgets([]Widget{
		{Toggle: "tooltip", Title: "Delete"},
		{Toggle: "popover", Title: "Help", Content: "Pick a format"},
		{Toggle: "dropdown"},
		{Toggle: "tooltip", Title: "Export"},
	})
	if len(w.Tooltips) != 2 || len(w.Popovers) != 1 {
		t.Errorf("got %d tooltips, %d popovers", len(w.Tooltips), len(w.Popovers))
	}
}

func TestManualSchedulerStop(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	tm := s.AfterFunc(time.Second, func() { fired = true })
	if !tm.Stop() {
		t.Fatal("expected Stop to report a pending timer")
	}
	if tm.Stop() {
		t.Error("second Stop should report false")
	}
	s.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}
