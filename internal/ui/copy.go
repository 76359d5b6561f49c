package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultCopyFeedback is how long a copy button reads "Copied!".
const DefaultCopyFeedback = 2 * time.Second

// CopiedLabel replaces a copy button's label after a successful copy.
const CopiedLabel = "Copied!"

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// CopyButton copies a fixed string and briefly confirms it.
type CopyButton struct {
	mu       sync.Mutex
	text     string
	label    string
	shown    string
	clip     Clipboard
	sched    Scheduler
	feedback time.Duration
	restore  Timer
}

// NewCopyButton creates a button that copies text and normally reads label.
func NewCopyButton(text, label string, clip Clipboard, s Scheduler, feedback time.Duration) *CopyButton {
	if feedback <= 0 {
		feedback = DefaultCopyFeedback
	}
	return &CopyButton{
		text:     text,
		label:    label,
		shown:    label,
		clip:     clip,
		sched:    s,
		feedback: feedback,
	}
}

// Click copies the button's text. The label only changes when the write
// succeeds; repeated clicks restart the feedback window.
func (b *CopyButton) Click() error {
	if err := b.clip.WriteAll(b.text); err != nil {
		log.Printf("ui: clipboard write: %v", err)
		return fmt.Errorf("copying to clipboard: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.restore != nil {
		b.restore.Stop()
	}
	b.shown = CopiedLabel
	b.restore = b.sched.AfterFunc(b.feedback, func() {
		b.mu.Lock()
		b.shown = b.label
		b.mu.Unlock()
	})
	return nil
}

// Label returns the text the button currently displays.
func (b *CopyButton) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shown
}

// Text returns the string the button copies.
func (b *CopyButton) Text() string { return b.text }
