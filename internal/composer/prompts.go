package composer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

const (
	IdleLabel = "Generate Prompts"
	BusyLabel = "Generating..."

	// PromptFailureMessage is shown when suggestions could not be fetched.
	PromptFailureMessage = "Error generating prompts. Please try again."

	DefaultPromptCount = 3
	DefaultTheme       = "general"
)

// ErrBusy is returned when the trigger is pressed while its request is in flight.
var ErrBusy = errors.New("prompt generation already in progress")

// PromptSource produces prompt suggestions.
type PromptSource interface {
	GeneratePrompts(ctx context.Context, theme string, count int) ([]string, error)
}

// PromptTrigger is the "Generate Prompts" control. It is disabled for the
// duration of its own request and re-enabled however the request ends.
type PromptTrigger struct {
	src          PromptSource
	count        int
	defaultTheme string
	onChange     func(busy bool)

	mu   sync.Mutex
	busy bool
}

// TriggerOption configures a PromptTrigger.
type TriggerOption func(*PromptTrigger)

// WithBusyHook runs fn whenever the control is disabled or re-enabled.
func WithBusyHook(fn func(busy bool)) TriggerOption {
	return func(t *PromptTrigger) { t.onChange = fn }
}

// NewPromptTrigger creates a trigger asking src for count suggestions.
func NewPromptTrigger(src PromptSource, count int, defaultTheme string, opts ...TriggerOption) *PromptTrigger {
	if count <= 0 {
		count = DefaultPromptCount
	}
	if defaultTheme == "" {
		defaultTheme = DefaultTheme
	}
	t := &PromptTrigger{src: src, count: count, defaultTheme: defaultTheme}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Request fetches suggestions for theme; an empty theme uses the default.
func (t *PromptTrigger) Request(ctx context.Context, theme string) ([]string, error) {
	if !t.acquire() {
		return nil, ErrBusy
	}
	defer t.release()

	if strings.TrimSpace(theme) == "" {
		theme = t.defaultTheme
	}
	prompts, err := t.src.GeneratePrompts(ctx, theme, t.count)
	if err != nil {
		log.Printf("composer: generating prompts: %v", err)
		return nil, fmt.Errorf("generating prompts: %w", err)
	}
	return prompts, nil
}

// Disabled reports whether a request is in flight.
func (t *PromptTrigger) Disabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy
}

// Label is the control's current caption.
func (t *PromptTrigger) Label() string {
	if t.Disabled() {
		return BusyLabel
	}
	return IdleLabel
}

func (t *PromptTrigger) acquire() bool {
	t.mu.Lock()
	if t.busy {
		t.mu.Unlock()
		return false
	}
	t.busy = true
	t.mu.Unlock()
	t.notify(true)
	return true
}

func (t *PromptTrigger) release() {
	t.mu.Lock()
	t.busy = false
	t.mu.Unlock()
	t.notify(false)
}

func (t *PromptTrigger) notify(busy bool) {
	if t.onChange != nil {
		t.onChange(busy)
	}
}
