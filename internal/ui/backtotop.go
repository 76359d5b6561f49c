package ui

import (
	"sync"
	"time"
)

const (
	DefaultBackToTopThreshold = 300
	DefaultScrollDebounce     = 150 * time.Millisecond
)

// ScrollTarget is the instruction sent to the page when back-to-top is used.
type ScrollTarget struct {
	Top      int    `json:"top"`
	Behavior string `json:"behavior"`
}

// BackToTop tracks whether the back-to-top button should be visible. Scroll
// offsets are debounced; visibility is re-evaluated once a burst settles.
type BackToTop struct {
	mu        sync.Mutex
	threshold int
	offset    int
	visible   bool
	onChange  func(visible bool)
	scrolled  func()
}

// NewBackToTop creates the button state. onChange, if set, runs whenever
// visibility flips.
func NewBackToTop(s Scheduler, wait time.Duration, threshold int, onChange func(visible bool)) *BackToTop {
	b := &BackToTop{threshold: threshold, onChange: onChange}
	b.scrolled = Debounce(s, wait, b.evaluate)
	return b
}

// Scroll records the page's vertical offset.
func (b *BackToTop) Scroll(offset int) {
	b.mu.Lock()
	b.offset = offset
	b.mu.Unlock()
	b.scrolled()
}

func (b *BackToTop) evaluate() {
	b.mu.Lock()
	v := b.offset > b.threshold
	changed := v != b.visible
	b.visible = v
	cb := b.onChange
	b.mu.Unlock()

	if changed && cb != nil {
		cb(v)
	}
}

// Visible reports whether the button is shown.
func (b *BackToTop) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Click returns the smooth scroll to the top of the page.
func (b *BackToTop) Click() ScrollTarget {
	return ScrollTarget{Top: 0, Behavior: "smooth"}
}
