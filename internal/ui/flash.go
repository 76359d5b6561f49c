package ui

import (
	"log"
	"sync"
	"time"
)

// DefaultFlashDismiss is how long a flash message stays on screen.
const DefaultFlashDismiss = 5 * time.Second

// Flash is a server-issued status message shown at the top of a page.
type Flash struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// FlashBoard holds the flash messages currently on screen. Each message is
// dismissed once, a fixed delay after it was added.
type FlashBoard struct {
	mu       sync.Mutex
	sched    Scheduler
	delay    time.Duration
	nextID   int
	messages []Flash
	subs     map[int]chan Flash
	nextSub  int
}

// NewFlashBoard creates a board that dismisses messages after delay.
func NewFlashBoard(s Scheduler, delay time.Duration) *FlashBoard {
	if delay <= 0 {
		delay = DefaultFlashDismiss
	}
	return &FlashBoard{sched: s, delay: delay, subs: map[int]chan Flash{}}
}

// Add shows a message and schedules its dismissal.
func (b *FlashBoard) Add(category, message string) Flash {
	b.mu.Lock()
	b.nextID++
	f := Flash{ID: b.nextID, Category: category, Message: message}
	b.messages = append(b.messages, f)
	b.mu.Unlock()

	b.sched.AfterFunc(b.delay, func() { b.Dismiss(f.ID) })
	return f
}

// Dismiss removes a message and tells subscribers. It reports whether the
// message was still shown.
func (b *FlashBoard) Dismiss(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, f := range b.messages {
		if f.ID == id {
			b.messages = append(b.messages[:i], b.messages[i+1:]...)
			for sub, ch := range b.subs {
				select {
				case ch <- f:
				default:
					log.Printf("ui: flash subscriber %d is behind, dropping dismissal of %d", sub, f.ID)
				}
			}
			return true
		}
	}
	return false
}

// Messages returns the messages currently shown, oldest first.
func (b *FlashBoard) Messages() []Flash {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Flash, len(b.messages))
	copy(out, b.messages)
	return out
}

// Subscribe returns a channel receiving every dismissed message, and a
// function that ends the subscription.
func (b *FlashBoard) Subscribe() (<-chan Flash, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextSub
	b.nextSub++
	ch := make(chan Flash, 16)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}
