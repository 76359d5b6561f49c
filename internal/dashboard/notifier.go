package dashboard

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/content-studio/internal/ui"
)

// DefaultNoticeDismiss is how long a notice stays on screen.
const DefaultNoticeDismiss = 3 * time.Second

// Severity is the styling of a notice.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is a transient, non-blocking banner.
type Notice struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	EventShow    = "show"
	EventDismiss = "dismiss"
)

// Event tells subscribers a notice appeared or went away.
type Event struct {
	Type   string `json:"type"`
	Notice Notice `json:"notice"`
}

// Notifier keeps the notices on screen. Notices stack; the same message
// sent twice shows twice.
type Notifier struct {
	mu      sync.Mutex
	sched   ui.Scheduler
	ttl     time.Duration
	active  []Notice
	subs    map[int]chan Event
	nextSub int
}

// NewNotifier creates a notifier dismissing notices after ttl.
func NewNotifier(s ui.Scheduler, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNoticeDismiss
	}
	return &Notifier{sched: s, ttl: ttl, subs: map[int]chan Event{}}
}

// Notify shows a notice and schedules its dismissal.
func (n *Notifier) Notify(message string, severity Severity) Notice {
	notice := Notice{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	n.active = append(n.active, notice)
	n.broadcastLocked(Event{Type: EventShow, Notice: notice})
	n.mu.Unlock()

	n.sched.AfterFunc(n.ttl, func() { n.dismiss(notice.ID) })
	return notice
}

func (n *Notifier) dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, a := range n.active {
		if a.ID == id {
			n.active = append(n.active[:i], n.active[i+1:]...)
			n.broadcastLocked(Event{Type: EventDismiss, Notice: a})
			return
		}
	}
}

// Active returns the notices currently shown, oldest first.
func (n *Notifier) Active() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notice, len(n.active))
	copy(out, n.active)
	return out
}

// Subscribe returns a channel of notice events and a function that ends
// the subscription. A subscriber that falls behind misses events.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextSub
	n.nextSub++
	ch := make(chan Event, 16)
	n.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(ch)
		})
	}
}

func (n *Notifier) broadcastLocked(ev Event) {
	for id, ch := range n.subs {
		select {
		case ch <- ev:
		default:
			log.Printf("dashboard: subscriber %d is behind, dropping %s event", id, ev.Type)
		}
	}
}
