package dashboard

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/content-studio/internal/ui"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type   string `json:"type"` // "scroll" or "back_to_top"
	Offset int    `json:"offset"`
}

// liveEvent is the outgoing WebSocket message format.
type liveEvent struct {
	Type    string           `json:"type"`
	Notice  *Notice          `json:"notice,omitempty"`
	Flash   *ui.Flash        `json:"flash,omitempty"`
	Flashes []int            `json:"flashes,omitempty"`
	Visible *bool            `json:"visible,omitempty"`
	Target  *ui.ScrollTarget `json:"target,omitempty"`
	Content string           `json:"content,omitempty"`
}

// Outgoing event types besides the notice events.
const (
	eventFlashSync    = "flash_sync"
	eventFlashDismiss = "flash_dismiss"
	eventBackToTop    = "back_to_top"
	eventScrollTo     = "scroll_to"
	eventError        = "error"
)

// handleLive streams notices and flash dismissals to the page and drives
// its back-to-top button. Notices exist only on this channel; flashes are
// rendered with the page and removed through it. All writes go through one
// goroutine; gorilla connections allow a single concurrent writer.
func (d *Dashboard) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	// The upgraded connection outlives the server's write timeout.
	conn.NetConn().SetDeadline(time.Time{})

	events, unsubscribe := d.notifier.Subscribe()
	defer unsubscribe()

	var dismissed <-chan ui.Flash
	if d.flashes != nil {
		ch, cancel := d.flashes.Subscribe()
		defer cancel()
		dismissed = ch
	}

	out := make(chan liveEvent, 16)
	done := make(chan struct{})
	writerDone := make(chan struct{})
	defer func() {
		close(done)
		<-writerDone
	}()

	send := func(ev liveEvent) {
		select {
		case out <- ev:
		case <-done:
		}
	}

	go func() {
		defer close(writerDone)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				d.write(conn, liveEvent{Type: ev.Type, Notice: &ev.Notice})
			case f, ok := <-dismissed:
				if !ok {
					return
				}
				d.write(conn, liveEvent{Type: eventFlashDismiss, Flash: &f})
			case ev := <-out:
				d.write(conn, ev)
			case <-done:
				return
			}
		}
	}()

	// Flashes dismissed between the page render and this connection are
	// missing from the sync list; the page drops them.
	if d.flashes != nil {
		ids := []int{}
		for _, f := range d.flashes.Messages() {
			ids = append(ids, f.ID)
		}
		send(liveEvent{Type: eventFlashSync, Flashes: ids})
	}
	for _, n := range d.notifier.Active() {
		send(liveEvent{Type: EventShow, Notice: &n})
	}

	top := ui.NewBackToTop(d.sched, d.scrollWait, d.threshold, func(visible bool) {
		send(liveEvent{Type: eventBackToTop, Visible: &visible})
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("dashboard: websocket read: %v", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			send(liveEvent{Type: eventError, Content: "invalid message format"})
			continue
		}

		switch req.Type {
		case "scroll":
			top.Scroll(req.Offset)
		case "back_to_top":
			target := top.Click()
			send(liveEvent{Type: eventScrollTo, Target: &target})
		default:
			send(liveEvent{Type: eventError, Content: "unknown message type: " + req.Type})
		}
	}
}

func (d *Dashboard) write(conn *websocket.Conn, ev liveEvent) {
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("dashboard: websocket write: %v", err)
	}
}
