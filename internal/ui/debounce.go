package ui

import (
	"sync"
	"time"
)

// Debounce returns a wrapper that calls fn once, wait after the last call
// of a burst. Every call restarts the quiet period.
func Debounce(s Scheduler, wait time.Duration, fn func()) func() {
	var (
		mu    sync.Mutex
		timer Timer
	)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = s.AfterFunc(wait, fn)
	}
}
