package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Indicator shows that a request is in flight.
type Indicator interface {
	Start(message string)
	Stop()
}

// NewIndicator returns a TerminalIndicator if running in an interactive
// terminal, or a CIIndicator if the CI environment variable is set.
func NewIndicator() Indicator {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIIndicator{Out: os.Stderr}
	}
	return &TerminalIndicator{}
}

// Run starts ind, runs fn and stops ind however fn returns.
func Run(ind Indicator, message string, fn func() error) error {
	ind.Start(message)
	defer ind.Stop()
	return fn()
}

// TerminalIndicator displays a spinner in the terminal.
type TerminalIndicator struct {
	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

func (t *TerminalIndicator) Start(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bar != nil {
		t.bar.Describe(message)
		return
	}
	t.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
	t.done = make(chan struct{})
	t.wg.Add(1)
	go t.spin(t.bar, t.done)
}

func (t *TerminalIndicator) spin(bar *progressbar.ProgressBar, done <-chan struct{}) {
	defer t.wg.Done()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = bar.Add(1)
		case <-done:
			return
		}
	}
}

func (t *TerminalIndicator) Stop() {
	t.mu.Lock()
	bar, done := t.bar, t.done
	t.bar, t.done = nil, nil
	t.mu.Unlock()
	if bar == nil {
		return
	}
	close(done)
	t.wg.Wait()
	_ = bar.Finish()
}

// CIIndicator prints one line per state change, suitable for CI logs.
type CIIndicator struct {
	Out     io.Writer
	message string
	started time.Time
}

func (c *CIIndicator) Start(message string) {
	c.message = message
	c.started = time.Now()
	fmt.Fprintf(c.Out, "%s...\n", message)
}

func (c *CIIndicator) Stop() {
	if c.message == "" {
		return
	}
	fmt.Fprintf(c.Out, "%s done (%s)\n", c.message, time.Since(c.started).Round(time.Millisecond))
	c.message = ""
}
