package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/page"
	"github.com/ziadkadry99/content-studio/internal/ui"
)

var (
	// ErrNotConfirmed is returned when a delete was not confirmed by the user.
	ErrNotConfirmed = errors.New("delete not confirmed")
	// ErrUnknownContent is returned for an id that is not in the grid.
	ErrUnknownContent = errors.New("unknown content")
	// ErrUnknownFormat is returned for a remix target that names no format.
	ErrUnknownFormat = errors.New("unknown format")
)

const (
	DeletedMessage     = "Content deleted successfully"
	DeleteErrorMessage = "Error deleting content"
	RemixErrorMessage  = "Error remixing content"
	CopyLinkLabel      = "Copy link"
)

// Upstream is the part of the content platform the dashboard talks to.
type Upstream interface {
	FetchPage(ctx context.Context, path string) ([]byte, error)
	DeleteContent(ctx context.Context, id string) error
	Remix(ctx context.Context, id string, target content.Format) (int, error)
	URL(path string) string
}

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	Clipboard    ui.Clipboard
	Scheduler    ui.Scheduler
	CopyFeedback time.Duration
}

// Controller owns the dashboard view and runs the actions on it.
type Controller struct {
	up       Upstream
	notifier *Notifier
	clip     ui.Clipboard
	sched    ui.Scheduler
	feedback time.Duration

	mu     sync.Mutex
	view   *View
	loaded bool
	copies map[string]*ui.CopyButton
}

// NewController creates a controller over up.
func NewController(up Upstream, notifier *Notifier, opts ControllerOptions) *Controller {
	if opts.Clipboard == nil {
		opts.Clipboard = ui.SystemClipboard{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = ui.RealScheduler
	}
	return &Controller{
		up:       up,
		notifier: notifier,
		clip:     opts.Clipboard,
		sched:    opts.Scheduler,
		feedback: opts.CopyFeedback,
		view:     NewView(),
		copies:   map[string]*ui.CopyButton{},
	}
}

// Reload fetches the upstream dashboard and replaces the grid with its cards.
func (c *Controller) Reload(ctx context.Context) error {
	body, err := c.up.FetchPage(ctx, "/dashboard")
	if err != nil {
		return fmt.Errorf("fetching dashboard: %w", err)
	}
	cards, err := page.ParseDashboard(bytes.NewReader(body))
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Load(cards)
	c.loaded = true
	return nil
}

// EnsureLoaded reloads when the grid was never loaded or force is set.
func (c *Controller) EnsureLoaded(ctx context.Context, force bool) error {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if loaded && !force {
		return nil
	}
	return c.Reload(ctx)
}

// Delete removes a card upstream and then from the grid. Nothing is sent
// unless the user confirmed. The outcome is reported as a notice.
func (c *Controller) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := c.up.DeleteContent(ctx, id); err != nil {
		log.Printf("dashboard: deleting content %s: %v", id, err)
		c.notifier.Notify(DeleteErrorMessage, SeverityError)
		return fmt.Errorf("deleting content %s: %w", id, err)
	}

	c.mu.Lock()
	c.view.Remove(id)
	delete(c.copies, id)
	c.mu.Unlock()

	c.notifier.Notify(DeletedMessage, SeveritySuccess)
	return nil
}

// Remix turns a card into a new item of the target format. The grid is
// marked stale so the next render picks the new item up.
func (c *Controller) Remix(ctx context.Context, id, target string) (string, error) {
	format, ok := content.ParseFormat(target)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, target)
	}
	if _, ok := c.Lookup(id); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownContent, id)
	}

	newID, err := c.up.Remix(ctx, id, format)
	if err != nil {
		log.Printf("dashboard: remixing content %s into %s: %v", id, format, err)
		c.notifier.Notify(RemixErrorMessage, SeverityError)
		return "", fmt.Errorf("remixing content %s: %w", id, err)
	}

	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()

	c.notifier.Notify("Content remixed into a new "+format.Label(), SeveritySuccess)
	return strconv.Itoa(newID), nil
}

// Search applies a search term to the grid.
func (c *Controller) Search(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Search(term)
}

// Filter applies a type filter to the grid.
func (c *Controller) Filter(t string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.FilterByType(t)
}

// Lookup returns the card with the given id.
func (c *Controller) Lookup(id string) (content.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Lookup(id)
}

// Snapshot is a consistent copy of the grid for rendering.
type Snapshot struct {
	All     []content.Item
	Visible []content.Item
	Stats   Stats
	Search  string
	Filter  string
}

// Snapshot copies the current grid state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		All:     c.view.Cards(),
		Visible: c.view.Visible(),
		Stats:   c.view.Stats(),
		Search:  c.view.SearchTerm(),
		Filter:  c.view.TypeFilter(),
	}
}

// DetailURL is where clicking a card leads.
func (c *Controller) DetailURL(id string) string {
	return c.up.URL("/content/" + url.PathEscape(id))
}

// CopyLink copies the detail URL of a card to the clipboard.
func (c *Controller) CopyLink(id string) error {
	c.mu.Lock()
	if _, ok := c.view.Lookup(id); !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownContent, id)
	}
	btn, ok := c.copies[id]
	if !ok {
		btn = ui.NewCopyButton(c.DetailURL(id), CopyLinkLabel, c.clip, c.sched, c.feedback)
		c.copies[id] = btn
	}
	c.mu.Unlock()
	return btn.Click()
}

// CopyLabel is the current caption of a card's copy button.
func (c *Controller) CopyLabel(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if btn, ok := c.copies[id]; ok {
		return btn.Label()
	}
	return CopyLinkLabel
}

// Export writes the grid as JSON. With visibleOnly set, cards hidden by
// the current filter are left out.
func (c *Controller) Export(w io.Writer, visibleOnly bool) error {
	snap := c.Snapshot()
	if visibleOnly {
		return Export(w, snap.Visible)
	}
	return Export(w, snap.All)
}
