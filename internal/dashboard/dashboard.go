package dashboard

import (
	"html/template"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/ui"
	"github.com/ziadkadry99/content-studio/internal/web"
)

// Options configures the dashboard's web front end.
type Options struct {
	Flashes   *ui.FlashBoard
	Scheduler ui.Scheduler
	// ScrollDebounce and BackToTopThreshold drive the live back-to-top button.
	ScrollDebounce     time.Duration
	BackToTopThreshold int
}

// Dashboard serves the content grid and its live channel.
type Dashboard struct {
	ctrl       *Controller
	notifier   *Notifier
	flashes    *ui.FlashBoard
	sched      ui.Scheduler
	scrollWait time.Duration
	threshold  int

	gridTmpl    *template.Template
	confirmTmpl *template.Template
}

// New creates a new Dashboard.
func New(ctrl *Controller, notifier *Notifier, opts Options) *Dashboard {
	if opts.Scheduler == nil {
		opts.Scheduler = ui.RealScheduler
	}
	if opts.ScrollDebounce <= 0 {
		opts.ScrollDebounce = ui.DefaultScrollDebounce
	}
	if opts.BackToTopThreshold <= 0 {
		opts.BackToTopThreshold = ui.DefaultBackToTopThreshold
	}
	funcs := template.FuncMap{"remixTargets": remixTargets}
	return &Dashboard{
		ctrl:        ctrl,
		notifier:    notifier,
		flashes:     opts.Flashes,
		sched:       opts.Scheduler,
		scrollWait:  opts.ScrollDebounce,
		threshold:   opts.BackToTopThreshold,
		gridTmpl:    web.NewPage("dashboard", gridTemplate, funcs),
		confirmTmpl: web.NewPage("confirm", confirmTemplate, funcs),
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.handleRoot)
	r.Get("/dashboard", d.handleGrid)
	r.Post("/dashboard/search", d.handleSearch)
	r.Post("/dashboard/filter", d.handleFilter)
	r.Get("/dashboard/export", d.handleExport)
	r.Get("/content/{id}", d.handleDetail)
	r.Get("/content/{id}/delete", d.handleConfirmDelete)
	r.Post("/content/{id}/delete", d.handleDelete)
	r.Post("/content/{id}/copy", d.handleCopy)
	r.Post("/content/{id}/remix", d.handleRemix)
	r.Get("/api/dashboard/stats", d.handleStats)
	r.Get("/ws/live", d.handleLive)
}

// remixTargets lists the formats a card of format f can be remixed into.
func remixTargets(f content.Format) []content.Format {
	var out []content.Format
	for _, t := range content.Formats() {
		if t != f {
			out = append(out, t)
		}
	}
	return out
}
