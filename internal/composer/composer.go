package composer

import (
	"context"
	"html/template"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/content-studio/internal/apiclient"
	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/ui"
	"github.com/ziadkadry99/content-studio/internal/web"
)

// Submitter forwards a validated form to the upstream.
type Submitter interface {
	SubmitContent(ctx context.Context, s apiclient.Submission) error
}

// CalendarSource lists upcoming content suggestions.
type CalendarSource interface {
	ContentCalendar(ctx context.Context) ([]content.CalendarEntry, error)
}

// DefaultFields are the HTML5 constraints of the create form.
var DefaultFields = []ui.Field{
	{Name: "title", Type: "text", Required: true, MaxLength: 200},
	{Name: "input_text", Type: "textarea"},
	{Name: "audio_file", Type: "file"},
}

// Options configures a Composer.
type Options struct {
	Policy   content.AudioPolicy
	Flashes  *ui.FlashBoard
	Fields   []ui.Field
	// Calendar feeds the suggestions panel. The panel is hidden when nil.
	Calendar CalendarSource
}

// Composer serves the create-content page.
type Composer struct {
	trigger   *PromptTrigger
	submitter Submitter
	policy    content.AudioPolicy
	flashes   *ui.FlashBoard
	fields    []ui.Field
	calendar  CalendarSource
	tmpl      *template.Template
}

// New creates a Composer.
func New(trigger *PromptTrigger, submitter Submitter, opts Options) *Composer {
	if opts.Policy.Patterns == nil && opts.Policy.MaxBytes == 0 {
		opts.Policy = content.DefaultAudioPolicy()
	}
	if opts.Fields == nil {
		opts.Fields = DefaultFields
	}
	return &Composer{
		trigger:   trigger,
		submitter: submitter,
		policy:    opts.Policy,
		flashes:   opts.Flashes,
		fields:    opts.Fields,
		calendar:  opts.Calendar,
		tmpl:      web.NewPage("composer", pageTemplate, nil),
	}
}

// RegisterRoutes mounts the composer routes onto the given router.
func (c *Composer) RegisterRoutes(r chi.Router) {
	r.Get("/create", c.handlePage)
	r.Post("/create", c.handleAction)
}
