package composer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ziadkadry99/content-studio/internal/apiclient"
	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/ui"
	"github.com/ziadkadry99/content-studio/internal/web"
)

const (
	actionFormat  = "format:"
	actionPrompts = "prompts"
	actionPick    = "pick"
	actionSubmit  = "submit"
)

type formatCard struct {
	Format   content.Format
	Label    string
	Selected bool
}

type calendarRow struct {
	Date       string
	Suggestion string
	Format     content.Format
	Label      string
}

type pageData struct {
	Chrome         web.Chrome
	State          State
	Cards          []formatCard
	Sections       Visibility
	Preview        Placeholder
	Alert          string
	WasValidated   bool
	PromptLabel    string
	PromptDisabled bool
	BusyLabel      string
	FieldErrors    map[string]string
	Calendar       []calendarRow
	// AudioDropped names a file the browser sent with this request. File
	// inputs come back empty on a re-rendered page.
	AudioDropped   string
}

func (c *Composer) handlePage(w http.ResponseWriter, r *http.Request) {
	p := c.newPage(State{})
	p.Calendar = c.loadCalendar(r.Context())
	c.render(w, http.StatusOK, p)
}

// loadCalendar fetches the suggestions panel. A failing upstream only hides
// the panel.
func (c *Composer) loadCalendar(ctx context.Context) []calendarRow {
	if c.calendar == nil {
		return nil
	}
	entries, err := c.calendar.ContentCalendar(ctx)
	if err != nil {
		log.Printf("composer: loading content calendar: %v", err)
		return nil
	}
	rows := make([]calendarRow, 0, len(entries))
	for _, e := range entries {
		row := calendarRow{Date: e.Date, Suggestion: e.Suggestion, Format: e.ContentType, Label: e.ContentType.Label()}
		if day := e.Day(); !day.IsZero() {
			row.Date = day.Format("Mon, Jan 2")
		}
		rows = append(rows, row)
	}
	return rows
}

func (c *Composer) handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(c.maxMemory()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		p := c.newPage(State{})
		p.Alert = "The form could not be read. Is the audio file too large?"
		c.render(w, http.StatusBadRequest, p)
		return
	}

	st := stateFromRequest(r)
	p := c.newPage(st)
	p.AudioDropped = attachedAudio(r)

	action := r.FormValue("action")
	switch {
	case strings.HasPrefix(action, actionFormat):
		next, err := st.SelectFormat(content.Format(strings.TrimPrefix(action, actionFormat)))
		if err != nil {
			p.Alert = "Unknown content type"
		}
		st = next
	case action == actionPrompts:
		prompts, err := c.trigger.Request(r.Context(), st.Title)
		switch {
		case errors.Is(err, ErrBusy):
			p.Alert = "Prompts are already being generated."
		case err != nil:
			p.Alert = PromptFailureMessage
		default:
			st = st.WithSuggestions(prompts)
		}
	case action == actionPick:
		st = st.PickSuggestion(r.FormValue("prompt"))
	case action == actionSubmit:
		c.submit(w, r, st, p)
		return
	}

	p.fill(st, c.trigger)
	c.render(w, http.StatusOK, p)
}

func (c *Composer) submit(w http.ResponseWriter, r *http.Request, st State, p pageData) {
	file, hdr, err := r.FormFile("audio_file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		log.Printf("composer: reading audio upload: %v", err)
	}
	if file != nil {
		defer file.Close()
	}
	audioName := ""
	if hdr != nil {
		audioName = hdr.Filename
	}

	gate := ui.Form{Fields: c.fields}
	gateErr := gate.Submit(map[string]string{
		"title":      st.Title,
		"input_text": st.Text,
		"audio_file": audioName,
	})
	p.WasValidated = gate.WasValidated
	p.fill(st, c.trigger)

	var verr *ValidationError
	if err := Validate(Submission{Format: st.Format, Title: st.Title, Text: st.Text, HasAudio: hdr != nil}); errors.As(err, &verr) {
		p.Alert = verr.Message()
		c.render(w, http.StatusUnprocessableEntity, p)
		return
	}
	var ferr *ui.InvalidFormError
	if errors.As(gateErr, &ferr) {
		p.FieldErrors = make(map[string]string, len(ferr.Fields))
		for _, f := range ferr.Fields {
			p.FieldErrors[f.Field] = f.Reason
		}
		p.Alert = "Please correct the highlighted fields"
		c.render(w, http.StatusUnprocessableEntity, p)
		return
	}

	sub := apiclient.Submission{Format: st.Format, Title: strings.TrimSpace(st.Title), InputText: st.Text}
	if hdr != nil && st.Format.AcceptsAudio() {
		if err := c.policy.Accepts(hdr.Filename, hdr.Size); err != nil {
			p.Alert = fmt.Sprintf("The audio file cannot be used: %v", err)
			c.render(w, http.StatusUnprocessableEntity, p)
			return
		}
		sub.AudioName = ui.FileLabel(hdr.Filename, "audio")
		sub.Audio = readerOf(file)
	}

	if err := c.submitter.SubmitContent(r.Context(), sub); err != nil {
		log.Printf("composer: submitting content: %v", err)
		p.Alert = "Error creating content. Please try again."
		c.render(w, http.StatusBadGateway, p)
		return
	}

	if c.flashes != nil {
		c.flashes.Add("success", "Content created successfully!")
	}
	http.Redirect(w, r, "/dashboard?reload=1", http.StatusSeeOther)
}

func (c *Composer) newPage(st State) pageData {
	p := pageData{Chrome: web.NewChrome("/create", "Create Content", c.flashes)}
	p.fill(st, c.trigger)
	return p
}

// fill derives everything shown on the page from the form state.
func (p *pageData) fill(st State, trigger *PromptTrigger) {
	p.State = st
	p.Sections = Sections(st.Format)
	p.Preview = Preview(st.Format)
	p.Cards = p.Cards[:0]
	for _, f := range content.Formats() {
		p.Cards = append(p.Cards, formatCard{Format: f, Label: f.Label(), Selected: f == st.Format})
	}
	p.PromptLabel = trigger.Label()
	p.PromptDisabled = trigger.Disabled()
	p.BusyLabel = BusyLabel
}

func (c *Composer) render(w http.ResponseWriter, status int, p pageData) {
	web.Render(w, status, c.tmpl, p)
}

func (c *Composer) maxMemory() int64 {
	if c.policy.MaxBytes > 0 {
		return c.policy.MaxBytes
	}
	return content.DefaultMaxUploadBytes
}

// stateFromRequest rebuilds the composer state from the submitted form.
// The hidden content_type field is authoritative for the selected format.
// No audio label is carried over since the upload is not.
func stateFromRequest(r *http.Request) State {
	return State{
		Format:      content.Format(r.FormValue("content_type")),
		Title:       r.FormValue("title"),
		Text:        r.FormValue("input_text"),
		Suggestions: r.Form["suggestion"],
	}
}

func attachedAudio(r *http.Request) string {
	if r.MultipartForm == nil {
		return ""
	}
	files := r.MultipartForm.File["audio_file"]
	if len(files) == 0 || files[0].Filename == "" {
		return ""
	}
	return ui.FileLabel(files[0].Filename, "")
}

func readerOf(f multipart.File) io.Reader {
	if f == nil {
		return nil
	}
	return f
}
