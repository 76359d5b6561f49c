package dashboard

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/web"
)

type cardView struct {
	content.Item
	Label     string
	DetailURL string
	CopyLabel string
}

type filterButton struct {
	Value  string
	Label  string
	Active bool
}

// gridPage carries no notices; the live channel replays them on connect.
type gridPage struct {
	Chrome  web.Chrome
	Alert   string
	Stats   Stats
	Cards   []cardView
	Search  string
	Filters []filterButton
}

type confirmPage struct {
	Chrome web.Chrome
	Item   content.Item
}

func (d *Dashboard) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (d *Dashboard) handleGrid(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	var alert string
	force := r.URL.Query().Get("reload") == "1"
	if err := d.ctrl.EnsureLoaded(r.Context(), force); err != nil {
		log.Printf("dashboard: loading content: %v", err)
		alert = "Could not load content from the platform. Showing the last known state."
		status = http.StatusBadGateway
	}
	web.Render(w, status, d.gridTmpl, d.gridPage(alert))
}

func (d *Dashboard) gridPage(alert string) gridPage {
	snap := d.ctrl.Snapshot()
	p := gridPage{
		Chrome:  web.NewChrome("/dashboard", "Dashboard", d.flashes),
		Alert:   alert,
		Stats:   snap.Stats,
		Search:  snap.Search,
	}
	for _, c := range snap.Visible {
		p.Cards = append(p.Cards, cardView{
			Item:      c,
			Label:     c.Type.Label(),
			DetailURL: "/content/" + c.ID,
			CopyLabel: d.ctrl.CopyLabel(c.ID),
		})
	}
	p.Filters = append(p.Filters, filterButton{Value: FilterAll, Label: "All", Active: snap.Filter == FilterAll})
	for _, f := range content.Formats() {
		p.Filters = append(p.Filters, filterButton{Value: string(f), Label: f.Label(), Active: snap.Filter == string(f)})
	}
	return p
}

func (d *Dashboard) handleSearch(w http.ResponseWriter, r *http.Request) {
	d.ctrl.Search(r.FormValue("q"))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (d *Dashboard) handleFilter(w http.ResponseWriter, r *http.Request) {
	d.ctrl.Filter(r.FormValue("type"))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (d *Dashboard) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	if err := d.ctrl.Export(w, r.URL.Query().Get("visible") == "1"); err != nil {
		log.Printf("dashboard: export: %v", err)
	}
}

func (d *Dashboard) handleDetail(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, d.ctrl.DetailURL(chi.URLParam(r, "id")), http.StatusFound)
}

func (d *Dashboard) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, ok := d.ctrl.Lookup(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	web.Render(w, http.StatusOK, d.confirmTmpl, confirmPage{
		Chrome: web.NewChrome(r.URL.Path, "Delete content", d.flashes),
		Item:   item,
	})
}

func (d *Dashboard) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := d.ctrl.Delete(r.Context(), id, r.FormValue("confirm") == "yes")
	if errors.Is(err, ErrNotConfirmed) {
		http.Redirect(w, r, "/content/"+id+"/delete", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (d *Dashboard) handleRemix(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	_, err := d.ctrl.Remix(r.Context(), id, r.FormValue("target_format"))
	switch {
	case errors.Is(err, ErrUnknownContent):
		http.NotFound(w, r)
		return
	case errors.Is(err, ErrUnknownFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (d *Dashboard) handleCopy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.ctrl.CopyLink(id); err != nil {
		if errors.Is(err, ErrUnknownContent) {
			http.NotFound(w, r)
			return
		}
		d.notifier.Notify("Could not copy the link", SeverityWarning)
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	if err := d.ctrl.EnsureLoaded(r.Context(), false); err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, d.ctrl.Snapshot().Stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
