// Package web holds the page layout shared by the studio's HTML views.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"log"
	"net/http"

	"github.com/ziadkadry99/content-studio/internal/ui"
)

//go:embed layout.html
var layoutHTML string

// navLinks is the top navigation, in display order.
var navLinks = []ui.NavLink{
	{Href: "/dashboard", Text: "Dashboard"},
	{Href: "/create", Text: "Create"},
}

// Chrome is the data every page hands to the layout.
type Chrome struct {
	Title   string
	Nav     []ui.NavLink
	Flashes []ui.Flash
}

// NewChrome builds the layout data for the page served at path.
func NewChrome(path, title string, flashes *ui.FlashBoard) Chrome {
	c := Chrome{Title: title, Nav: ui.ActiveNav(navLinks, path)}
	if flashes != nil {
		c.Flashes = flashes.Messages()
	}
	return c
}

// NewPage parses the shared layout together with a page body. The body
// must define a "content" template.
func NewPage(name, body string, funcs template.FuncMap) *template.Template {
	t := template.New(name)
	if funcs != nil {
		t = t.Funcs(funcs)
	}
	return template.Must(template.Must(t.Parse(layoutHTML)).Parse(body))
}

// Render executes tmpl into a buffer first so a template error never
// leaves a half-written page behind.
func Render(w http.ResponseWriter, status int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("web: rendering %s: %v", tmpl.Name(), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
