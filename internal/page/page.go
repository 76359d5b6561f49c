// Package page reads the DOM contract out of pages rendered by the upstream
// content platform: content cards, format cards, navigation, flash
// messages, copy buttons, tooltip targets and form constraints.
package page

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/content-studio/internal/content"
	"github.com/ziadkadry99/content-studio/internal/ui"
)

// ParseDashboard returns the content cards of a dashboard page in document
// order. Cards without a data-content-id are skipped.
func ParseDashboard(r io.Reader) ([]content.Item, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing dashboard: %w", err)
	}

	var items []content.Item
	walk(doc, func(n *html.Node) bool {
		if !isElement(n, "") || !hasClass(n, "content-card") {
			return true
		}
		id, ok := attr(n, "data-content-id")
		if !ok || id == "" {
			return false
		}
		title := ""
		if t := find(n, func(c *html.Node) bool { return isElement(c, "") && hasClass(c, "card-title") }); t != nil {
			title = text(t, nil)
		}
		items = append(items, content.Item{
			ID:      id,
			Title:   title,
			Type:    content.Format(attrOr(n, "data-type", "")),
			Created: attrOr(n, "data-created", ""),
		})
		return false
	})
	return items, nil
}

// ParseFormatCards returns the formats offered by the create page's
// format cards, ignoring cards that carry an unknown format.
func ParseFormatCards(r io.Reader) ([]content.Format, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing create page: %w", err)
	}

	var out []content.Format
	walk(doc, func(n *html.Node) bool {
		if isElement(n, "") && hasClass(n, "format-card") {
			if f, ok := content.ParseFormat(attrOr(n, "data-format", "")); ok {
				out = append(out, f)
			}
			return false
		}
		return true
	})
	return out, nil
}

// CopyTarget is a button that copies its data-copy string.
type CopyTarget struct {
	Text  string
	Label string
}

// FileInput is an <input type="file"> and the label shown next to it.
type FileInput struct {
	Name   string
	ID     string
	Accept string
	Label  string
}

// FormSpec is a form and the HTML5 constraints of its controls.
type FormSpec struct {
	ID     string
	Action string
	Method string
	Form   ui.Form
}

// Chrome is the page furniture shared by every upstream page.
type Chrome struct {
	Nav        []ui.NavLink
	Flashes    []ui.Flash
	Copy       []CopyTarget
	Widgets    ui.Widgets
	FileInputs []FileInput
	Forms      []FormSpec
}

// ParseChrome extracts the shared page furniture.
func ParseChrome(r io.Reader) (*Chrome, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	c := &Chrome{}
	var widgets []ui.Widget
	walk(doc, func(n *html.Node) bool {
		if !isElement(n, "") {
			return true
		}
		if hasClass(n, "nav-link") {
			c.Nav = append(c.Nav, ui.NavLink{Href: attrOr(n, "href", ""), Text: text(n, nil)})
		}
		if hasClass(n, "alert") {
			c.Flashes = append(c.Flashes, ui.Flash{
				ID:       len(c.Flashes) + 1,
				Category: alertCategory(n),
				Message:  text(n, func(x *html.Node) bool { return isElement(x, "button") }),
			})
		}
		if v, ok := attr(n, "data-copy"); ok {
			c.Copy = append(c.Copy, CopyTarget{Text: v, Label: text(n, nil)})
		}
		if toggle, ok := attr(n, "data-bs-toggle"); ok {
			widgets = append(widgets, ui.Widget{
				Toggle:  toggle,
				ID:      attrOr(n, "id", ""),
				Title:   firstNonEmpty(attrOr(n, "data-bs-title", ""), attrOr(n, "title", "")),
				Content: attrOr(n, "data-bs-content", ""),
			})
		}
		if n.Data == "input" && strings.EqualFold(attrOr(n, "type", ""), "file") {
			c.FileInputs = append(c.FileInputs, fileInput(n))
		}
		if n.Data == "form" {
			c.Forms = append(c.Forms, formSpec(n))
		}
		return true
	})
	c.Widgets = ui.InitWidgets(widgets)
	return c, nil
}

func alertCategory(n *html.Node) string {
	for _, cls := range classes(n) {
		if cat, ok := strings.CutPrefix(cls, "alert-"); ok && cat != "dismissible" {
			return cat
		}
	}
	return "info"
}

func fileInput(n *html.Node) FileInput {
	fi := FileInput{
		Name:   attrOr(n, "name", ""),
		ID:     attrOr(n, "id", ""),
		Accept: attrOr(n, "accept", ""),
	}
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			fi.Label = text(s, nil)
			break
		}
	}
	return fi
}

func formSpec(n *html.Node) FormSpec {
	spec := FormSpec{
		ID:     attrOr(n, "id", ""),
		Action: attrOr(n, "action", ""),
		Method: strings.ToUpper(attrOr(n, "method", "GET")),
	}
	walk(n, func(c *html.Node) bool {
		if !isElement(c, "") {
			return true
		}
		name, ok := attr(c, "name")
		if !ok || name == "" {
			return true
		}
		var typ string
		switch c.Data {
		case "input":
			typ = strings.ToLower(attrOr(c, "type", "text"))
			if typ == "hidden" || typ == "submit" || typ == "button" || typ == "reset" {
				return true
			}
		case "textarea", "select":
			typ = c.Data
		default:
			return true
		}
		_, required := attr(c, "required")
		spec.Form.Fields = append(spec.Form.Fields, ui.Field{
			Name:      name,
			Type:      typ,
			Required:  required,
			MinLength: atoi(attrOr(c, "minlength", "")),
			MaxLength: atoi(attrOr(c, "maxlength", "")),
			Pattern:   attrOr(c, "pattern", ""),
		})
		return true
	})
	return spec
}

// FormByID returns the form with the given id.
func (c *Chrome) FormByID(id string) (FormSpec, bool) {
	for _, f := range c.Forms {
		if f.ID == id {
			return f, true
		}
	}
	return FormSpec{}, false
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
