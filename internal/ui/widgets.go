package ui

// Widget is an element that opts into a tooltip or popover through its
// data-bs-toggle attribute.
type Widget struct {
	Toggle  string
	ID      string
	Title   string
	Content string
}

// Widgets holds the initialized tooltip and popover targets of a page.
type Widgets struct {
	Tooltips []Widget
	Popovers []Widget
}

// InitWidgets sorts toggles into tooltips and popovers. Other toggle kinds
// (dropdowns, collapses, alerts) are owned by the page and ignored here.
func InitWidgets(candidates []Widget) Widgets {
	var w Widgets
	for _, c := range candidates {
		switch c.Toggle {
		case "tooltip":
			w.Tooltips = append(w.Tooltips, c)
		case "popover":
			w.Popovers = append(w.Popovers, c)
		}
	}
	return w
}
