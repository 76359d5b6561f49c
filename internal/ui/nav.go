package ui

// NavLink is one entry of the top navigation bar.
type NavLink struct {
	Href   string
	Text   string
	Active bool
}

// ActiveNav marks the links whose href equals path exactly. Prefixes do
// not count: "/content/7" does not activate "/content".
func ActiveNav(links []NavLink, path string) []NavLink {
	out := make([]NavLink, len(links))
	for i, l := range links {
		l.Active = l.Href == path
		out[i] = l
	}
	return out
}
