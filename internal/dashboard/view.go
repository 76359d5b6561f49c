package dashboard

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ziadkadry99/content-studio/internal/content"
)

// FilterAll is the type filter that shows every card.
const FilterAll = "all"

// Stats are the dashboard counters.
type Stats struct {
	Total       int `json:"total"`
	PhotoQuotes int `json:"photo_quotes"`
	Videos      int `json:"videos"`
}

// Empty reports whether the empty-state panel should be shown.
func (s Stats) Empty() bool { return s.Total == 0 }

// ComputeStats counts the given cards. Videos covers every video format.
func ComputeStats(cards []content.Item) Stats {
	s := Stats{Total: len(cards)}
	for _, c := range cards {
		switch {
		case c.Type == content.FormatPhotoQuote:
			s.PhotoQuotes++
		case c.Type.IsVideo():
			s.Videos++
		}
	}
	return s
}

// View is the dashboard grid: the cards of the last upstream fetch minus
// local deletions, and which of them the current filter hides. Search and
// type filter do not compose; applying one clears the other.
// A View is not safe for concurrent use.
type View struct {
	cards  []content.Item
	search string
	filter string
	hidden map[string]bool
}

// NewView returns an empty view.
func NewView() *View {
	return &View{filter: FilterAll, hidden: map[string]bool{}}
}

// Load replaces the card set and clears both filters.
func (v *View) Load(cards []content.Item) {
	v.cards = append([]content.Item(nil), cards...)
	v.search = ""
	v.filter = FilterAll
	v.hidden = map[string]bool{}
}

// Search shows the cards whose title or type contains term, ignoring case.
// Only the empty term shows every card; whitespace is matched literally.
func (v *View) Search(term string) {
	v.search = term
	v.filter = FilterAll
	v.hidden = map[string]bool{}

	if term == "" {
		return
	}
	fold := cases.Fold()
	needle := fold.String(term)
	for _, c := range v.cards {
		if !strings.Contains(fold.String(c.Title), needle) && !strings.Contains(fold.String(string(c.Type)), needle) {
			v.hidden[c.ID] = true
		}
	}
}

// FilterByType shows only cards of type t, or every card for FilterAll.
func (v *View) FilterByType(t string) {
	if t == "" {
		t = FilterAll
	}
	v.filter = t
	v.search = ""
	v.hidden = map[string]bool{}
	if t == FilterAll {
		return
	}
	for _, c := range v.cards {
		if string(c.Type) != t {
			v.hidden[c.ID] = true
		}
	}
}

// Remove drops the card with the given id. It reports whether it was present.
func (v *View) Remove(id string) bool {
	for i, c := range v.cards {
		if c.ID == id {
			v.cards = append(v.cards[:i:i], v.cards[i+1:]...)
			delete(v.hidden, id)
			return true
		}
	}
	return false
}

// Lookup returns the card with the given id.
func (v *View) Lookup(id string) (content.Item, bool) {
	for _, c := range v.cards {
		if c.ID == id {
			return c, true
		}
	}
	return content.Item{}, false
}

// Cards returns every card present in the grid, shown or hidden.
func (v *View) Cards() []content.Item {
	return append([]content.Item{}, v.cards...)
}

// Visible returns the cards the current filter shows.
func (v *View) Visible() []content.Item {
	out := []content.Item{}
	for _, c := range v.cards {
		if !v.hidden[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// Stats computes the counters over every present card.
func (v *View) Stats() Stats { return ComputeStats(v.cards) }

// SearchTerm is the active search, if any.
func (v *View) SearchTerm() string { return v.search }

// TypeFilter is the active type filter.
func (v *View) TypeFilter() string { return v.filter }
