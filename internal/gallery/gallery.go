// Package gallery owns the browsing state of the template library: the
// active query, page and page size, and the version picked per template.
package gallery

import (
	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/pagination"
)

// Gallery is a single-owner state object. It is not safe for concurrent
// use; renderers take a View snapshot.
type Gallery struct {
	entries  []catalog.TemplateGroup
	filtered []catalog.TemplateGroup
	query    string
	page     int
	size     int
	selected map[string]string
}

// New creates a gallery over entries, showing every entry on page 1.
func New(entries []catalog.TemplateGroup, pageSize int) *Gallery {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &Gallery{
		entries:  entries,
		filtered: entries,
		page:     1,
		size:     pageSize,
		selected: make(map[string]string),
	}
}

// Query returns the applied query.
func (g *Gallery) Query() string { return g.query }

// PageSize returns the page size.
func (g *Gallery) PageSize() int { return g.size }

// Entries returns the full catalog.
func (g *Gallery) Entries() []catalog.TemplateGroup { return g.entries }

// SetQuery applies a settled query and resets to page 1.
func (g *Gallery) SetQuery(q string) {
	g.query = q
	g.filtered = catalog.Filter(g.entries, q)
	g.page = 1
}

// SetPageSize changes the page size and resets to page 1.
func (g *Gallery) SetPageSize(n int) {
	if n <= 0 {
		n = pagination.DefaultPageSize
	}
	g.size = n
	g.page = 1
}

// GoToPage moves to page n, clamped to the available pages.
func (g *Gallery) GoToPage(n int) {
	g.page = pagination.Paginate(g.filtered, n, g.size).Number
}

func (g *Gallery) First() { g.GoToPage(1) }
func (g *Gallery) Prev()  { g.GoToPage(g.page - 1) }
func (g *Gallery) Next()  { g.GoToPage(g.page + 1) }
func (g *Gallery) Last()  { g.GoToPage(g.TotalPages()) }

// TotalPages returns the page count of the filtered entries.
func (g *Gallery) TotalPages() int {
	return pagination.Paginate(g.filtered, 1, g.size).TotalPages
}

// SelectVersion picks the version shown for a template. Unknown templates
// or versions are ignored.
func (g *Gallery) SelectVersion(id, version string) bool {
	for _, e := range g.entries {
		if e.ID != id {
			continue
		}
		if _, ok := e.Version(version); ok {
			g.selected[id] = version
			return true
		}
		return false
	}
	return false
}

// CycleVersion advances the selected version of a template, wrapping
// around, and returns the new selection.
func (g *Gallery) CycleVersion(id string) (catalog.Version, bool) {
	for _, e := range g.entries {
		if e.ID != id || len(e.Versions) == 0 {
			continue
		}
		cur := g.Selected(e)
		next := 0
		for i, v := range e.Versions {
			if v.Version == cur.Version {
				next = (i + 1) % len(e.Versions)
				break
			}
		}
		g.selected[id] = e.Versions[next].Version
		return e.Versions[next], true
	}
	return catalog.Version{}, false
}

// Selected returns the version currently shown for e, defaulting to its
// first version.
func (g *Gallery) Selected(e catalog.TemplateGroup) catalog.Version {
	if name, ok := g.selected[e.ID]; ok {
		if v, ok := e.Version(name); ok {
			return v
		}
	}
	return e.DefaultVersion()
}

// Card is one rendered template on the current page.
type Card struct {
	Group    catalog.TemplateGroup
	Selected catalog.Version
}

// View is an immutable snapshot of what the gallery shows.
type View struct {
	Query    string
	Cards    []Card
	Page     pagination.Page[catalog.TemplateGroup]
	Window   pagination.Window
	Nav      pagination.Nav
	Summary  string
	PageSize int
}

// View computes the current page.
func (g *Gallery) View() View {
	p := pagination.Paginate(g.filtered, g.page, g.size)
	cards := make([]Card, len(p.Items))
	for i, e := range p.Items {
		cards[i] = Card{Group: e, Selected: g.Selected(e)}
	}
	return View{
		Query:    g.query,
		Cards:    cards,
		Page:     p,
		Window:   p.Window(),
		Nav:      p.Navigation(),
		Summary:  p.Summary(),
		PageSize: g.size,
	}
}
