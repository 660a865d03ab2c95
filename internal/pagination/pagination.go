// Package pagination slices filtered results into pages and computes the
// page-number controls shown beneath them.
package pagination

import "fmt"

// DefaultPageSize is used when a page size is zero or negative.
const DefaultPageSize = 12

// MaxButtons is the most numbered page buttons ever shown.
const MaxButtons = 5

// PageSizes are the sizes offered by the page-size selector.
var PageSizes = []int{6, 12, 24, 48}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// Page is one slice of a result list.
type Page[T any] struct {
	Items []T
	// Number is the clamped current page, always >= 1.
	Number     int
	TotalPages int
	Size       int
	// Total is the number of entries across all pages.
	Total int
}

// Paginate returns the page-th window of entries. page is clamped to
// [1, max(TotalPages, 1)]. An empty input yields zero pages and an empty
// window on page 1.
func Paginate[T any](entries []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(entries)
	totalPages := (total + size - 1) / size
	page = clamp(page, 1, max(totalPages, 1))

	start := (page - 1) * size
	end := min(start+size, total)
	if start > total {
		start = total
	}
	return Page[T]{
		Items:      entries[start:end:end],
		Number:     page,
		TotalPages: totalPages,
		Size:       size,
		Total:      total,
	}
}

// Window is the run of numbered page buttons to render.
type Window struct {
	// Start and End are inclusive. Both are zero when there are no pages.
	Start, End       int
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// Pages lists the page numbers in the window.
func (w Window) Pages() []int {
	if w.End < w.Start || w.Start < 1 {
		return nil
	}
	out := make([]int, 0, w.End-w.Start+1)
	for p := w.Start; p <= w.End; p++ {
		out = append(out, p)
	}
	return out
}

// Numbers centres a window of at most MaxButtons pages on current. Near the
// first pages it shows 1..5, near the last pages it shows the last five.
func Numbers(current, totalPages int) Window {
	if totalPages <= 0 {
		return Window{}
	}
	current = clamp(current, 1, totalPages)
	start := max(1, current-2)
	end := min(totalPages, current+2)
	if current <= 3 {
		end = min(MaxButtons, totalPages)
	} else if current >= totalPages-2 {
		start = max(1, totalPages-MaxButtons+1)
	}
	return Window{
		Start:            start,
		End:              end,
		LeadingEllipsis:  start > 1,
		TrailingEllipsis: end < totalPages,
	}
}

// Nav holds the enabled state of the first/prev/next/last controls.
type Nav struct {
	First, Prev, Next, Last bool
}

// Navigation reports which navigation controls are enabled.
func (p Page[T]) Navigation() Nav {
	back := p.Number > 1
	fwd := p.TotalPages > 0 && p.Number < p.TotalPages
	return Nav{First: back, Prev: back, Next: fwd, Last: fwd}
}

// Window returns the numbered page buttons for this page.
func (p Page[T]) Window() Window { return Numbers(p.Number, p.TotalPages) }

// Range returns the 1-based inclusive positions of the page's items, or
// 0, 0 when the page is empty.
func (p Page[T]) Range() (from, to int) {
	if len(p.Items) == 0 {
		return 0, 0
	}
	from = (p.Number-1)*p.Size + 1
	return from, from + len(p.Items) - 1
}

// Summary is the results line shown above the grid.
func (p Page[T]) Summary() string {
	if p.Total == 0 {
		return "No templates found"
	}
	from, to := p.Range()
	noun := "templates"
	if p.Total == 1 {
		noun = "template"
	}
	return fmt.Sprintf("Showing %d-%d of %d %s", from, to, p.Total, noun)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
