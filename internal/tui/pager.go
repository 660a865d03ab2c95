package tui

import (
	"strconv"
	"strings"

	"github.com/ziadkadry99/ffsite/internal/gallery"
	"github.com/ziadkadry99/ffsite/internal/pagination"
)

// PagerLine renders the page buttons of v as plain text, for example
// "« ‹ 1 … 4 [5] 6 … 9 › »". Disabled controls are replaced by spaces.
func PagerLine(v gallery.View) string {
	return pagerLine(v, func(s string) string { return "[" + s + "]" })
}

func pagerLine(v gallery.View, current func(string) string) string {
	if v.Page.TotalPages == 0 {
		return ""
	}
	ctl := func(label string, enabled bool) string {
		if enabled {
			return label
		}
		return " "
	}
	parts := []string{ctl("«", v.Nav.First), ctl("‹", v.Nav.Prev)}
	if v.Window.LeadingEllipsis {
		parts = append(parts, "…")
	}
	for _, n := range v.Window.Pages() {
		label := strconv.Itoa(n)
		if n == v.Page.Number {
			label = current(label)
		}
		parts = append(parts, label)
	}
	if v.Window.TrailingEllipsis {
		parts = append(parts, "…")
	}
	parts = append(parts, ctl("›", v.Nav.Next), ctl("»", v.Nav.Last))
	return strings.Join(parts, " ")
}

// NextPageSize returns the offered page size after cur, wrapping around.
func NextPageSize(cur int) int {
	for i, s := range pagination.PageSizes {
		if s == cur {
			return pagination.PageSizes[(i+1)%len(pagination.PageSizes)]
		}
	}
	return pagination.DefaultPageSize
}
