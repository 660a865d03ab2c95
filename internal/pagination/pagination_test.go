package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestSevenItemsOnePage(t *testing.T) {
	p := Paginate(seq(7), 1, 12)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, seq(7), p.Items)

	w := p.Window()
	assert.Equal(t, []int{1}, w.Pages())
	assert.False(t, w.LeadingEllipsis)
	assert.False(t, w.TrailingEllipsis)
	assert.Equal(t, "Showing 1-7 of 7 templates", p.Summary())
}

func TestFiftyItemsLastPage(t *testing.T) {
	p := Paginate(seq(50), 5, 12)
	assert.Equal(t, 5, p.TotalPages)
	assert.Equal(t, 5, p.Number)
	assert.Equal(t, []int{49, 50}, p.Items)
	assert.Equal(t, "Showing 49-50 of 50 templates", p.Summary())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Paginate(seq(50), 99, 12).Number)
	assert.Equal(t, 1, Paginate(seq(50), -3, 12).Number)
	assert.Equal(t, 1, Paginate(seq(50), 0, 12).Number)
}

func TestEmpty(t *testing.T) {
	p := Paginate([]int{}, 3, 12)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 1, p.Number)
	assert.Empty(t, p.Items)
	assert.Empty(t, p.Window().Pages())
	assert.Equal(t, Nav{}, p.Navigation())
	assert.Equal(t, "No templates found", p.Summary())

	from, to := p.Range()
	assert.Zero(t, from)
	assert.Zero(t, to)
}

func TestDefaultPageSize(t *testing.T) {
	p := Paginate(seq(30), 1, 0)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Len(t, p.Items, 12)
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "Showing 1-1 of 1 template", Paginate(seq(1), 1, 6).Summary())
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
		lead, trail    bool
	}{
		{1, 1, []int{1}, false, false},
		{1, 3, []int{1, 2, 3}, false, false},
		{2, 10, []int{1, 2, 3, 4, 5}, false, true},
		{3, 10, []int{1, 2, 3, 4, 5}, false, true},
		{4, 10, []int{2, 3, 4, 5, 6}, true, true},
		{6, 10, []int{4, 5, 6, 7, 8}, true, true},
		{8, 10, []int{6, 7, 8, 9, 10}, true, false},
		{10, 10, []int{6, 7, 8, 9, 10}, true, false},
		{4, 6, []int{2, 3, 4, 5, 6}, true, false},
		{0, 0, nil, false, false},
	}
	for _, tt := range tests {
		w := Numbers(tt.current, tt.total)
		assert.Equal(t, tt.want, w.Pages(), "current=%d total=%d", tt.current, tt.total)
		assert.Equal(t, tt.lead, w.LeadingEllipsis, "leading current=%d total=%d", tt.current, tt.total)
		assert.Equal(t, tt.trail, w.TrailingEllipsis, "trailing current=%d total=%d", tt.current, tt.total)
	}
}

func TestNavigation(t *testing.T) {
	assert.Equal(t, Nav{Next: true, Last: true}, Paginate(seq(30), 1, 12).Navigation())
	assert.Equal(t, Nav{First: true, Prev: true, Next: true, Last: true}, Paginate(seq(30), 2, 12).Navigation())
	assert.Equal(t, Nav{First: true, Prev: true}, Paginate(seq(30), 3, 12).Navigation())
	assert.Equal(t, Nav{}, Paginate(seq(3), 1, 12).Navigation())
}

func TestValidPageSize(t *testing.T) {
	for _, n := range PageSizes {
		assert.True(t, ValidPageSize(n))
	}
	assert.False(t, ValidPageSize(10))
}

func TestPagesCoverEntries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 500).Draw(t, "n")
		size := rapid.IntRange(1, 60).Draw(t, "size")
		entries := seq(n)

		first := Paginate(entries, 1, size)
		var all []int
		for page := 1; page <= first.TotalPages; page++ {
			p := Paginate(entries, page, size)
			all = append(all, p.Items...)
			if page < p.TotalPages && len(p.Items) != size {
				t.Fatalf("page %d has %d items, want %d", page, len(p.Items), size)
			}
		}
		if len(all) != n {
			t.Fatalf("pages cover %d entries, want %d", len(all), n)
		}
		for i, v := range all {
			if v != i+1 {
				t.Fatalf("entry %d out of order: %d", i, v)
			}
		}
		if first.TotalPages > 0 {
			last := Paginate(entries, first.TotalPages, size)
			want := n - (first.TotalPages-1)*size
			if len(last.Items) != want {
				t.Fatalf("last page has %d items, want %d", len(last.Items), want)
			}
		}
	})
}

func TestWindowBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 200).Draw(t, "total")
		current := rapid.IntRange(-5, 205).Draw(t, "current")
		w := Numbers(current, total)
		pages := w.Pages()
		if len(pages) > MaxButtons {
			t.Fatalf("%d buttons", len(pages))
		}
		if total == 0 {
			if len(pages) != 0 {
				t.Fatalf("buttons without pages")
			}
			return
		}
		if len(pages) != min(total, MaxButtons) {
			t.Fatalf("got %d buttons for %d pages", len(pages), total)
		}
		c := max(1, min(current, total))
		found := false
		for _, p := range pages {
			if p < 1 || p > total {
				t.Fatalf("page %d out of range", p)
			}
			found = found || p == c
		}
		if !found {
			t.Fatalf("current page %d not in window %v", c, pages)
		}
		require.Equal(t, w.Start > 1, w.LeadingEllipsis)
		require.Equal(t, w.End < total, w.TrailingEllipsis)
	})
}
