package site

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/ziadkadry99/ffsite/internal/pagination"
)

// URLs builds the links between rendered pages. The static export and the
// preview server lay pages out differently.
type URLs interface {
	Home() string
	Gallery(query string, page, size int) string
	Tutorial(id string) string
	Asset(name string) string
}

// StaticURLs links pages of the exported site. Only the unfiltered gallery
// at DefaultSize is pre-rendered; other views are produced client side.
type StaticURLs struct {
	DefaultSize int
}

func (StaticURLs) Home() string { return "index.html" }

func (u StaticURLs) Gallery(query string, page, size int) string {
	if query != "" || (size != 0 && size != u.defaultSize()) {
		v := url.Values{}
		if query != "" {
			v.Set("q", query)
		}
		if size != 0 {
			v.Set("size", strconv.Itoa(size))
		}
		if page > 1 {
			v.Set("page", strconv.Itoa(page))
		}
		return "graph-library.html?" + v.Encode()
	}
	if page <= 1 {
		return "graph-library.html"
	}
	return fmt.Sprintf("graph-library-%d.html", page)
}

func (u StaticURLs) defaultSize() int {
	if u.DefaultSize <= 0 {
		return pagination.DefaultPageSize
	}
	return u.DefaultSize
}

// GalleryFile is the file a pre-rendered gallery page is written to.
func (u StaticURLs) GalleryFile(page int) string { return u.Gallery("", page, 0) }

func (StaticURLs) Tutorial(id string) string { return "tutorial-" + url.PathEscape(id) + ".html" }

func (StaticURLs) Asset(name string) string { return name }

// ServerURLs links pages of the preview server.
type ServerURLs struct{}

func (ServerURLs) Home() string { return "/" }

func (ServerURLs) Gallery(query string, page, size int) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		v.Set("size", strconv.Itoa(size))
	}
	if len(v) == 0 {
		return "/graph-library"
	}
	return "/graph-library?" + v.Encode()
}

func (ServerURLs) Tutorial(id string) string { return "/tutorial/" + url.PathEscape(id) }

func (ServerURLs) Asset(name string) string { return "/" + name }
