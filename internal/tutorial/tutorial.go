// Package tutorial filters, searches and formats the site's tutorials.
package tutorial

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/ffsite/internal/content"
)

// AllCategories is the pseudo-category that disables category filtering.
const AllCategories = "All Tutorials"

// FilterByCategory returns the tutorials of category, or all of them for
// AllCategories and "".
func FilterByCategory(tutorials []content.Tutorial, category string) []content.Tutorial {
	if category == "" || category == AllCategories {
		return tutorials
	}
	var out []content.Tutorial
	for _, t := range tutorials {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Search matches query case-insensitively against title, description and
// tags. A blank query returns tutorials unchanged.
func Search(tutorials []content.Tutorial, query string) []content.Tutorial {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return tutorials
	}
	var out []content.Tutorial
	for _, t := range tutorials {
		if matches(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t content.Tutorial, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Find returns the tutorial with id and its position.
func Find(tutorials []content.Tutorial, id string) (content.Tutorial, int, bool) {
	for i, t := range tutorials {
		if t.ID == id {
			return t, i, true
		}
	}
	return content.Tutorial{}, -1, false
}

// Neighbors returns the tutorials before and after position i. Either is
// nil at the ends of the list.
func Neighbors(tutorials []content.Tutorial, i int) (prev, next *content.Tutorial) {
	if i > 0 && i-1 < len(tutorials) {
		prev = &tutorials[i-1]
	}
	if i >= 0 && i+1 < len(tutorials) {
		next = &tutorials[i+1]
	}
	return prev, next
}

var youtubeID = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`)

// EmbedURL converts a YouTube watch or short link into its embed url.
// Other urls are returned unchanged.
func EmbedURL(u string) string {
	if m := youtubeID.FindStringSubmatch(u); m != nil {
		return "https://www.youtube.com/embed/" + m[1]
	}
	return u
}

// SectionAnchor is the in-page anchor of section i.
func SectionAnchor(i int) string { return fmt.Sprintf("section-%d", i) }

// TOCEntry is one line of the table of contents.
type TOCEntry struct {
	Anchor string
	Title  string
}

// TOC lists the sections of t.
func TOC(t content.Tutorial) []TOCEntry {
	out := make([]TOCEntry, len(t.Sections))
	for i, s := range t.Sections {
		out[i] = TOCEntry{Anchor: SectionAnchor(i), Title: s.Title}
	}
	return out
}

// Formatter renders tutorial prose. Single newlines become line breaks and
// fenced blocks are highlighted.
type Formatter struct {
	md goldmark.Markdown
}

// NewFormatter creates a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)}
}

// Format converts tutorial text to HTML.
func (f *Formatter) Format(text string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("converting tutorial text: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderedSection is a section ready for a page template.
type RenderedSection struct {
	Anchor   string
	Title    string
	Body     template.HTML
	Image    string
	VideoURL string
}

// Rendered is a tutorial ready for a page template.
type Rendered struct {
	content.Tutorial
	TOC        []TOCEntry
	IntroHTML  template.HTML
	Body       []RenderedSection
	Conclusion template.HTML
	Prev, Next *content.Tutorial
}

// Render formats every text field of the tutorial at position i of list.
func (f *Formatter) Render(list []content.Tutorial, i int) (*Rendered, error) {
	if i < 0 || i >= len(list) {
		return nil, fmt.Errorf("tutorial index %d out of range", i)
	}
	t := list[i]
	r := &Rendered{Tutorial: t, TOC: TOC(t)}
	r.Prev, r.Next = Neighbors(list, i)

	var err error
	if r.IntroHTML, err = f.Format(t.Intro); err != nil {
		return nil, err
	}
	if r.Conclusion, err = f.Format(t.Conclusion); err != nil {
		return nil, err
	}
	for j, s := range t.Sections {
		body, err := f.Format(s.Content)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.Title, err)
		}
		rs := RenderedSection{Anchor: SectionAnchor(j), Title: s.Title, Body: body, Image: s.Image}
		if s.YoutubeVideo != "" {
			rs.VideoURL = EmbedURL(s.YoutubeVideo)
		}
		r.Body = append(r.Body, rs)
	}
	return r, nil
}

// Markdown assembles t into a single markdown document for terminal and
// agent consumption.
func Markdown(t content.Tutorial) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	if meta := strings.Join(nonEmpty(t.Category, t.ReadTime, t.Date), " · "); meta != "" {
		fmt.Fprintf(&b, "_%s_\n\n", meta)
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", t.Description)
	}
	if t.Intro != "" {
		fmt.Fprintf(&b, "%s\n\n", t.Intro)
	}
	for _, s := range t.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		if s.Content != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Content)
		}
		if s.YoutubeVideo != "" {
			fmt.Fprintf(&b, "Video: %s\n\n", s.YoutubeVideo)
		}
		if s.Image != "" {
			fmt.Fprintf(&b, "![%s](%s)\n\n", s.Title, s.Image)
		}
	}
	if t.Conclusion != "" {
		fmt.Fprintf(&b, "## Conclusion\n\n%s\n", t.Conclusion)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func nonEmpty(vals ...string) []string {
	var out []string
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
