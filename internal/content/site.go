package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/iter"
)

// Document names of the auxiliary site documents.
const (
	DocSiteConfig = "site-config.json"
	DocLinks      = "links.json"
	DocFeatures   = "features.json"
	DocTutorials  = "tutorials.json"
	DocDownloads  = "downloads.json"
)

// DocumentError reports an auxiliary document that could not be loaded.
// It is never fatal: the section that needs the document is skipped.
type DocumentError struct {
	Name string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Name, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Site holds the auxiliary documents. A nil field means the document was
// missing or invalid and its section falls back to static defaults.
type Site struct {
	Config    *SiteConfig
	Links     *Links
	Features  *Features
	Tutorials *Tutorials
	Downloads *Downloads
	// Errors lists the documents that failed to load.
	Errors []*DocumentError
}

type docTarget struct {
	name   string
	target any
}

// LoadSite fetches all auxiliary documents concurrently. Failures are
// logged, recorded in Site.Errors and otherwise ignored.
func LoadSite(ctx context.Context, src Source, logger *slog.Logger) *Site {
	if logger == nil {
		logger = slog.Default()
	}
	site := &Site{}
	docs := []docTarget{
		{DocSiteConfig, &site.Config},
		{DocLinks, &site.Links},
		{DocFeatures, &site.Features},
		{DocTutorials, &site.Tutorials},
		{DocDownloads, &site.Downloads},
	}

	errs := make([]*DocumentError, len(docs))
	iter.ForEachIdx(docs, func(i int, d *docTarget) {
		if err := fetchJSON(ctx, src, d.name, d.target); err != nil {
			errs[i] = &DocumentError{Name: d.name, Err: err}
		}
	})

	for _, e := range errs {
		if e == nil {
			continue
		}
		logger.Warn("site document unavailable, section skipped", "document", e.Name, "error", e.Err)
		site.Errors = append(site.Errors, e)
	}
	return site
}

// fetchJSON decodes the named document into target, which must be a pointer
// to a nil pointer; it is only set on success.
func fetchJSON(ctx context.Context, src Source, name string, target any) error {
	data, err := src.Fetch(ctx, name)
	if err != nil {
		return err
	}
	switch p := target.(type) {
	case **SiteConfig:
		return decodeInto(data, p)
	case **Links:
		return decodeInto(data, p)
	case **Features:
		return decodeInto(data, p)
	case **Tutorials:
		return decodeInto(data, p)
	case **Downloads:
		return decodeInto(data, p)
	default:
		return fmt.Errorf("unsupported document target %T", target)
	}
}

func decodeInto[T any](data []byte, dst **T) error {
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	*dst = v
	return nil
}

// IsAvailable reports whether a resolved url points somewhere: empty,
// blank and "#" urls render as disabled.
func IsAvailable(url string) bool {
	return strings.TrimSpace(url) != "" && url != "#"
}

// NavURL resolves a navigation item: in-page anchors are kept, other keys
// are looked up in links.navigation, falling back to the item's own url.
func (l *Links) NavURL(item NavItem) string {
	if strings.HasPrefix(item.URL, "#") {
		return item.URL
	}
	if l != nil {
		if u := l.Navigation[item.URL]; u != "" {
			return u
		}
	}
	return item.URL
}

// ButtonURL resolves a hero button through links.navigation keyed by the
// button url without its first '#'.
func (l *Links) ButtonURL(b Button) string {
	if l != nil {
		if u := l.Navigation[strings.Replace(b.URL, "#", "", 1)]; u != "" {
			return u
		}
	}
	return b.URL
}

var whitespace = regexp.MustCompile(`\s+`)

// FooterURL resolves a footer link through links.external keyed by the
// lower-cased link text with whitespace removed ("Privacy Policy" ->
// "privacypolicy").
func (l *Links) FooterURL(link FooterLink) string {
	if l != nil {
		key := whitespace.ReplaceAllString(strings.ToLower(link.Text), "")
		if u := l.External[key]; u != "" {
			return u
		}
	}
	return link.URL
}

// SocialURL resolves a social link through links.social keyed by the
// lower-cased platform name.
func (l *Links) SocialURL(s SocialLink) string {
	if l != nil {
		if u := l.Social[strings.ToLower(s.Platform)]; u != "" {
			return u
		}
	}
	return s.URL
}

// ExternalURL returns links.external[key] or "".
func (l *Links) ExternalURL(key string) string {
	if l == nil {
		return ""
	}
	return l.External[key]
}

// DownloadLink is one downloadable artifact of a platform.
type DownloadLink struct {
	Ext string
	URL string
}

// PlatformDownloads returns the platform's artifacts, sorted by extension.
// links.downloads[platform.id] replaces the platform's own urls when present.
func (l *Links) PlatformDownloads(p Platform) []DownloadLink {
	urls := p.DownloadURLs
	if l != nil {
		if override, ok := l.Downloads[p.ID]; ok && override != nil {
			urls = override
		}
	}
	out := make([]DownloadLink, 0, len(urls))
	for ext, u := range urls {
		out = append(out, DownloadLink{Ext: ext, URL: u})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ext < out[j].Ext })
	return out
}

// Highlighted returns the features flagged for the default view.
func (f *Features) Highlighted() []Feature {
	if f == nil {
		return nil
	}
	var out []Feature
	for _, feat := range f.Features {
		if feat.Highlight {
			out = append(out, feat)
		}
	}
	return out
}

// Others returns the features only shown on demand.
func (f *Features) Others() []Feature {
	if f == nil {
		return nil
	}
	var out []Feature
	for _, feat := range f.Features {
		if !feat.Highlight {
			out = append(out, feat)
		}
	}
	return out
}
