package site

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/content"
	"github.com/ziadkadry99/ffsite/internal/gallery"
	"github.com/ziadkadry99/ffsite/internal/pagination"
	"github.com/ziadkadry99/ffsite/internal/tutorial"
)

// Options configures a Renderer.
type Options struct {
	ToolName string
	PageSize int
	URLs     URLs
	// LiveReload adds the websocket reload client to every page.
	LiveReload bool
}

// Renderer turns a Snapshot into HTML pages.
type Renderer struct {
	opts     Options
	tmpl     *template.Template
	format   *tutorial.Formatter
	sanitize *bluemonday.Policy
}

// NewRenderer parses the page templates.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = pagination.DefaultPageSize
	}
	if opts.URLs == nil {
		opts.URLs = StaticURLs{DefaultSize: opts.PageSize}
	}
	tmpl, err := template.New("pages").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Renderer{
		opts:     opts,
		tmpl:     tmpl,
		format:   tutorial.NewFormatter(),
		sanitize: bluemonday.UGCPolicy(),
	}, nil
}

// link is a resolved anchor. Disabled links render without an href.
type link struct {
	Label    string
	URL      string
	Icon     string
	Disabled bool
}

func newLink(label, url, icon string) link {
	return link{Label: label, URL: url, Icon: icon, Disabled: !content.IsAvailable(url)}
}

type footerColumn struct {
	Title       string
	Description string
	Links       []link
	Social      []link
}

// page is the data passed to every template.
type page struct {
	Title       string
	SiteTitle   string
	Description string
	Nav         []link
	Footer      []footerColumn
	Copyright   template.HTML
	URLs        URLs
	LiveReload  bool
	PageSize    int
	ToolName    string

	Index    *indexData
	Gallery  *galleryData
	Tutorial *tutorial.Rendered
	Error    string
}

func (r *Renderer) base(snap *Snapshot, title string) page {
	p := page{
		SiteTitle:  r.opts.ToolName + " Graph Library",
		URLs:       r.opts.URLs,
		LiveReload: r.opts.LiveReload,
		PageSize:   r.opts.PageSize,
		ToolName:   r.opts.ToolName,
		Nav: []link{
			{Label: "Home", URL: r.opts.URLs.Home()},
			{Label: "Graph Library", URL: r.opts.URLs.Gallery("", 1, 0)},
		},
	}
	if snap != nil && snap.Site != nil && snap.Site.Config != nil {
		cfg, links := snap.Site.Config, snap.Site.Links
		if cfg.Site.Title != "" {
			p.SiteTitle = cfg.Site.Title
		}
		p.Description = cfg.Site.Description
		if len(cfg.Navigation) > 0 {
			p.Nav = p.Nav[:0]
			for _, item := range cfg.Navigation {
				u := links.NavURL(item)
				if strings.HasPrefix(u, "#") {
					u = r.opts.URLs.Home() + u
				}
				p.Nav = append(p.Nav, newLink(item.Label, u, ""))
			}
		}
		for _, col := range cfg.Footer.Columns {
			fc := footerColumn{Title: col.Title, Description: col.Description}
			for _, l := range col.Links {
				fc.Links = append(fc.Links, newLink(l.Text, links.FooterURL(l), ""))
			}
			for _, s := range col.SocialLinks {
				fc.Social = append(fc.Social, newLink(s.Platform, links.SocialURL(s), s.Icon))
			}
			p.Footer = append(p.Footer, fc)
		}
		p.Copyright = template.HTML(r.sanitize.Sanitize(cfg.Footer.Copyright))
	}
	p.Title = p.SiteTitle
	if title != "" {
		p.Title = title + " | " + p.SiteTitle
	}
	return p
}

type heroData struct {
	Title     string
	Subtitle  string
	Primary   link
	Secondary link
	Support   link
}

type tutorialCard struct {
	content.Tutorial
	URL string
}

type platformData struct {
	content.Platform
	Links     []content.DownloadLink
	Available bool
}

type downloadsData struct {
	Version     string
	ReleaseDate string
	Platforms   []platformData
}

type indexData struct {
	Hero              *heroData
	Highlighted       []content.Feature
	OtherFeatures     []content.Feature
	Categories        []string
	Category          string
	TutorialQuery     string
	Tutorials         []tutorialCard
	Downloads         *downloadsData
	TemplateCount     int
	CatalogError      string
	TutorialsMissing  bool
	DownloadsSkipped  bool
	FeaturesAvailable bool
}

// IndexOptions filters the tutorials section of the home page.
type IndexOptions struct {
	Category string
	Query    string
}

// RenderIndex writes the home page.
func (r *Renderer) RenderIndex(w io.Writer, snap *Snapshot, opts IndexOptions) error {
	p := r.base(snap, "")
	idx := &indexData{Category: opts.Category, TutorialQuery: opts.Query}
	if idx.Category == "" {
		idx.Category = tutorial.AllCategories
	}
	if snap.Err != nil {
		idx.CatalogError = snap.Err.Error()
	}
	idx.TemplateCount = len(snap.Groups())

	site := snap.Site
	if site == nil {
		site = &content.Site{}
	}

	if cfg := site.Config; cfg != nil {
		h := &heroData{Title: cfg.Hero.Title, Subtitle: cfg.Hero.Subtitle}
		pb, sb := cfg.Hero.PrimaryButton, cfg.Hero.SecondaryButton
		h.Primary = newLink(pb.Text, site.Links.ButtonURL(pb), pb.Icon)
		h.Secondary = newLink(sb.Text, site.Links.ButtonURL(sb), sb.Icon)
		h.Support = newLink("Support on Patreon", site.Links.ExternalURL("patreon"), "")
		idx.Hero = h
	}

	if site.Features != nil {
		idx.FeaturesAvailable = true
		idx.Highlighted = site.Features.Highlighted()
		idx.OtherFeatures = site.Features.Others()
	}

	if site.Tutorials != nil {
		idx.Categories = site.Tutorials.Categories
		list := tutorial.FilterByCategory(site.Tutorials.Tutorials, opts.Category)
		list = tutorial.Search(list, opts.Query)
		for _, t := range list {
			idx.Tutorials = append(idx.Tutorials, tutorialCard{Tutorial: t, URL: r.opts.URLs.Tutorial(t.ID)})
		}
	} else {
		idx.TutorialsMissing = true
	}

	if d := site.Downloads; d != nil {
		dd := &downloadsData{Version: d.CurrentVersion, ReleaseDate: d.ReleaseDate}
		for _, pl := range d.Platforms {
			links := site.Links.PlatformDownloads(pl)
			available := false
			for _, l := range links {
				if content.IsAvailable(l.URL) {
					available = true
					break
				}
			}
			dd.Platforms = append(dd.Platforms, platformData{Platform: pl, Links: links, Available: available})
		}
		idx.Downloads = dd
	} else {
		idx.DownloadsSkipped = true
	}

	p.Index = idx
	return r.tmpl.ExecuteTemplate(w, "index", p)
}

type versionOption struct {
	Value    string
	Label    string
	Selected bool
	Payload  string
}

type cardData struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Image       string
	Versions    []versionOption
	Payload     string
	Size        string
}

type pageButton struct {
	Number  int
	URL     string
	Current bool
}

type sizeOption struct {
	Value    int
	URL      string
	Selected bool
}

type galleryData struct {
	Query    string
	Summary  string
	Cards    []cardData
	Pages    []pageButton
	Leading  bool
	Trailing bool
	First    link
	Prev     link
	Next     link
	Last     link
	Sizes    []sizeOption
	Err      string
	Total    int
}

// GalleryOptions selects the gallery view to render.
type GalleryOptions struct {
	Query string
	Page  int
	Size  int
	// Versions maps template id to the selected version.
	Versions map[string]string
}

// GalleryView builds the gallery state for opts.
func (r *Renderer) GalleryView(snap *Snapshot, opts GalleryOptions) gallery.View {
	size := opts.Size
	if !pagination.ValidPageSize(size) {
		size = r.opts.PageSize
	}
	g := gallery.New(snap.Groups(), size)
	g.SetQuery(opts.Query)
	for id, v := range opts.Versions {
		g.SelectVersion(id, v)
	}
	g.GoToPage(opts.Page)
	return g.View()
}

// RenderGallery writes one page of the template library.
func (r *Renderer) RenderGallery(w io.Writer, snap *Snapshot, opts GalleryOptions) error {
	p := r.base(snap, "Graph Library")
	view := r.GalleryView(snap, opts)
	gd := &galleryData{Query: view.Query, Summary: view.Summary, Total: view.Page.Total}
	if snap.Err != nil {
		gd.Err = snap.Err.Error()
	}

	u := r.opts.URLs
	for _, c := range view.Cards {
		cd := cardData{
			ID:          c.Group.ID,
			Title:       c.Group.Title,
			Description: c.Group.Description,
			Tags:        c.Group.Tags,
			Image:       c.Group.Image,
			Payload:     c.Selected.GraphData,
			Size:        humanize.Bytes(uint64(len(c.Selected.GraphData))),
		}
		for _, v := range c.Group.Versions {
			cd.Versions = append(cd.Versions, versionOption{
				Value:    v.Version,
				Label:    catalog.VersionLabel(r.opts.ToolName, v.Version),
				Selected: v.Version == c.Selected.Version,
				Payload:  v.GraphData,
			})
		}
		gd.Cards = append(gd.Cards, cd)
	}

	size := view.PageSize
	for _, n := range view.Window.Pages() {
		gd.Pages = append(gd.Pages, pageButton{Number: n, URL: u.Gallery(view.Query, n, size), Current: n == view.Page.Number})
	}
	gd.Leading, gd.Trailing = view.Window.LeadingEllipsis, view.Window.TrailingEllipsis

	nav := view.Nav
	gd.First = link{Label: "First", URL: u.Gallery(view.Query, 1, size), Disabled: !nav.First}
	gd.Prev = link{Label: "Previous", URL: u.Gallery(view.Query, view.Page.Number-1, size), Disabled: !nav.Prev}
	gd.Next = link{Label: "Next", URL: u.Gallery(view.Query, view.Page.Number+1, size), Disabled: !nav.Next}
	gd.Last = link{Label: "Last", URL: u.Gallery(view.Query, view.Page.TotalPages, size), Disabled: !nav.Last}

	for _, s := range pagination.PageSizes {
		gd.Sizes = append(gd.Sizes, sizeOption{Value: s, URL: u.Gallery(view.Query, 1, s), Selected: s == size})
	}

	p.Gallery = gd
	return r.tmpl.ExecuteTemplate(w, "gallery", p)
}

// ErrTutorialNotFound is returned by RenderTutorial for an unknown id.
var ErrTutorialNotFound = errors.New("tutorial not found")

// RenderTutorial writes the reader page of one tutorial.
func (r *Renderer) RenderTutorial(w io.Writer, snap *Snapshot, id string) error {
	list := snap.Tutorials()
	_, i, ok := tutorial.Find(list, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTutorialNotFound, id)
	}
	rendered, err := r.format.Render(list, i)
	if err != nil {
		return err
	}
	p := r.base(snap, rendered.Title)
	p.Tutorial = rendered
	return r.tmpl.ExecuteTemplate(w, "tutorial", p)
}

// RenderError writes a standalone error page.
func (r *Renderer) RenderError(w io.Writer, snap *Snapshot, msg string) error {
	p := r.base(snap, "Error")
	p.Error = msg
	return r.tmpl.ExecuteTemplate(w, "error", p)
}
