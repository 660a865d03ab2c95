// Package catalog loads the graph template library and filters it.
//
// The catalog is a two-level manifest: an index document lists template
// group identifiers, each group has a manifest listing its tool versions,
// and each version has a payload document. Payloads are kept as raw text
// and are displayed and copied byte-for-byte.
package catalog

import "path"

// Version is one tool release a template group supports.
type Version struct {
	Version string `json:"version"`
	// GraphData is the raw payload document, never re-parsed.
	GraphData string `json:"graphData"`
}

// TemplateGroup is one catalog entry: a family of versioned payloads.
type TemplateGroup struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
	Image       string    `json:"image,omitempty"`
	Versions    []Version `json:"versions"`
}

// DefaultVersion returns the first listed version, which is what the
// gallery shows before the user picks another one.
func (g TemplateGroup) DefaultVersion() Version {
	if len(g.Versions) == 0 {
		return Version{}
	}
	return g.Versions[0]
}

// Version looks up a version by name.
func (g TemplateGroup) Version(name string) (Version, bool) {
	for _, v := range g.Versions {
		if v.Version == name {
			return v, true
		}
	}
	return Version{}, false
}

// Catalog is the loaded template library. Groups keep the index order.
type Catalog struct {
	Groups []TemplateGroup
	// Failures lists the groups dropped under per-group isolation.
	Failures []*FetchError
}

// Find returns the group with the given identifier.
func (c *Catalog) Find(id string) (TemplateGroup, bool) {
	if c == nil {
		return TemplateGroup{}, false
	}
	for _, g := range c.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return TemplateGroup{}, false
}

// Layout locates catalog documents inside a content source.
type Layout struct {
	// IndexPath is the index document; group directories are its siblings.
	IndexPath string
	// PayloadPrefix prefixes the version in payload file names.
	PayloadPrefix string
}

// DefaultLayout matches the site's content tree:
//
//	graphs/general.json
//	graphs/<id>/general.json
//	graphs/<id>/ffmpeg_<version>.json
var DefaultLayout = Layout{
	IndexPath:     "graphs/general.json",
	PayloadPrefix: "ffmpeg_",
}

func (l Layout) root() string { return path.Dir(l.IndexPath) }

// ManifestPath returns the manifest document of a group.
func (l Layout) ManifestPath(id string) string {
	return path.Join(l.root(), id, path.Base(l.IndexPath))
}

// PayloadPath returns the payload document of one group version.
func (l Layout) PayloadPath(id, version string) string {
	return path.Join(l.root(), id, l.PayloadPrefix+version+".json")
}

// PayloadPattern is a doublestar pattern matching every payload document.
func (l Layout) PayloadPattern() string {
	return path.Join(l.root(), "*", l.PayloadPrefix+"*.json")
}
