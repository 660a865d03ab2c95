package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Orphans lists payload documents in fsys that no loaded group version
// references, sorted by path. They are never shown on the site.
func Orphans(fsys fs.FS, layout Layout, cat *Catalog) ([]string, error) {
	files, err := doublestar.Glob(fsys, layout.PayloadPattern(), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scanning payloads: %w", err)
	}

	referenced := make(map[string]bool)
	if cat != nil {
		for _, g := range cat.Groups {
			for _, v := range g.Versions {
				referenced[layout.PayloadPath(g.ID, v.Version)] = true
			}
		}
		// Failed groups are reported separately; their files are not orphans.
		for _, f := range cat.Failures {
			if f.Group == "" {
				continue
			}
			for _, file := range files {
				if path.Dir(file) == path.Dir(layout.ManifestPath(f.Group)) {
					referenced[file] = true
				}
			}
		}
	}

	var orphans []string
	for _, file := range files {
		if !referenced[file] {
			orphans = append(orphans, file)
		}
	}
	sort.Strings(orphans)
	return orphans, nil
}
