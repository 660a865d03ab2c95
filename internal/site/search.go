package site

import (
	"github.com/ziadkadry99/ffsite/internal/catalog"
)

// CatalogIndex returns the entries served as catalog.json, which the
// browser filters and pages client side. A nil catalog yields an empty
// array rather than null.
func CatalogIndex(groups []catalog.TemplateGroup) []catalog.TemplateGroup {
	if groups == nil {
		return []catalog.TemplateGroup{}
	}
	return groups
}

// StaticAsset returns a built-in asset by name.
func StaticAsset(name string) (data []byte, contentType string, ok bool) {
	switch name {
	case "style.css":
		return []byte(cssContent), "text/css; charset=utf-8", true
	case "script.js":
		return []byte(jsContent), "text/javascript; charset=utf-8", true
	}
	return nil, "", false
}
