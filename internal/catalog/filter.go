package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Filter returns the entries matching query, in their original order.
//
// The query is trimmed and lower-cased. An empty query returns entries
// unchanged. An entry matches when the query is a substring of its
// lower-cased title, description or any tag, or of the JSON encoding of
// its raw payload strings (so escaped quotes and newlines are searched in
// their escaped form).
func Filter(entries []TemplateGroup, query string) []TemplateGroup {
	q := NormalizeQuery(query)
	if q == "" {
		return entries
	}
	out := make([]TemplateGroup, 0, len(entries))
	for _, e := range entries {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

// NormalizeQuery trims and lower-cases a raw search query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Matches reports whether g matches the raw query.
func Matches(g TemplateGroup, query string) bool {
	q := NormalizeQuery(query)
	return q == "" || matches(g, q)
}

func matches(g TemplateGroup, q string) bool {
	if strings.Contains(strings.ToLower(g.Title), q) ||
		strings.Contains(strings.ToLower(g.Description), q) {
		return true
	}
	for _, tag := range g.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(SerializedPayloads(g)), q)
}

// SerializedPayloads returns the JSON array of the group's raw payload
// strings, e.g. ["{\"nodes\":[]}"], encoded the way JSON.stringify does
// in the page script: HTML characters and U+2028/U+2029 stay unescaped.
// Invalid UTF-8 becomes U+FFFD on both sides, since catalog.json is
// written by this encoder too.
func SerializedPayloads(g TemplateGroup) string {
	payloads := make([]string, len(g.Versions))
	for i, v := range g.Versions {
		payloads[i] = v.GraphData
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payloads); err != nil {
		return ""
	}
	return unescapeLineSeparators(strings.TrimSuffix(buf.String(), "\n"))
}

// unescapeLineSeparators turns the encoder's \u2028 and \u2029 escapes back
// into the raw runes, leaving escaped backslashes alone.
func unescapeLineSeparators(s string) string {
	if !strings.Contains(s, `\u202`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch rest := s[i+1:]; {
		case strings.HasPrefix(rest, "u2028"):
			b.WriteRune('\u2028')
			i += 5
		case strings.HasPrefix(rest, "u2029"):
			b.WriteRune('\u2029')
			i += 5
		default:
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			i++
		}
	}
	return b.String()
}

// VersionLabel formats a version for display: "FFmpeg 7.1".
func VersionLabel(toolName, version string) string {
	if toolName == "" {
		return version
	}
	return toolName + " " + version
}
