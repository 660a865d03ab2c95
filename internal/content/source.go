// Package content fetches the site's read-only JSON documents from a local
// directory or an HTTP origin and decodes the auxiliary site documents.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned when a document does not exist at the source.
var ErrNotFound = errors.New("document not found")

// Source fetches raw content documents by slash-separated relative path,
// e.g. "graphs/general.json".
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Location describes the source for logs and error messages.
	Location() string
}

// StatusError reports a non-success HTTP status for a document.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error fetching %s: status %d", e.Path, e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match a 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// DirSource reads documents from a directory tree.
type DirSource struct {
	Root string
	fsys fs.FS
}

// NewDirSource returns a Source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Root: dir, fsys: os.DirFS(dir)}
}

// NewFSSource returns a Source backed by an arbitrary fs.FS (used by tests
// with fstest.MapFS).
func NewFSSource(fsys fs.FS, label string) *DirSource {
	return &DirSource{Root: label, fsys: fsys}
}

// FS exposes the underlying filesystem.
func (s *DirSource) FS() fs.FS { return s.fsys }

// Fetch reads the named document.
func (s *DirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = path.Clean(strings.TrimPrefix(name, "/"))
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// Location returns the directory root.
func (s *DirSource) Location() string { return s.Root }

// HTTPSource fetches documents relative to a base URL, the way the browser
// fetched same-origin static assets.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPSource parses baseURL and returns a Source using client. A nil
// client gets a default one with the given timeout.
func NewHTTPSource(baseURL string, client *http.Client, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing content url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("content url %q must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPSource{base: u, client: client}, nil
}

// Fetch GETs the named document. Any non-2xx status is an error.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	ref, err := url.Parse(strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid document path %q: %w", name, err)
	}
	target := s.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Path: name, StatusCode: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// Location returns the base URL.
func (s *HTTPSource) Location() string { return s.base.String() }
