package catalog

import (
	"errors"
	"fmt"
)

// ErrNoVersions is wrapped by the FetchError of a group whose manifest
// declares no versions.
var ErrNoVersions = errors.New("template group has no versions")

// Kind classifies a catalog load failure.
type Kind int

const (
	// KindIndex is fatal to the whole catalog.
	KindIndex Kind = iota
	// KindManifest fails one group (or the whole load in strict mode).
	KindManifest
	// KindPayload fails one group (or the whole load in strict mode).
	KindPayload
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "IndexFetchError"
	case KindManifest:
		return "ManifestFetchError"
	case KindPayload:
		return "PayloadFetchError"
	default:
		return "UnknownError"
	}
}

// FetchError describes a failed catalog document.
type FetchError struct {
	Kind    Kind
	Group   string
	Version string
	Path    string
	Err     error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindIndex:
		return fmt.Sprintf("loading template index %s: %v", e.Path, e.Err)
	case KindPayload:
		return fmt.Sprintf("loading template %q version %s (%s): %v", e.Group, e.Version, e.Path, e.Err)
	default:
		return fmt.Sprintf("loading template %q manifest (%s): %v", e.Group, e.Path, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }
