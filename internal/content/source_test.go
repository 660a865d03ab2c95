package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSourceFetch(t *testing.T) {
	src := NewFSSource(fstest.MapFS{
		"graphs/general.json": {Data: []byte(`{"graphs":[]}`)},
	}, "mem")

	data, err := src.Fetch(context.Background(), "/graphs/general.json")
	require.NoError(t, err)
	assert.Equal(t, `{"graphs":[]}`, string(data))
	assert.Equal(t, "mem", src.Location())

	_, err = src.Fetch(context.Background(), "graphs/missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFSSource(fstest.MapFS{}, "mem").Fetch(ctx, "x.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirSourceOnDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(dir, "links.json", `{"navigation":{}}`))

	data, err := NewDirSource(dir).Fetch(context.Background(), "links.json")
	require.NoError(t, err)
	assert.Equal(t, `{"navigation":{}}`, string(data))
}

func TestHTTPSource(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/graphs/general.json":
			_, _ = w.Write([]byte(`{"graphs":["a"]}`))
		case "/site/broken.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	src, err := NewHTTPSource(ts.URL+"/site", nil, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, ts.URL+"/site/", src.Location())

	data, err := src.Fetch(context.Background(), "graphs/general.json")
	require.NoError(t, err)
	assert.Equal(t, `{"graphs":["a"]}`, string(data))

	_, err = src.Fetch(context.Background(), "broken.json")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = src.Fetch(context.Background(), "nope.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewHTTPSourceRejectsScheme(t *testing.T) {
	_, err := NewHTTPSource("ftp://example.com/", nil, time.Second)
	assert.Error(t, err)
	_, err = NewHTTPSource("://bad", nil, time.Second)
	assert.Error(t, err)
}
