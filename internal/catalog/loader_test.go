package catalog

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/ffsite/internal/content"
)

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"graphs/general.json":         file(`{"graphs":["scale","crop"]}`),
		"graphs/scale/general.json":   file(`{"title":"Scale","description":"Resize video","tags":["resize"],"graphs":[{"version":"7.1"},{"version":"6.1"}]}`),
		"graphs/scale/ffmpeg_7.1.json": file(`{"nodes":["scale=1280:720"]}`),
		"graphs/scale/ffmpeg_6.1.json": file(`{"nodes":["scale=w=1280:h=720"]}`),
		"graphs/crop/general.json":    file(`{"title":"Crop","description":"Cut borders","tags":["h264","encode"],"graphs":[{"version":"7.1"}]}`),
		"graphs/crop/ffmpeg_7.1.json":  file(`{"nodes":["crop=iw-20:ih-20"]}`),
	}
}

func TestLoadOrderAndRawPayload(t *testing.T) {
	src := content.NewFSSource(testFS(), "memfs")
	cat, err := NewLoader(src).Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, cat.Failures)
	require.Len(t, cat.Groups, 2)

	scale := cat.Groups[0]
	assert.Equal(t, "scale", scale.ID)
	assert.Equal(t, "Scale", scale.Title)
	assert.Equal(t, []string{"resize"}, scale.Tags)
	require.Len(t, scale.Versions, 2)
	assert.Equal(t, "7.1", scale.Versions[0].Version)
	assert.Equal(t, `{"nodes":["scale=1280:720"]}`, scale.Versions[0].GraphData)
	assert.Equal(t, "6.1", scale.Versions[1].Version)

	assert.Equal(t, "crop", cat.Groups[1].ID)
	assert.Equal(t, "7.1", cat.Groups[1].DefaultVersion().Version)
}

func TestLoadIndexFailureIsFatal(t *testing.T) {
	src := content.NewFSSource(fstest.MapFS{}, "empty")
	cat, err := NewLoader(src).Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, cat)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindIndex, fe.Kind)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestLoadMalformedIndex(t *testing.T) {
	src := content.NewFSSource(fstest.MapFS{"graphs/general.json": file(`{"graphs":`)}, "bad")
	_, err := NewLoader(src).Load(context.Background())
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindIndex, fe.Kind)
}

func TestLoadEmptyIndex(t *testing.T) {
	src := content.NewFSSource(fstest.MapFS{"graphs/general.json": file(`{"graphs":[]}`)}, "none")
	cat, err := NewLoader(src).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cat.Groups)
	assert.Empty(t, cat.Failures)
}

func TestLoadIsolatesGroupFailures(t *testing.T) {
	fsys := testFS()
	delete(fsys, "graphs/scale/ffmpeg_6.1.json")

	cat, err := NewLoader(content.NewFSSource(fsys, "memfs")).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Groups, 1)
	assert.Equal(t, "crop", cat.Groups[0].ID)

	require.Len(t, cat.Failures, 1)
	f := cat.Failures[0]
	assert.Equal(t, KindPayload, f.Kind)
	assert.Equal(t, "scale", f.Group)
	assert.Equal(t, "6.1", f.Version)
	assert.Equal(t, "graphs/scale/ffmpeg_6.1.json", f.Path)
}

func TestLoadMissingManifest(t *testing.T) {
	fsys := testFS()
	delete(fsys, "graphs/crop/general.json")

	cat, err := NewLoader(content.NewFSSource(fsys, "memfs")).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Groups, 1)
	require.Len(t, cat.Failures, 1)
	assert.Equal(t, KindManifest, cat.Failures[0].Kind)
	assert.Equal(t, "crop", cat.Failures[0].Group)
}

func TestLoadGroupWithoutVersions(t *testing.T) {
	fsys := testFS()
	fsys["graphs/crop/general.json"] = file(`{"title":"Crop","graphs":[]}`)

	cat, err := NewLoader(content.NewFSSource(fsys, "memfs")).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Failures, 1)
	assert.ErrorIs(t, cat.Failures[0], ErrNoVersions)
}

func TestLoadStrict(t *testing.T) {
	fsys := testFS()
	delete(fsys, "graphs/crop/ffmpeg_7.1.json")

	cat, err := NewLoader(content.NewFSSource(fsys, "memfs"), WithStrict(true)).Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, cat)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindPayload, fe.Kind)
	assert.Equal(t, "crop", fe.Group)
}

// jitterSource completes fetches in random order.
type jitterSource struct {
	content.Source
	inFlight atomic.Int64
	peak     atomic.Int64
}

func (j *jitterSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	n := j.inFlight.Add(1)
	defer j.inFlight.Add(-1)
	for {
		p := j.peak.Load()
		if n <= p || j.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(time.Duration(rand.Intn(3)) * time.Millisecond)
	return j.Source.Fetch(ctx, name)
}

func TestLoadOrderIndependentOfCompletion(t *testing.T) {
	fsys := fstest.MapFS{}
	ids := []string{"a", "b", "c", "d", "e", "f"}
	index := `{"graphs":["a","b","c","d","e","f"]}`
	fsys["graphs/general.json"] = file(index)
	for _, id := range ids {
		fsys["graphs/"+id+"/general.json"] = file(`{"title":"` + id + `","graphs":[{"version":"1"},{"version":"2"},{"version":"3"}]}`)
		for _, v := range []string{"1", "2", "3"} {
			fsys["graphs/"+id+"/ffmpeg_"+v+".json"] = file(id + v)
		}
	}

	src := &jitterSource{Source: content.NewFSSource(fsys, "jitter")}
	cat, err := NewLoader(src, WithMaxConcurrency(2)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Groups, len(ids))
	for i, g := range cat.Groups {
		assert.Equal(t, ids[i], g.ID)
		for j, v := range g.Versions {
			assert.Equal(t, ids[i]+v.Version, v.GraphData)
			assert.Equal(t, []string{"1", "2", "3"}[j], v.Version)
		}
	}
	// two groups, each with at most two payload fetches
	assert.LessOrEqual(t, src.peak.Load(), int64(4))
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader(content.NewFSSource(testFS(), "memfs")).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// cancelAfterIndex cancels the caller's context once the index is served.
type cancelAfterIndex struct {
	content.Source
	cancel context.CancelFunc
}

func (c *cancelAfterIndex) Fetch(ctx context.Context, name string) ([]byte, error) {
	if name != DefaultLayout.IndexPath {
		c.cancel()
	}
	return c.Source.Fetch(ctx, name)
}

func TestLoadCancelledAfterIndex(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := &cancelAfterIndex{Source: content.NewFSSource(testFS(), "memfs"), cancel: cancel}

	cat, err := NewLoader(src).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, cat, "no partial catalog after cancellation")

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	src.cancel = cancel2
	_, err = NewLoader(src, WithStrict(true)).Load(ctx2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLayoutPaths(t *testing.T) {
	l := Layout{IndexPath: "data/graphs/general.json", PayloadPrefix: "tool_"}
	assert.Equal(t, "data/graphs/x/general.json", l.ManifestPath("x"))
	assert.Equal(t, "data/graphs/x/tool_2.0.json", l.PayloadPath("x", "2.0"))
	assert.Equal(t, "data/graphs/*/tool_*.json", l.PayloadPattern())
}

func TestCatalogFind(t *testing.T) {
	cat := &Catalog{Groups: []TemplateGroup{{ID: "a"}, {ID: "b"}}}
	g, ok := cat.Find("b")
	assert.True(t, ok)
	assert.Equal(t, "b", g.ID)
	_, ok = cat.Find("z")
	assert.False(t, ok)

	var nilCat *Catalog
	_, ok = nilCat.Find("a")
	assert.False(t, ok)
}
