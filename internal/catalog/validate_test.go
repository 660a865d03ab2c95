package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/ffsite/internal/content"
)

func TestOrphans(t *testing.T) {
	fsys := testFS()
	fsys["graphs/scale/ffmpeg_5.0.json"] = file(`{}`)
	fsys["graphs/unlisted/ffmpeg_7.1.json"] = file(`{}`)
	fsys["graphs/scale/notes.json"] = file(`{}`)

	cat, err := NewLoader(content.NewFSSource(fsys, "memfs")).Load(context.Background())
	require.NoError(t, err)

	orphans, err := Orphans(fsys, DefaultLayout, cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"graphs/scale/ffmpeg_5.0.json", "graphs/unlisted/ffmpeg_7.1.json"}, orphans)
}

func TestOrphansSkipsFailedGroups(t *testing.T) {
	fsys := testFS()
	delete(fsys, "graphs/crop/general.json")

	cat, err := NewLoader(content.NewFSSource(fsys, "memfs")).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Failures, 1)

	orphans, err := Orphans(fsys, DefaultLayout, cat)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}
