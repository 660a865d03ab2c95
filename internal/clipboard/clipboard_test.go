package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/ffsite/internal/clock"
)

type fakeClipboard struct {
	err    error
	copied []string
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestCopyPrimary(t *testing.T) {
	primary, fallback := &fakeClipboard{}, &fakeClipboard{}
	c := &Copier{Primary: primary, Fallback: fallback, Logger: quietLogger()}

	require.NoError(t, c.Copy(`{"a":1}`))
	assert.Equal(t, []string{`{"a":1}`}, primary.copied)
	assert.Empty(t, fallback.copied)
}

func TestCopyFallbackShowsConfirmation(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	primary := &fakeClipboard{err: errors.New("no clipboard utility")}
	fallback := &fakeClipboard{}
	c := &Copier{Primary: primary, Fallback: fallback, Logger: quietLogger()}

	reverted := 0
	conf := NewConfirmation(clk, 0, func() { reverted++ })

	require.NoError(t, c.Copy("payload"))
	conf.Show()
	assert.Equal(t, []string{"payload"}, fallback.copied)
	assert.True(t, conf.Active())

	clk.Advance(1999 * time.Millisecond)
	assert.True(t, conf.Active())
	clk.Advance(time.Millisecond)
	assert.False(t, conf.Active())
	assert.Equal(t, 1, reverted)
}

func TestCopyBothFail(t *testing.T) {
	pErr, fErr := errors.New("primary"), errors.New("fallback")
	c := &Copier{Primary: &fakeClipboard{err: pErr}, Fallback: &fakeClipboard{err: fErr}, Logger: quietLogger()}

	err := c.Copy("x")
	var ce *CopyError
	require.True(t, errors.As(err, &ce))
	assert.ErrorIs(t, err, pErr)
	assert.ErrorIs(t, err, fErr)
}

func TestCopyMissingPrimary(t *testing.T) {
	fallback := &fakeClipboard{}
	c := &Copier{Fallback: fallback, Logger: quietLogger()}
	require.NoError(t, c.Copy("x"))
	assert.Equal(t, []string{"x"}, fallback.copied)

	err := (&Copier{Logger: quietLogger()}).Copy("x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestConfirmationRestarts(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	reverted := 0
	conf := NewConfirmation(clk, ConfirmDuration, func() { reverted++ })

	conf.Show()
	clk.Advance(1500 * time.Millisecond)
	conf.Show()
	clk.Advance(1500 * time.Millisecond)
	assert.True(t, conf.Active(), "second copy restarts the window")
	assert.Equal(t, 0, reverted)

	clk.Advance(500 * time.Millisecond)
	assert.False(t, conf.Active())
	assert.Equal(t, 1, reverted, "only the last copy reverts")
	assert.Equal(t, 0, clk.Pending())
}

func TestOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")
	var buf bytes.Buffer
	require.NoError(t, OSC52{Out: &buf}.Copy("hello"))
	assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte("hello")))
	assert.Contains(t, buf.String(), "\x1b]52;")
}
