package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/clipboard"
	"github.com/ziadkadry99/ffsite/internal/clock"
)

type stubClipboard struct {
	err    error
	copied []string
}

func (s *stubClipboard) Copy(text string) error {
	if s.err != nil {
		return s.err
	}
	s.copied = append(s.copied, text)
	return nil
}

func testEntries(n int) []catalog.TemplateGroup {
	out := make([]catalog.TemplateGroup, n)
	for i := range out {
		tag := "scale"
		if i%2 == 0 {
			tag = "h264"
		}
		out[i] = catalog.TemplateGroup{
			ID:    fmt.Sprintf("g%02d", i),
			Title: fmt.Sprintf("Template %d", i),
			Tags:  []string{tag},
			Versions: []catalog.Version{
				{Version: "7.1", GraphData: fmt.Sprintf(`{"n":%d,"v":"7.1"}`, i)},
				{Version: "6.1", GraphData: fmt.Sprintf(`{"n":%d,"v":"6.1"}`, i)},
			},
		}
	}
	return out
}

func createTestModel(t *testing.T, n int, cb clipboard.Clipboard) (Model, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(time.Unix(0, 0))
	m := New(testEntries(n), Options{
		ToolName:  "FFmpeg",
		PageSize:  12,
		Clipboard: cb,
		Clock:     fake,
	})
	return m, fake
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return m
}

// drain returns the queued timer event, if any.
func drain(m Model) (tea.Msg, bool) {
	select {
	case msg := <-m.events:
		return msg, true
	default:
		return nil, false
	}
}

func TestBrowse_New(t *testing.T) {
	m, _ := createTestModel(t, 7, nil)

	require.Equal(t, FocusSearch, m.Focus())
	v := m.Gallery().View()
	require.Len(t, v.Cards, 7)
	require.Equal(t, 1, v.Page.TotalPages)
}

func TestBrowse_SearchDebounced(t *testing.T) {
	m, fake := createTestModel(t, 30, nil)

	for _, r := range "h264" {
		m = typeRune(t, m, r)
		fake.Advance(100 * time.Millisecond)
		_, ok := drain(m)
		require.False(t, ok, "no filter should run while typing")
	}
	require.Equal(t, "", m.Gallery().Query())

	fake.Advance(200 * time.Millisecond)
	msg, ok := drain(m)
	require.True(t, ok, "filter should run 300ms after the last keystroke")
	require.Equal(t, settledQueryMsg{query: "h264"}, msg)

	m, cmd := send(t, m, msg)
	require.NotNil(t, cmd, "listener must be re-armed")
	require.Equal(t, "h264", m.Gallery().Query())
	require.Equal(t, 15, m.Gallery().View().Page.Total)

	_, ok = drain(m)
	require.False(t, ok, "exactly one filter per burst")
}

func TestBrowse_EscClearsImmediately(t *testing.T) {
	m, fake := createTestModel(t, 30, nil)
	m = typeRune(t, m, 'x')
	fake.Advance(300 * time.Millisecond)
	msg, _ := drain(m)
	m, _ = send(t, m, msg)
	require.Equal(t, 0, m.Gallery().View().Page.Total)

	m = typeRune(t, m, 'y')
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, "", m.Gallery().Query(), "clear applies without waiting")
	require.Equal(t, 30, m.Gallery().View().Page.Total)

	fake.Advance(time.Second)
	_, ok := drain(m)
	require.False(t, ok, "pending search should be cancelled")
}

func TestBrowse_StaleSettledQueryIgnored(t *testing.T) {
	m, _ := createTestModel(t, 30, nil)
	m, _ = send(t, m, settledQueryMsg{query: "h264"})
	require.Equal(t, "", m.Gallery().Query())
}

func TestBrowse_EnterAppliesPendingQuery(t *testing.T) {
	m, fake := createTestModel(t, 30, nil)
	for _, r := range "scale" {
		m = typeRune(t, m, r)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, FocusResults, m.Focus())
	require.Equal(t, "scale", m.Gallery().Query())

	fake.Advance(time.Second)
	_, ok := drain(m)
	require.False(t, ok)
}

func TestBrowse_Paging(t *testing.T) {
	m, _ := createTestModel(t, 50, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	key := func(s string) {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	key("G")
	v := m.Gallery().View()
	require.Equal(t, 5, v.Page.Number)
	require.Len(t, v.Cards, 2)

	key("h")
	require.Equal(t, 4, m.Gallery().View().Page.Number)

	key("s")
	v = m.Gallery().View()
	require.Equal(t, 24, v.PageSize)
	require.Equal(t, 1, v.Page.Number, "page size change resets to page 1")

	key("l")
	key("/")
	require.Equal(t, FocusSearch, m.Focus())
	m = typeRune(t, m, 'q')
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.Gallery().View().Page.Number, "query change resets to page 1")
}

func TestBrowse_CycleVersion(t *testing.T) {
	cb := &stubClipboard{}
	m, _ := createTestModel(t, 3, cb)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	_, _ = send(t, m, cmd())
	require.Equal(t, []string{`{"n":1,"v":"6.1"}`}, cb.copied)
}

func TestBrowse_CopyFallbackAndConfirmation(t *testing.T) {
	fallback := &stubClipboard{}
	copier := &clipboard.Copier{
		Primary:  &stubClipboard{err: errors.New("no display")},
		Fallback: fallback,
	}
	m, fake := createTestModel(t, 3, copier)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m, _ = send(t, m, cmd())
	require.Equal(t, []string{`{"n":0,"v":"7.1"}`}, fallback.copied)
	require.True(t, m.confirm.Active())
	require.Contains(t, m.View(), "Copied!")

	// A second copy restarts the window.
	fake.Advance(1500 * time.Millisecond)
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m, _ = send(t, m, cmd())
	fake.Advance(1999 * time.Millisecond)
	require.True(t, m.confirm.Active())
	_, ok := drain(m)
	require.False(t, ok)

	fake.Advance(time.Millisecond)
	msg, ok := drain(m)
	require.True(t, ok)
	m, _ = send(t, m, msg)
	require.False(t, m.confirm.Active())
	require.NotContains(t, m.View(), "Copied!")
}

func TestBrowse_CopyFailure(t *testing.T) {
	m, _ := createTestModel(t, 3, &stubClipboard{err: errors.New("denied")})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m, _ = send(t, m, cmd())
	require.False(t, m.confirm.Active())
	require.Contains(t, m.View(), "Copy failed")
}

func TestPagerLine(t *testing.T) {
	m, _ := createTestModel(t, 120, nil)
	g := m.Gallery()
	g.GoToPage(5)
	line := PagerLine(g.View())
	require.Equal(t, "« ‹ … 3 4 [5] 6 7 … › »", line)

	g.First()
	require.True(t, strings.HasPrefix(PagerLine(g.View()), "    [1] 2 3 4 5 …"))
}

func TestNextPageSize(t *testing.T) {
	require.Equal(t, 24, NextPageSize(12))
	require.Equal(t, 6, NextPageSize(48))
	require.Equal(t, 12, NextPageSize(7))
}
