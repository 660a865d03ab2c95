// Package tui implements the interactive template browser.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/clipboard"
	"github.com/ziadkadry99/ffsite/internal/clock"
	"github.com/ziadkadry99/ffsite/internal/debounce"
	"github.com/ziadkadry99/ffsite/internal/gallery"
)

// Focus identifies which part of the browser receives keys.
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
)

// Options configures the browser.
type Options struct {
	ToolName       string
	PageSize       int
	SearchDebounce time.Duration
	ConfirmFor     time.Duration
	Clipboard      clipboard.Clipboard
	Clock          clock.Clock
}

// Timer callbacks are delivered to Update through this channel so that
// the gallery is only touched on the program goroutine.
type (
	settledQueryMsg struct{ query string }
	copyRevertMsg   struct{}
	copyDoneMsg     struct {
		id  string
		err error
	}
)

// Model is the browser state.
type Model struct {
	opts     Options
	gallery  *gallery.Gallery
	input    textinput.Model
	focus    Focus
	cursor   int
	events   chan tea.Msg
	search   *debounce.Debouncer[string]
	confirm  *clipboard.Confirmation
	copiedID string
	err      string
	width    int
	height   int
}

// New creates a browser over entries.
func New(entries []catalog.TemplateGroup, opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	ti := textinput.New()
	ti.Placeholder = "Search templates..."
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Focus()

	events := make(chan tea.Msg, 16)
	m := Model{
		opts:    opts,
		gallery: gallery.New(entries, opts.PageSize),
		input:   ti,
		events:  events,
	}
	m.search = debounce.New(opts.SearchDebounce, func(q string) {
		events <- settledQueryMsg{query: q}
	}, debounce.WithClock[string](opts.Clock))
	m.confirm = clipboard.NewConfirmation(opts.Clock, opts.ConfirmFor, func() {
		events <- copyRevertMsg{}
	})
	return m
}

// Init starts the cursor blink and the timer event listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listen())
}

func (m Model) listen() tea.Cmd {
	events := m.events
	return func() tea.Msg { return <-events }
}

// Gallery exposes the browsing state.
func (m Model) Gallery() *gallery.Gallery { return m.gallery }

// Focus returns the focused area.
func (m Model) Focus() Focus { return m.focus }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case settledQueryMsg:
		// Drop results overtaken by a clear or a flush.
		if msg.query == m.input.Value() {
			m.applyQuery(msg.query)
		}
		return m, m.listen()

	case copyRevertMsg:
		if !m.confirm.Active() {
			m.copiedID = ""
		}
		return m, m.listen()

	case copyDoneMsg:
		if msg.err != nil {
			m.err = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.copiedID = msg.id
		m.confirm.Show()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.search.Cancel()
			return m, tea.Quit
		}
		if m.focus == FocusSearch {
			return m.updateSearch(msg)
		}
		return m.updateResults(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.input.Value() == "" {
			m.blurSearch()
			return m, nil
		}
		// Clearing bypasses the debounce.
		m.search.Cancel()
		m.input.SetValue("")
		m.applyQuery("")
		return m, nil
	case tea.KeyEnter, tea.KeyDown, tea.KeyTab:
		if m.search.Pending() || m.input.Value() != m.gallery.Query() {
			m.search.Cancel()
			m.applyQuery(m.input.Value())
		}
		m.blurSearch()
		return m, nil
	}

	old := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != old {
		if v == "" {
			m.search.Cancel()
			m.applyQuery("")
		} else {
			m.search.Trigger(v)
		}
	}
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.gallery
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = FocusSearch
		return m, m.input.Focus()
	case "esc":
		if m.input.Value() != "" {
			m.search.Cancel()
			m.input.SetValue("")
			m.applyQuery("")
		}
	case "j", "down":
		if m.cursor < len(g.View().Cards)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "l", "right", "pgdown":
		g.Next()
		m.cursor = 0
	case "h", "left", "pgup":
		g.Prev()
		m.cursor = 0
	case "g", "home":
		g.First()
		m.cursor = 0
	case "G", "end":
		g.Last()
		m.cursor = 0
	case "s":
		g.SetPageSize(NextPageSize(g.PageSize()))
		m.cursor = 0
	case "v":
		if c, ok := m.current(); ok {
			g.CycleVersion(c.Group.ID)
		}
	case "c", "y", "enter":
		if c, ok := m.current(); ok {
			return m, m.copyCmd(c)
		}
	}
	return m, nil
}

func (m *Model) blurSearch() {
	m.input.Blur()
	m.focus = FocusResults
}

func (m *Model) applyQuery(q string) {
	m.gallery.SetQuery(q)
	m.cursor = 0
}

func (m Model) current() (gallery.Card, bool) {
	cards := m.gallery.View().Cards
	if m.cursor < 0 || m.cursor >= len(cards) {
		return gallery.Card{}, false
	}
	return cards[m.cursor], true
}

func (m Model) copyCmd(c gallery.Card) tea.Cmd {
	cb := m.opts.Clipboard
	id, payload := c.Group.ID, c.Selected.GraphData
	return func() tea.Msg {
		if cb == nil {
			return copyDoneMsg{id: id, err: clipboard.ErrUnavailable}
		}
		return copyDoneMsg{id: id, err: cb.Copy(payload)}
	}
}

// View renders the browser.
func (m Model) View() string {
	v := m.gallery.View()
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.opts.ToolName+" Graph Library") + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s · %d per page", v.Summary, v.PageSize)) + "\n\n")

	for i, c := range v.Cards {
		b.WriteString(m.renderCard(c, i == m.cursor && m.focus == FocusResults) + "\n")
	}

	if pager := pagerLine(v, func(s string) string { return currentPageStyle.Render(s) }); pager != "" {
		b.WriteString("\n" + pager + "\n")
	}
	if m.err != "" {
		b.WriteString(errStyle.Render(m.err) + "\n")
	}
	b.WriteString(mutedStyle.Render(m.help()))
	return b.String()
}

func (m Model) renderCard(c gallery.Card, active bool) string {
	g := c.Group
	head := lipgloss.NewStyle().Bold(true).Render(g.Title)
	if g.ID == m.copiedID && m.confirm.Active() {
		head += "  " + okStyle.Render("✓ Copied!")
	}
	lines := []string{head}
	if g.Description != "" {
		lines = append(lines, g.Description)
	}
	if len(g.Tags) > 0 {
		lines = append(lines, tagStyle.Render("#"+strings.Join(g.Tags, " #")))
	}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("%s · %s · %d version(s)",
		catalog.VersionLabel(m.opts.ToolName, c.Selected.Version),
		humanize.Bytes(uint64(len(c.Selected.GraphData))),
		len(g.Versions))))

	style := cardStyle
	if active {
		style = activeCardStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) help() string {
	if m.focus == FocusSearch {
		return "type to search · esc clear · enter results · ctrl+c quit"
	}
	return "j/k move · h/l page · g/G first/last · s page size · v version · c copy · / search · q quit"
}
