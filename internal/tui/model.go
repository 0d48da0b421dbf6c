package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldkit/fieldkit/internal/config"
	"github.com/fieldkit/fieldkit/internal/field"
	"github.com/fieldkit/fieldkit/internal/store"
	"github.com/fieldkit/fieldkit/internal/tui/styles"
	"github.com/fieldkit/fieldkit/internal/util"
)

// Model drives the demo: one composed text field bound to the shared store.
//
// The composed renderer is pure, so the edit buffer lives here, in a
// bubbles textinput used purely as an input state machine. Each keystroke
// that changes the buffer goes through the binder's OnChange, and the view
// always re-renders from whatever the container currently holds, so an
// external update (the fetch-on-mount dispatch) wins over stale local edits
// the same way a user edit does.
type Model struct {
	st       *store.Store
	binder   *field.Binder
	renderer field.Renderer
	remote   *field.Remote // nil when no remote endpoint is configured

	input      textinput.Model
	label      string
	showFooter bool

	changes     chan store.State
	fetchResult chan error
	cancelWatch func()

	width     int
	fetchDone bool
	fetchErr  error
	quitting  bool
}

// NewModel creates the demo model around an already-composed renderer chain.
func NewModel(st *store.Store, binder *field.Binder, renderer field.Renderer, remote *field.Remote, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.SetValue(store.SelectTextFieldValue(st.State()))
	ti.CursorEnd()

	m := &Model{
		st:          st,
		binder:      binder,
		renderer:    renderer,
		remote:      remote,
		input:       ti,
		label:       cfg.Field.Label,
		showFooter:  cfg.TUI.ShowFooter,
		changes:     make(chan store.State, 64),
		fetchResult: make(chan error, 1),
	}

	m.cancelWatch = binder.Watch(func(s store.State) {
		m.changes <- s
	})
	return m
}

// FetchResult is the hook to hand to field.WithResultHook so the footer can
// report the outcome.
func (m *Model) FetchResult(err error) {
	m.fetchResult <- err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.waitForStore()}
	if m.remote != nil {
		m.remote.Mount(context.Background())
		cmds = append(cmds, m.waitForFetch())
	}
	return tea.Batch(cmds...)
}

// waitForStore returns a command that delivers the next container state.
func (m *Model) waitForStore() tea.Cmd {
	return func() tea.Msg {
		s, ok := <-m.changes
		if !ok {
			return nil
		}
		return storeChangedMsg{state: s}
	}
}

// waitForFetch returns a command that delivers the fetch outcome.
func (m *Model) waitForFetch() tea.Cmd {
	return func() tea.Msg {
		return fetchSettledMsg{err: <-m.fetchResult}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelWatch()
			return m, tea.Quit
		}

		prev := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if next := m.input.Value(); next != prev {
			// User interaction -> change notification up the composition.
			m.binder.OnChange(next)
		}
		return m, cmd

	case storeChangedMsg:
		if v := store.SelectTextFieldValue(msg.state); v != m.input.Value() {
			// External update (fetch or another writer): adopt it.
			m.input.SetValue(v)
			m.input.CursorEnd()
		}
		return m, m.waitForStore()

	case fetchSettledMsg:
		m.fetchDone = true
		m.fetchErr = msg.err
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("fieldkit"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("one field, four layers"))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Render(field.Props{Label: m.label}))
	b.WriteString("\n")

	if m.showFooter {
		b.WriteString(m.footer())
	}

	view := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	return util.ClampWidth(view, m.width)
}

// footer renders the store sequence, fetch status, and key hint.
func (m *Model) footer() string {
	parts := []string{fmt.Sprintf("seq %d", m.st.Sequence())}

	switch {
	case m.remote == nil:
		parts = append(parts, styles.Muted.Render("no remote"))
	case !m.fetchDone:
		parts = append(parts, styles.Muted.Render("fetching…"))
	case m.fetchErr != nil:
		parts = append(parts, styles.FooterError.Render("fetch failed"))
	default:
		parts = append(parts, styles.FooterOK.Render("fetched"))
	}

	parts = append(parts, "esc to quit")
	return styles.FooterBar.Render(strings.Join(parts, " · "))
}
