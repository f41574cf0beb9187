// Package tui is the interactive journal: a note editor, an action list and
// day navigation on top of a session.Session. The session is saved on every
// refresh tick when it changed, before every navigation, and on quit.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/reflect/pkg/day"
	"tableflip.dev/reflect/pkg/session"
	"tableflip.dev/reflect/pkg/store"
	"tableflip.dev/reflect/pkg/tui/theme"
)

type focus int

const (
	focusNote focus = iota
	focusAction
	focusList
	focusCount
)

const helpText = "tab focus · pgup/pgdn day · ctrl+t today · enter add · d delete · 1-5 mood · ctrl+c quit"

type tickMsg time.Time

type storeEventMsg store.Event

type watchClosedMsg struct{}

// Model is the Bubble Tea model. It must only be driven by one program.
type Model struct {
	session *session.Session
	events  <-chan store.Event
	tick    time.Duration
	logger  log.FieldLogger
	today   func() day.Date
	theme   theme.Theme

	focus    focus
	note     textarea.Model
	action   textinput.Model
	selected int

	status   string
	width    int
	height   int
	quitting bool
}

type Option func(*Model)

// WithEvents reloads days changed on disk by other processes.
func WithEvents(events <-chan store.Event) Option {
	return func(m *Model) { m.events = events }
}

func WithTick(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.tick = d
		}
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithTheme replaces the default styles.
func WithTheme(t theme.Theme) Option {
	return func(m *Model) { m.theme = t }
}

func withToday(f func() day.Date) Option {
	return func(m *Model) { m.today = f }
}

func New(s *session.Session, opts ...Option) Model {
	note := textarea.New()
	note.Placeholder = "Reflect on your day and jot down your thoughts"
	note.ShowLineNumbers = false
	note.CharLimit = 0
	note.SetHeight(6)

	action := textinput.New()
	action.Placeholder = "What did you do today?"
	action.Prompt = "+ "
	action.CharLimit = 256

	m := Model{
		session: s,
		tick:    time.Second,
		logger:  log.StandardLogger(),
		today:   day.Today,
		theme:   theme.Default(),
		focus:   focusNote,
		note:    note,
		action:  action,
		status:  helpText,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.syncFromSession()
	m.applyFocus()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd(), textarea.Blink}
	if m.events != nil {
		cmds = append(cmds, waitForEvent(m.events))
	}
	return tea.Batch(cmds...)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForEvent(events <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return watchClosedMsg{}
		}
		return storeEventMsg(ev)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		m.save()
		return m, m.tickCmd()

	case storeEventMsg:
		if m.session.Invalidate(msg.Date) {
			m.syncFromSession()
			m.status = "reloaded " + msg.Date.String() + " after it changed on disk"
		}
		return m, waitForEvent(m.events)

	case watchClosedMsg:
		m.events = nil
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusNote:
		// The textarea rewrites tabs and CRLF on load; only keystrokes that
		// change its value count as edits.
		before := m.note.Value()
		m.note, cmd = m.note.Update(msg)
		if m.note.Value() != before {
			m.session.SetNote(m.note.Value())
		}
	case focusAction:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
			m.addAction()
			return m, nil
		}
		m.action, cmd = m.action.Update(msg)
	case focusList:
		if key, ok := msg.(tea.KeyMsg); ok {
			m.handleListKey(key)
		}
	}
	return m, cmd
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		if err := m.session.Close(); err != nil {
			m.logger.WithError(err).Error("final save failed")
		}
		return tea.Quit, true
	case "tab":
		m.focus = (m.focus + 1) % focusCount
		return m.applyFocus(), true
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m.applyFocus(), true
	case "pgdown", "ctrl+n":
		m.navigate(m.session.Forward)
		return nil, true
	case "pgup", "ctrl+p":
		m.navigate(m.session.Backward)
		return nil, true
	case "ctrl+t":
		today := m.today()
		m.navigate(func() error { return m.session.GoTo(today) })
		return nil, true
	case "ctrl+s":
		m.save()
		return nil, true
	}
	return nil, false
}

func (m *Model) handleListKey(msg tea.KeyMsg) {
	actions := m.session.Entry().Actions
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(actions)-1 {
			m.selected++
		}
	case "d", "x", "delete", "backspace":
		removed, err := m.session.RemoveAction(m.selected)
		if err != nil {
			m.status = "nothing to delete"
			return
		}
		m.status = fmt.Sprintf("removed %q", removed)
		m.clampSelection()
	case "0":
		_ = m.session.SetMood(day.MoodNone)
		m.status = "mood cleared"
	case "1", "2", "3", "4", "5":
		mood, err := day.ParseMood(msg.String())
		if err == nil {
			_ = m.session.SetMood(mood)
			m.status = "mood " + mood.Symbol() + " " + mood.String()
		}
	}
}

func (m *Model) addAction() {
	text := m.action.Value()
	if !m.session.AddAction(text) {
		m.status = "type an action first"
		return
	}
	m.action.Reset()
	m.selected = len(m.session.Entry().Actions) - 1
	m.status = fmt.Sprintf("added %q", strings.TrimSpace(text))
}

func (m *Model) navigate(move func() error) {
	if err := move(); err != nil {
		m.status = "could not save: " + err.Error()
	} else {
		m.status = helpText
	}
	m.syncFromSession()
}

func (m *Model) save() {
	saved, err := m.session.Tick()
	switch {
	case err != nil:
		m.status = "could not save: " + err.Error()
	case saved:
		m.status = "saved " + m.session.Date().String()
	}
}

// syncFromSession copies the active entry into the widgets.
func (m *Model) syncFromSession() {
	e := m.session.Entry()
	m.note.SetValue(e.Note)
	m.action.Reset()
	m.clampSelection()
}

func (m *Model) clampSelection() {
	n := len(m.session.Entry().Actions)
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) applyFocus() tea.Cmd {
	m.note.Blur()
	m.action.Blur()
	switch m.focus {
	case focusNote:
		return m.note.Focus()
	case focusAction:
		return m.action.Focus()
	}
	return nil
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.note.SetWidth(w)
	m.action.Width = w - 4
	h := m.height / 3
	if h < 3 {
		h = 3
	}
	m.note.SetHeight(h)
}
