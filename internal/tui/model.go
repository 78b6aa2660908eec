// Package tui hosts the todo list in a terminal with bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/todolist/internal/app"
	"github.com/Makepad-fr/todolist/internal/ui"
	"github.com/Makepad-fr/todolist/internal/view"
)

const inputWidth = 30

// Options configure the terminal host.
type Options struct {
	Theme     string
	CharLimit int
}

// Model is the bubbletea model. It keeps no todo state of its own: the
// tree is re-derived from the App whenever the App reports a change.
type Model struct {
	app   *app.App
	theme ui.Theme
	keys  keyMap
	help  help.Model
	ti    textinput.Model

	tree    view.Node
	dirty   bool
	derived int // tree derivations, for tests
	focus   int
	frame   string
	regions []region

	cancel func()
}

// New returns a model showing a's current state with the input focused.
func New(a *app.App, opts Options) *Model {
	m := &Model{
		app:   a,
		theme: ui.ThemeByName(opts.Theme),
		keys:  defaultKeyMap(),
		help:  help.New(),
		dirty: true,
	}
	m.help.Styles.ShortKey = m.theme.Help
	m.help.Styles.ShortDesc = m.theme.Help

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = opts.CharLimit
	m.ti.Width = inputWidth
	m.ti.Focus()

	m.cancel = a.Subscribe(func() { m.dirty = true })
	m.refresh()
	return m
}

// Close stops listening to the App.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
	default:
		// cursor blink
		m.ti, cmd = m.ti.Update(msg)
	}
	m.refresh()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.frame, m.help.View(m.keys))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return nil
	}

	focused, ok := m.focused()
	if !ok {
		return nil
	}
	if focused.Kind == view.KindButton {
		if key.Matches(msg, m.keys.Activate) {
			m.app.Dispatch(*focused.Command)
		}
		return nil
	}

	if key.Matches(msg, m.keys.Submit) {
		m.app.Store().Input.Submit()
		return nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	if v := m.ti.Value(); v != m.app.Store().Input.Get() {
		m.app.Dispatch(view.Edit(v))
	}
	return cmd
}

func (m *Model) click(x, y int) {
	for _, r := range m.regions {
		if !r.contains(x, y) {
			continue
		}
		m.focusOn(r.id)
		if r.cmd != nil {
			m.app.Dispatch(*r.cmd)
		}
		return
	}
}

// refresh re-derives the tree if the App changed, keeps the text input in
// step with the state and repaints.
func (m *Model) refresh() {
	if m.dirty {
		m.tree = m.app.Tree()
		m.derived++
		m.dirty = false
		if input, ok := view.Find(m.tree, view.IDInput); ok {
			if input.Text != m.ti.Value() {
				m.ti.SetValue(input.Text)
			}
			m.ti.Placeholder = input.Placeholder
		}
	}

	controls := view.Controls(m.tree)
	if m.focus >= len(controls) {
		m.focus = len(controls) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}

	focusID := ""
	if f, ok := m.focused(); ok {
		focusID = f.ID
	}
	if focusID == view.IDInput {
		m.ti.Focus()
	} else {
		m.ti.Blur()
	}
	m.frame, m.regions = painter{theme: m.theme, focusID: focusID}.paint(m.tree, m.ti.View())
}

func (m *Model) focused() (view.Node, bool) {
	controls := view.Controls(m.tree)
	if m.focus < 0 || m.focus >= len(controls) {
		return view.Node{}, false
	}
	return controls[m.focus], true
}

func (m *Model) focusOn(id string) {
	for i, c := range view.Controls(m.tree) {
		if c.ID == id {
			m.focus = i
			return
		}
	}
}

func (m *Model) moveFocus(delta int) {
	n := len(view.Controls(m.tree))
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

// Host runs the terminal frontend.
type Host struct {
	Options        Options
	ProgramOptions []tea.ProgramOption
}

// Run blocks until the user quits or ctx is cancelled.
func (h Host) Run(ctx context.Context, a *app.App) error {
	m := New(a, h.Options)
	defer m.Close()

	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, h.ProgramOptions...)
	_, err := tea.NewProgram(m, opts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
