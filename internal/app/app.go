// Package app wires user commands to state transitions and derives the
// visual tree the hosts display.
package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/state"
	"github.com/Makepad-fr/todolist/internal/view"
)

// RemovePolicy selects what a row's remove control deletes.
type RemovePolicy string

const (
	// RemoveByValue deletes every item equal to the row's value.
	RemoveByValue RemovePolicy = "value"
	// RemoveByRow deletes only the row that was activated.
	RemoveByRow RemovePolicy = "row"
)

// ParseRemovePolicy validates a policy name. The empty string selects
// RemoveByValue.
func ParseRemovePolicy(s string) (RemovePolicy, error) {
	switch RemovePolicy(s) {
	case "", RemoveByValue:
		return RemoveByValue, nil
	case RemoveByRow:
		return RemoveByRow, nil
	}
	return "", fmt.Errorf("unknown remove policy %q (want value or row)", s)
}

// Options configure an App.
type Options struct {
	Title       string
	Placeholder string
	Policy      RemovePolicy
	Logger      *log.Logger
}

// App is the event wiring between hosts and the state store. It is the
// only writer of the store.
type App struct {
	store    *state.Store
	renderer view.Renderer
	policy   RemovePolicy
	logger   *log.Logger

	cancelSubmit func()
}

// New wires store and returns the App. Submitting the input field runs the
// submit rule.
func New(store *state.Store, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	policy := opts.Policy
	if policy == "" {
		policy = RemoveByValue
	}
	a := &App{
		store:    store,
		renderer: view.Renderer{Title: opts.Title, Placeholder: opts.Placeholder},
		policy:   policy,
		logger:   logger,
	}
	a.cancelSubmit = store.Input.OnSubmit(a.submit)
	return a
}

// Close detaches the App from the input field's submit notification.
func (a *App) Close() {
	if a.cancelSubmit != nil {
		a.cancelSubmit()
		a.cancelSubmit = nil
	}
}

// Store returns the state the App writes to.
func (a *App) Store() *state.Store { return a.store }

// Subscribe registers fn to run whenever the tree needs to be re-derived.
func (a *App) Subscribe(fn func()) (cancel func()) { return a.store.Subscribe(fn) }

// Tree derives the visual tree from the current state.
func (a *App) Tree() view.Node {
	return a.renderer.Render(a.store.Input.Get(), a.store.Items.Snapshot())
}

// Dispatch applies cmd to the state.
func (a *App) Dispatch(cmd view.Command) {
	switch cmd.Action {
	case view.ActionSubmit:
		a.submit()
	case view.ActionRemove:
		a.remove(cmd)
	case view.ActionEdit:
		a.store.Input.Set(cmd.Payload)
	default:
		a.logger.Warn("ignoring command", "command", cmd.String())
	}
}

// submit appends the input value and clears the input as one transition.
func (a *App) submit() {
	var v string
	a.store.Update(func() {
		v = a.store.Input.Get()
		a.store.Items.Append(v)
		a.store.Input.Set("")
	})
	a.logger.Debug("item added", "item", v, "count", a.store.Items.Len())
}

func (a *App) remove(cmd view.Command) {
	if a.policy == RemoveByRow {
		// the row may be stale if the list changed since it was rendered
		if v, ok := a.store.Items.At(cmd.Index); ok && v == cmd.Payload {
			a.store.Items.RemoveAt(cmd.Index)
			a.logger.Debug("row removed", "item", cmd.Payload, "index", cmd.Index)
			return
		}
		a.logger.Warn("stale remove ignored", "item", cmd.Payload, "index", cmd.Index)
		return
	}
	n := a.store.Items.Remove(cmd.Payload)
	a.logger.Debug("items removed", "item", cmd.Payload, "removed", n)
}
