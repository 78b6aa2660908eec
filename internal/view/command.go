package view

import "fmt"

// Action names a state transition a rendered control can request.
type Action int

const (
	ActionNone Action = iota
	// ActionSubmit moves the input value into the list and clears the input.
	ActionSubmit
	// ActionRemove removes the item carried in Payload.
	ActionRemove
	// ActionEdit replaces the input value with Payload (keystroke proxy).
	ActionEdit
)

func (a Action) String() string {
	switch a {
	case ActionSubmit:
		return "submit"
	case ActionRemove:
		return "remove"
	case ActionEdit:
		return "edit"
	default:
		return "none"
	}
}

// Command is attached to a control at render time and dispatched back to
// the event wiring when the control is activated.
type Command struct {
	Action  Action
	Payload string
	// Index is the row position the command was rendered for. It is a
	// display position, not an identity.
	Index int
}

func (c Command) String() string {
	switch c.Action {
	case ActionRemove:
		return fmt.Sprintf("remove(%q@%d)", c.Payload, c.Index)
	case ActionEdit:
		return fmt.Sprintf("edit(%q)", c.Payload)
	default:
		return c.Action.String()
	}
}

// Submit returns the command bound to the "Add" control.
func Submit() Command { return Command{Action: ActionSubmit} }

// Remove returns the command bound to a row's "remove" control.
func Remove(item string, index int) Command {
	return Command{Action: ActionRemove, Payload: item, Index: index}
}

// Edit returns the command a host sends for a keystroke in the input box.
func Edit(value string) Command { return Command{Action: ActionEdit, Payload: value} }
