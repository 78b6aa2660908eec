// Package view derives the visual tree of the todo list from state. The
// tree is plain data; controls carry Command values instead of callbacks.
package view

// Kind is the type of a Node.
type Kind int

const (
	KindColumn Kind = iota
	KindRow
	KindTitle
	KindLabel
	KindInput
	KindButton
)

// Icon names understood by hosts.
const (
	IconPlus  = "plus"
	IconMinus = "minus"
)

// Button variants.
const (
	VariantGhost  = "ghost"
	VariantDanger = "danger"
)

// Node is one element of the visual tree.
type Node struct {
	Kind        Kind
	ID          string
	Text        string
	Placeholder string
	Icon        string
	Variant     string
	Command     *Command
	Children    []Node
}

// Focusable reports whether a host can put keyboard focus on n.
func (n Node) Focusable() bool {
	return n.Kind == KindInput || (n.Kind == KindButton && n.Command != nil)
}

// Walk visits n and its descendants depth first, in display order.
func Walk(n Node, fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Controls returns the focusable nodes of the tree in display order.
func Controls(n Node) []Node {
	var out []Node
	Walk(n, func(c Node) {
		if c.Focusable() {
			out = append(out, c)
		}
	})
	return out
}

// Find returns the node with the given id.
func Find(n Node, id string) (Node, bool) {
	var (
		found Node
		ok    bool
	)
	Walk(n, func(c Node) {
		if !ok && c.ID == id {
			found, ok = c, true
		}
	})
	return found, ok
}
