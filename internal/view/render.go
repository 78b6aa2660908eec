package view

import "fmt"

// IDs of the fixed parts of the tree.
const (
	IDRoot  = "root"
	IDTitle = "title"
	IDEntry = "entry"
	IDInput = "input"
	IDAdd   = "add"
	IDItems = "items"
)

// Renderer turns state into a visual tree.
type Renderer struct {
	Title       string
	Placeholder string
}

// Render derives the tree for the given input value and items. It has no
// side effects; equal arguments give equal trees.
func (r Renderer) Render(input string, items []string) Node {
	submit := Submit()
	entry := Node{
		Kind: KindRow,
		ID:   IDEntry,
		Children: []Node{
			{Kind: KindInput, ID: IDInput, Text: input, Placeholder: r.Placeholder},
			{Kind: KindButton, ID: IDAdd, Text: "Add", Icon: IconPlus, Variant: VariantGhost, Command: &submit},
		},
	}

	rows := make([]Node, 0, len(items))
	for i, item := range items {
		rows = append(rows, ItemRow(i, item))
	}

	return Node{
		Kind: KindColumn,
		ID:   IDRoot,
		Children: []Node{
			{Kind: KindTitle, ID: IDTitle, Text: r.Title},
			entry,
			{Kind: KindColumn, ID: IDItems, Children: rows},
		},
	}
}

// ItemRow renders a single list row.
func ItemRow(index int, item string) Node {
	remove := Remove(item, index)
	return Node{
		Kind: KindRow,
		ID:   fmt.Sprintf("row-%d", index),
		Children: []Node{
			{Kind: KindLabel, ID: fmt.Sprintf("label-%d", index), Text: ItemLabel(index, item)},
			{
				Kind:    KindButton,
				ID:      fmt.Sprintf("remove-%d", index),
				Text:    "remove",
				Icon:    IconMinus,
				Variant: VariantDanger,
				Command: &remove,
			},
		},
	}
}

// ItemLabel is the text shown for the item at index.
func ItemLabel(index int, item string) string {
	return fmt.Sprintf("T-%d: %s", index, item)
}

// Rows returns the item rows of a tree produced by Render.
func Rows(root Node) []Node {
	items, ok := Find(root, IDItems)
	if !ok {
		return nil
	}
	return items.Children
}
