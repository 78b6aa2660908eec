package gui

import (
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Makepad-fr/todolist/internal/app"
	"github.com/Makepad-fr/todolist/internal/view"
)

type icons struct {
	plus, minus fyne.Resource
}

func (i icons) named(name string) fyne.Resource {
	if name == view.IconPlus {
		return i.plus
	}
	return i.minus
}

type rowWidgets struct {
	label  *widget.Label
	remove *widget.Button
}

// windowView mirrors the visual tree into fyne widgets. It is rebuilt from
// the tree on every invalidation.
type windowView struct {
	app       *app.App
	icons     icons
	charLimit int

	title  *widget.Label
	entry  *widget.Entry
	add    *widget.Button
	rows   *fyne.Container
	rowSet []rowWidgets
	root   fyne.CanvasObject

	cancel func()
}

func newWindowView(a *app.App, ic icons, charLimit int) *windowView {
	v := &windowView{app: a, icons: ic, charLimit: charLimit}

	v.title = widget.NewLabel("")
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.title.Alignment = fyne.TextAlignCenter

	v.entry = widget.NewEntry()
	v.entry.OnChanged = func(s string) {
		if limited := limitRunes(s, v.charLimit); limited != s {
			// SetText calls OnChanged again with the cut value
			v.entry.SetText(limited)
			s = limited
		}
		if s != a.Store().Input.Get() {
			a.Dispatch(view.Edit(s))
		}
	}
	v.entry.OnSubmitted = func(string) { a.Store().Input.Submit() }

	v.add = widget.NewButtonWithIcon("", ic.plus, nil)

	v.rows = container.NewVBox()
	top := container.NewVBox(v.title, container.NewBorder(nil, nil, nil, v.add, v.entry))
	v.root = container.NewPadded(container.NewBorder(top, nil, nil, nil, container.NewVScroll(v.rows)))

	v.cancel = a.Subscribe(v.sync)
	v.sync()
	return v
}

func (v *windowView) close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *windowView) sync() {
	tree := v.app.Tree()

	if title, ok := view.Find(tree, view.IDTitle); ok {
		v.title.SetText(title.Text)
	}
	if input, ok := view.Find(tree, view.IDInput); ok {
		if v.entry.Text != input.Text {
			v.entry.SetText(input.Text)
		}
		v.entry.SetPlaceHolder(input.Placeholder)
	}
	if add, ok := view.Find(tree, view.IDAdd); ok && add.Command != nil {
		cmd := *add.Command
		v.add.SetText(add.Text)
		v.add.Importance = importance(add.Variant)
		v.add.OnTapped = func() { v.app.Dispatch(cmd) }
		v.add.Refresh()
	}

	rows := view.Rows(tree)
	v.rowSet = v.rowSet[:0]
	objs := make([]fyne.CanvasObject, 0, len(rows))
	for _, r := range rows {
		rw := v.row(r)
		v.rowSet = append(v.rowSet, rw)
		objs = append(objs, container.NewBorder(nil, nil, nil, rw.remove, rw.label))
	}
	v.rows.Objects = objs
	v.rows.Refresh()
}

func (v *windowView) row(n view.Node) rowWidgets {
	label, btn := n.Children[0], n.Children[1]
	cmd := *btn.Command
	b := widget.NewButtonWithIcon("", v.icons.named(btn.Icon), func() { v.app.Dispatch(cmd) })
	b.Importance = importance(btn.Variant)
	return rowWidgets{label: widget.NewLabel(label.Text), remove: b}
}

// importance maps a button variant to its fyne importance.
func importance(variant string) widget.Importance {
	switch variant {
	case view.VariantGhost:
		return widget.LowImportance
	case view.VariantDanger:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

// limitRunes cuts s to its first n runes. n <= 0 means no limit.
func limitRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
