package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/todolist/internal/ui"
	"github.com/Makepad-fr/todolist/internal/view"
)

const minRowWidth = 30

// region is the screen rectangle of a control, inclusive of x0/y0 and
// exclusive of x1/y1.
type region struct {
	id             string
	x0, y0, x1, y1 int
	cmd            *view.Command
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// painter draws a visual tree with a theme. The input box is drawn by the
// caller (it owns the cursor) and passed in pre-rendered.
type painter struct {
	theme   ui.Theme
	focusID string
}

// paint returns the framed screen and the hit regions of its controls in
// screen coordinates.
func (p painter) paint(root view.Node, inputView string) (string, []region) {
	var (
		lines   []string
		regions []region
	)

	title, _ := view.Find(root, view.IDTitle)
	lines = append(lines, p.theme.Title.Render(printable(title.Text)), "")

	// input box with the Add button on its middle line
	boxStyle := p.theme.InputBox
	if p.focusID == view.IDInput {
		boxStyle = boxStyle.BorderForeground(p.theme.Accent.GetForeground())
	}
	box := boxStyle.Render(inputView)
	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)
	add, _ := view.Find(root, view.IDAdd)
	addText := p.button(add, p.theme.Accent, p.theme.SymPlus+" "+add.Text)
	entry := lipgloss.JoinHorizontal(lipgloss.Center, box, " ", addText)
	top := len(lines)
	regions = append(regions,
		region{id: view.IDInput, x0: 0, y0: top, x1: boxW, y1: top + boxH},
		region{id: view.IDAdd, x0: boxW + 1, y0: top + boxH/2, x1: boxW + 1 + lipgloss.Width(addText), y1: top + boxH/2 + 1, cmd: add.Command},
	)
	lines = append(lines, strings.Split(entry, "\n")...)
	lines = append(lines, "")

	rows := view.Rows(root)
	if len(rows) == 0 {
		lines = append(lines, p.theme.Muted.Render("no items"))
	}
	labelW := minRowWidth
	for _, r := range rows {
		if w := lipgloss.Width(printable(r.Children[0].Text)); w > labelW {
			labelW = w
		}
	}
	for _, r := range rows {
		label, btn := r.Children[0], r.Children[1]
		text := p.theme.Label.Width(labelW).Render(printable(label.Text))
		btnText := p.button(btn, p.theme.Danger, p.theme.SymMinus+" "+btn.Text)
		y := len(lines)
		regions = append(regions, region{id: btn.ID, x0: labelW + 1, y0: y, x1: labelW + 1 + lipgloss.Width(btnText), y1: y + 1, cmd: btn.Command})
		lines = append(lines, text+" "+btnText)
	}

	panel := p.theme.Panel
	dx := panel.GetBorderLeftSize() + panel.GetPaddingLeft()
	dy := panel.GetBorderTopSize() + panel.GetPaddingTop()
	for i := range regions {
		regions[i].x0 += dx
		regions[i].x1 += dx
		regions[i].y0 += dy
		regions[i].y1 += dy
	}
	return panel.Render(strings.Join(lines, "\n")), regions
}

func (p painter) button(n view.Node, base lipgloss.Style, text string) string {
	return p.style(n.ID, base).Render("[" + text + "]")
}

func (p painter) style(id string, base lipgloss.Style) lipgloss.Style {
	if id == p.focusID {
		return base.Inherit(p.theme.Focused)
	}
	return base
}

// printable replaces control characters so any item keeps to one line.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '�'
		}
		return r
	}, s)
}
