// Package gui hosts the todo list in a desktop window with fyne.
package gui

import (
	"context"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/app"
	"github.com/Makepad-fr/todolist/internal/assets"
)

// DefaultAppID is the fyne application id.
const DefaultAppID = "fr.makepad.todolist"

// Host runs the desktop frontend.
type Host struct {
	AppID string
	Title string
	// CharLimit caps the input length in runes. 0 means unlimited.
	CharLimit int
	Logger    *log.Logger
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// A missing icon is a startup failure.
func (h Host) Run(ctx context.Context, a *app.App) error {
	logger := h.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	appIcon, err := resource(assets.AppIcon)
	if err != nil {
		return err
	}
	plus, err := resource(assets.PlusIcon)
	if err != nil {
		return err
	}
	minus, err := resource(assets.MinusIcon)
	if err != nil {
		return err
	}

	id := h.AppID
	if id == "" {
		id = DefaultAppID
	}
	fa := fyneapp.NewWithID(id)
	fa.SetIcon(appIcon)

	w := fa.NewWindow(h.Title)
	v := newWindowView(a, icons{plus: theme.NewThemedResource(plus), minus: theme.NewThemedResource(minus)}, h.CharLimit)
	defer v.close()
	w.SetContent(v.root)
	w.Resize(fyne.NewSize(420, 480))
	w.Canvas().Focus(v.entry)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			logger.Info("shutting down window", "reason", ctx.Err())
			fyne.Do(fa.Quit)
		case <-done:
		}
	}()

	logger.Info("window opened", "title", h.Title)
	w.ShowAndRun()
	return nil
}

func resource(path string) (fyne.Resource, error) {
	b, err := assets.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load icon: %w", err)
	}
	return fyne.NewStaticResource(path, b), nil
}
