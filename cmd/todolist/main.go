package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/cli"
	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/tui"
)

func main() {
	// Hand the args to the CLI runner with the terminal frontend.
	code := cli.Run(os.Args[1:], cli.Options{
		Name: "todolist",
		NewHost: func(cfg *config.Config, _ *log.Logger) cli.Host {
			return tui.Host{Options: tui.Options{Theme: cfg.Theme, CharLimit: cfg.CharLimit}}
		},
	})
	os.Exit(code)
}
