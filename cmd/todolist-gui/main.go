package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/cli"
	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/gui"
)

func main() {
	code := cli.Run(os.Args[1:], cli.Options{
		Name: "todolist-gui",
		NewHost: func(cfg *config.Config, logger *log.Logger) cli.Host {
			return gui.Host{AppID: gui.DefaultAppID, Title: cfg.Title, CharLimit: cfg.CharLimit, Logger: logger}
		},
	})
	os.Exit(code)
}
