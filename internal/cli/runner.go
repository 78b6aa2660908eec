package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/app"
	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/logging"
	"github.com/Makepad-fr/todolist/internal/state"
	"github.com/Makepad-fr/todolist/internal/ui"
)

// Version is set at build time.
var Version = "dev"

// Host displays an App until the user closes it.
type Host interface {
	Run(ctx context.Context, a *app.App) error
}

// Options select the frontend and output streams.
type Options struct {
	Name    string
	NewHost func(cfg *config.Config, logger *log.Logger) Host
	Stdout  io.Writer
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Name == "" {
		opt.Name = "todolist"
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}

	cmd, a := "run", args
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout, opt.Name)
		return 0

	case "version":
		fmt.Fprintf(opt.Stdout, "%s %s\n", opt.Name, Version)
		return 0

	case "config":
		cfg, code := loadConfig(opt, "config", a)
		if cfg == nil {
			return code
		}
		if err := cfg.WriteTOML(opt.Stdout); err != nil {
			ui.Fail("config: " + err.Error())
			return 1
		}
		return 0

	case "run":
		cfg, code := loadConfig(opt, "run", a)
		if cfg == nil {
			return code
		}
		return doRun(cfg, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp(os.Stderr, opt.Name)
	return 2
}

func PrintHelp(w io.Writer, name string) {
	fmt.Fprintf(w, `%[1]s - a tiny todo list

Usage:
  %[1]s [subcommand] [flags]

Subcommands:
  run        Open the todo list (default)
  config     Print the effective configuration as TOML
  version    Print the version

Flags:
  -config <file>          TOML config file
  -title <text>           Title shown above the list
  -placeholder <text>     Input placeholder
  -theme <name>           classic, neon or mono
  -char-limit <n>         Maximum input length (0 = unlimited)
  -remove-policy <p>      value: remove every equal item, row: only the clicked row
  -log-level <level>      debug, info, warn, error
  -log-format <format>    text, json, logfmt
  -log-file <file>        Write logs to file (default: discard)

Examples:
  %[1]s
  %[1]s -theme neon -title Groceries
  %[1]s config -remove-policy row
`, name)
}

// loadConfig returns a nil config and the exit code when loading fails.
func loadConfig(opt Options, sub string, args []string) (*config.Config, int) {
	fs := flag.NewFlagSet(opt.Name+" "+sub, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := config.Load(fs, args)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		PrintHelp(opt.Stdout, opt.Name)
		return nil, 0
	case errors.Is(err, config.ErrInvalid), errors.Is(err, os.ErrNotExist):
		ui.Fail(err.Error())
		return nil, 2
	default:
		ui.Fail(err.Error())
		return nil, 1
	}
	if rest := fs.Args(); len(rest) > 0 {
		ui.Fail(fmt.Sprintf("unexpected arguments: %v", rest))
		return nil, 2
	}
	return cfg, 0
}

func doRun(cfg *config.Config, opt Options) int {
	if opt.NewHost == nil {
		ui.Fail("no frontend configured")
		return 1
	}
	logger, closeLog, err := logging.Open(cfg.LogFile, logging.Options{
		Level:           logging.ParseLevel(cfg.LogLevel),
		Formatter:       logging.ParseFormatter(cfg.LogFormat),
		ReportTimestamp: true,
		Prefix:          opt.Name,
	})
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer func() {
		if err := closeLog(); err != nil {
			ui.Fail("log: " + err.Error())
		}
	}()

	policy, err := app.ParseRemovePolicy(cfg.RemovePolicy)
	if err != nil {
		ui.Fail(err.Error())
		return 2
	}
	a := app.New(state.New(), app.Options{
		Title:       cfg.Title,
		Placeholder: cfg.Placeholder,
		Policy:      policy,
		Logger:      logger,
	})
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "version", Version, "theme", cfg.Theme, "remove_policy", policy)
	if err := opt.NewHost(cfg, logger).Run(ctx, a); err != nil {
		logger.Error("frontend failed", "err", err)
		ui.Fail("run: " + err.Error())
		return 1
	}
	logger.Info("stopped", "items", a.Store().Items.Len())
	return 0
}
