package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/app"
	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/view"
)

type fakeHost struct {
	run func(a *app.App) error
}

func (h fakeHost) Run(_ context.Context, a *app.App) error { return h.run(a) }

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{
		"TODOLIST_TITLE", "TODOLIST_PLACEHOLDER", "TODOLIST_THEME", "TODOLIST_REMOVE_POLICY",
		"TODOLIST_LOG_LEVEL", "TODOLIST_LOG_FORMAT", "TODOLIST_LOG_FILE", "TODOLIST_CHAR_LIMIT",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	if code := Run([]string{"help"}, Options{Stdout: &out}); code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Subcommands:") {
		t.Fatalf("help = %q", out.String())
	}
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if code := Run([]string{"version"}, Options{Name: "todolist", Stdout: &out}); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if got := out.String(); got != "todolist "+Version+"\n" {
		t.Fatalf("version = %q", got)
	}
}

func TestRun_Config(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	code := Run([]string{"config", "-title", "Groceries", "-remove-policy", "row"}, Options{Stdout: &out})
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	for _, want := range []string{`title = "Groceries"`, `remove_policy = "row"`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("config output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_UsageErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown subcommand", []string{"frobnicate"}},
		{"unknown flag", []string{"run", "-nope"}},
		{"invalid theme", []string{"-theme", "solarized"}},
		{"stray argument", []string{"run", "extra"}},
		{"missing config file", []string{"-config", "/does/not/exist.toml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			opt := Options{
				Stdout: &bytes.Buffer{},
				NewHost: func(*config.Config, *log.Logger) Host {
					called = true
					return fakeHost{run: func(*app.App) error { return nil }}
				},
			}
			if code := Run(tt.args, opt); code != 2 {
				t.Errorf("exit = %d, want 2", code)
			}
			if called {
				t.Error("host started despite usage error")
			}
		})
	}
}

func TestRun_DefaultsToRun(t *testing.T) {
	dir := isolate(t)
	logFile := filepath.Join(dir, "todolist.log")

	var (
		gotCfg   *config.Config
		gotItems []string
	)
	opt := Options{
		Stdout: &bytes.Buffer{},
		NewHost: func(cfg *config.Config, _ *log.Logger) Host {
			gotCfg = cfg
			return fakeHost{run: func(a *app.App) error {
				a.Dispatch(view.Edit("x"))
				a.Store().Input.Submit()
				a.Dispatch(view.Edit("x"))
				a.Dispatch(view.Submit())
				a.Dispatch(view.Remove("x", 1))
				gotItems = a.Store().Items.Snapshot()
				return nil
			}}
		},
	}

	code := Run([]string{"-remove-policy", "row", "-log-file", logFile, "-log-level", "debug"}, opt)
	if code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	if gotCfg == nil || gotCfg.RemovePolicy != "row" {
		t.Fatalf("host config = %+v", gotCfg)
	}
	if want := []string{"x"}; !reflect.DeepEqual(gotItems, want) {
		t.Fatalf("items = %q, want %q", gotItems, want)
	}
	b, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"starting", "item added", "row removed", "stopped"} {
		if !strings.Contains(string(b), want) {
			t.Errorf("log missing %q:\n%s", want, b)
		}
	}
}

func TestRun_HostError(t *testing.T) {
	isolate(t)
	opt := Options{
		Stdout: &bytes.Buffer{},
		NewHost: func(*config.Config, *log.Logger) Host {
			return fakeHost{run: func(*app.App) error { return errors.New("no display") }}
		},
	}
	if code := Run(nil, opt); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
}

func TestRun_FlagHelp(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{{"-h"}, {"config", "-h"}} {
		var out bytes.Buffer
		if code := Run(args, Options{Name: "todolist", Stdout: &out}); code != 0 {
			t.Fatalf("Run(%v) exit = %d, want 0", args, code)
		}
		if !strings.Contains(out.String(), "Usage:\n  todolist [subcommand]") {
			t.Errorf("Run(%v) help = %q", args, out.String())
		}
	}
}

func TestIsolate_ClearsAllEnv(t *testing.T) {
	t.Setenv("TODOLIST_CHAR_LIMIT", "-1")
	t.Setenv("TODOLIST_LOG_FORMAT", "xml")
	t.Setenv("TODOLIST_PLACEHOLDER", "leaked")
	isolate(t)

	var out bytes.Buffer
	if code := Run([]string{"config"}, Options{Stdout: &out}); code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	for _, want := range []string{"char_limit = 200", `log_format = "text"`, `placeholder = "Type..."`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("config output missing %q:\n%s", want, out.String())
		}
	}
}
