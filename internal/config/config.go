// Package config loads the todolist settings from defaults, TOML files,
// the environment and command-line flags, in that order of priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults.
const (
	DefaultTitle        = "TodoList"
	DefaultPlaceholder  = "Type..."
	DefaultTheme        = "classic"
	DefaultCharLimit    = 200
	DefaultRemovePolicy = "value"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// ErrInvalid is wrapped by every validation and flag parsing error.
var ErrInvalid = errors.New("invalid config")

// Config holds every setting.
type Config struct {
	Title        string `toml:"title"`
	Placeholder  string `toml:"placeholder"`
	Theme        string `toml:"theme"`
	CharLimit    int    `toml:"char_limit"`
	RemovePolicy string `toml:"remove_policy"`
	LogLevel     string `toml:"log_level"`
	LogFormat    string `toml:"log_format"`
	LogFile      string `toml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Title:        DefaultTitle,
		Placeholder:  DefaultPlaceholder,
		Theme:        DefaultTheme,
		CharLimit:    DefaultCharLimit,
		RemovePolicy: DefaultRemovePolicy,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}

// Load builds the config:
// 1. Defaults
// 2. User config file (<user config dir>/todolist/config.toml)
// 3. The file named by --config, if any
// 4. TODOLIST_* environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()

	var flags flagValues
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: parsing flags: %w", ErrInvalid, err)
	}

	if p := UserConfigFile(); p != "" {
		if err := loadFile(cfg, p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}
	if flags.configFile != "" {
		if err := loadFile(cfg, flags.configFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", flags.configFile, err)
		}
	}

	LoadEnv(cfg, os.LookupEnv)
	flags.apply(cfg, fs)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UserConfigFile returns the per-user config path, or "" when the platform
// has no user config directory.
func UserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todolist", "config.toml")
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Decode(cfg, f)
}

// Decode overlays TOML from r onto cfg.
func Decode(cfg *Config, r io.Reader) error {
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}
	return nil
}

// LoadEnv overlays TODOLIST_* variables onto cfg.
func LoadEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("TODOLIST_TITLE", &cfg.Title)
	str("TODOLIST_PLACEHOLDER", &cfg.Placeholder)
	str("TODOLIST_THEME", &cfg.Theme)
	str("TODOLIST_REMOVE_POLICY", &cfg.RemovePolicy)
	str("TODOLIST_LOG_LEVEL", &cfg.LogLevel)
	str("TODOLIST_LOG_FORMAT", &cfg.LogFormat)
	str("TODOLIST_LOG_FILE", &cfg.LogFile)
	if v, ok := lookup("TODOLIST_CHAR_LIMIT"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.CharLimit = n
		}
	}
}

// Validate checks enumerated values and limits.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	switch c.RemovePolicy {
	case "value", "row":
	default:
		return fmt.Errorf("%w: unknown remove_policy %q", ErrInvalid, c.RemovePolicy)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalid, c.LogFormat)
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("%w: char_limit must be >= 0, got %d", ErrInvalid, c.CharLimit)
	}
	return nil
}

// WriteTOML prints cfg as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

type flagValues struct {
	configFile   string
	title        string
	placeholder  string
	theme        string
	charLimit    int
	removePolicy string
	logLevel     string
	logFormat    string
	logFile      string
}

func (f *flagValues) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configFile, "config", "", "path to a TOML config file")
	fs.StringVar(&f.title, "title", "", "window title")
	fs.StringVar(&f.placeholder, "placeholder", "", "input placeholder text")
	fs.StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	fs.IntVar(&f.charLimit, "char-limit", 0, "maximum input length (0 = unlimited)")
	fs.StringVar(&f.removePolicy, "remove-policy", "", "remove all equal items (value) or only the clicked row (row)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json, logfmt")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file")
}

// apply copies only the flags that were set on the command line.
func (f *flagValues) apply(cfg *Config, fs *flag.FlagSet) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			cfg.Title = f.title
		case "placeholder":
			cfg.Placeholder = f.placeholder
		case "theme":
			cfg.Theme = f.theme
		case "char-limit":
			cfg.CharLimit = f.charLimit
		case "remove-policy":
			cfg.RemovePolicy = f.removePolicy
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "log-format":
			cfg.LogFormat = f.logFormat
		case "log-file":
			cfg.LogFile = f.logFile
		}
	})
}
