package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	envPrefix    = "JASKCALC"
	envConfig    = "JASKCALC_CONFIG"
	defaultTheme = "mocha"
	defaultLimit = 50
	maxLimit     = 500
)

// Themes lists the accepted ui.theme values.
var Themes = []string{"mocha", "latte"}

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Tape TapeConfig `mapstructure:"tape"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme    string `mapstructure:"theme"`
	ShowTape bool   `mapstructure:"show_tape"`
}

// TapeConfig controls the evaluation tape database.
type TapeConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Limit   int    `mapstructure:"limit"`
}

// Loader reads configuration and can watch the config file for edits.
type Loader struct {
	v *viper.Viper
}

// NewLoader prepares a viper instance with defaults, file location and env overrides.
// Env var overrides use prefix JASKCALC_, e.g. JASKCALC_UI_THEME.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault("ui.theme", defaultTheme)
	v.SetDefault("ui.show_tape", false)
	v.SetDefault("tape.enabled", true)
	v.SetDefault("tape.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskcalc", "tape.db"))
	v.SetDefault("tape.limit", defaultLimit)

	v.SetConfigType("toml")
	if p := os.Getenv(envConfig); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// Load reads the config file if present and decodes the result.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return l.decode()
}

// File returns the config file in use, or "" when running on defaults.
func (l *Loader) File() string { return l.v.ConfigFileUsed() }

// Watch calls fn with the re-read config each time the file is written.
// It does nothing when no config file was found.
func (l *Loader) Watch(fn func(Config, error)) {
	if l.File() == "" {
		return
	}
	if _, err := os.Stat(l.File()); err != nil {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fn(l.decode())
	})
	l.v.WatchConfig()
}

func (l *Loader) decode() (Config, error) {
	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// Load reads configuration from file and env.
func Load() (Config, error) {
	return NewLoader().Load()
}

// Save writes cfg to the config file, creating its directory if needed.
func Save(cfg Config) error {
	path := os.Getenv(envConfig)
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.show_tape", cfg.UI.ShowTape)
	v.Set("tape.enabled", cfg.Tape.Enabled)
	v.Set("tape.path", cfg.Tape.Path)
	v.Set("tape.limit", cfg.Tape.Limit)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

func normalize(c Config) Config {
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if !ValidTheme(c.UI.Theme) {
		c.UI.Theme = defaultTheme
	}
	if c.Tape.Limit < 1 || c.Tape.Limit > maxLimit {
		c.Tape.Limit = defaultLimit
	}
	c.Tape.Path = strings.TrimSpace(c.Tape.Path)
	return c
}
