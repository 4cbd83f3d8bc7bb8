package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.toml")
	t.Setenv(envConfig, path)
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "mocha", cfg.UI.Theme)
	require.False(t, cfg.UI.ShowTape)
	require.True(t, cfg.Tape.Enabled)
	require.Equal(t, 50, cfg.Tape.Limit)
	require.Equal(t, filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskcalc", "tape.db"), cfg.Tape.Path)
}

func TestLoadFileNormalizes(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
theme = "LATTE"
show_tape = true

[tape]
enabled = false
limit = 9999
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "latte", cfg.UI.Theme)
	require.True(t, cfg.UI.ShowTape)
	require.False(t, cfg.Tape.Enabled)
	require.Equal(t, 50, cfg.Tape.Limit)
}

func TestLoadUnknownThemeFallsBack(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "mocha", cfg.UI.Theme)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("JASKCALC_UI_THEME", "latte")
	t.Setenv("JASKCALC_TAPE_LIMIT", "12")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "latte", cfg.UI.Theme)
	require.Equal(t, 12, cfg.Tape.Limit)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.WriteFile(path, []byte("[ui\ntheme ="), 0o644))

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := isolate(t)
	in := Config{
		UI:   UIConfig{Theme: "latte", ShowTape: true},
		Tape: TapeConfig{Enabled: true, Path: "/tmp/tape.db", Limit: 20},
	}
	require.NoError(t, Save(in))
	require.FileExists(t, path)

	out, err := Load()
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestWatchReportsEdits(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"mocha\"\n"), 0o644))

	l := NewLoader()
	_, err := l.Load()
	require.NoError(t, err)

	changes := make(chan Config, 16)
	l.Watch(func(c Config, err error) {
		if err == nil {
			changes <- c
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"latte\"\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.UI.Theme == "latte" {
				return
			}
		case <-deadline:
			t.Fatal("no config change observed")
		}
	}
}
