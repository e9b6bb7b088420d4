package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	be.Equal(t, cfg.Entry, "main.mc")
	be.Equal(t, cfg.LogLevel, "warning")
	be.True(t, cfg.Fmt.Annotate)
	be.Equal(t, cfg.Watch.DebounceMS, 250)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	be.Err(t, err, nil)
	be.Equal(t, cfg, Default())
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
entry = "app.mc"
log_level = "debug"

[fmt]
annotate = false

[watch]
debounce_ms = 500
`)
	be.Err(t, os.WriteFile(filepath.Join(dir, FileName), data, 0o644), nil)

	cfg, err := Load(dir)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Entry, "app.mc")
	be.Equal(t, cfg.LogLevel, "debug")
	be.True(t, !cfg.Fmt.Annotate)
	be.Equal(t, cfg.Watch.DebounceMS, 500)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	be.Err(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`entry = "app.mc"`), 0o644), nil)

	cfg, err := Load(dir)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Entry, "app.mc")
	be.Equal(t, cfg.LogLevel, "warning")
	be.Equal(t, cfg.Watch.DebounceMS, 250)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	be.Err(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`entry = [`), 0o644), nil)

	_, err := Load(dir)
	be.True(t, err != nil)
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	be.Err(t, os.WriteFile(filepath.Join(root, FileName), []byte(""), 0o644), nil)

	nested := filepath.Join(root, "src", "deep")
	be.Err(t, os.MkdirAll(nested, 0o755), nil)

	got, err := FindProjectRoot(nested)
	be.Err(t, err, nil)
	be.Equal(t, got, root)
}

func TestFindProjectRootNotFound(t *testing.T) {
	_, err := FindProjectRoot(t.TempDir())
	be.True(t, err != nil)
}
