package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/eventbus"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	svc, err := NewConfigService(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 5, cfg.RowsPerPage)
	assert.True(t, strings.HasPrefix(cfg.Log.Filename, home), "log file is expanded under HOME")
}

func TestLoadFromPath_Missing(t *testing.T) {
	svc, err := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	_, err = svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ParsesAndNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_feature = "  orders "
rows_per_page = 7

[mock]
seed = 9
records_per_feature = -3

[ui]
confirm_delete = false

[log]
level = "debug"
filename = "~/logs/bo.log"
`), 0o600))

	svc, err := NewConfigService(path)
	require.NoError(t, err)
	cfg, err := svc.Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version, "missing version defaults to current")
	assert.Equal(t, "orders", cfg.DefaultFeature)
	assert.Equal(t, 5, cfg.RowsPerPage, "invalid page size is coerced")
	assert.Equal(t, int64(9), cfg.Mock.Seed)
	assert.Equal(t, 0, cfg.Mock.RecordsPerFeature)
	assert.Equal(t, 400, cfg.Mock.FoodLatencyMS, "omitted keys keep defaults")
	assert.False(t, cfg.UISettings.ConfirmDelete)
	assert.Equal(t, 3, cfg.UISettings.ToastSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, "logs", "bo.log"), cfg.Log.Filename)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows_per_page = [oops"), 0o600))

	svc, err := NewConfigService(path)
	require.NoError(t, err)
	_, err = svc.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	bus := eventbus.New()
	defer bus.Close()

	saved := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { saved <- e })

	svc, err := NewConfigServiceWithBus(path, bus)
	require.NoError(t, err)
	assert.Equal(t, path, svc.Path())

	cfg := DefaultConfig()
	cfg.DefaultFeature = "invoices"
	cfg.RowsPerPage = 25
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_feature")
	assert.Contains(t, string(data), "invoices")
	assert.Contains(t, string(data), "[mock]")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	select {
	case e := <-saved:
		assert.Equal(t, path, e.(eventbus.ConfigSavedEvent).Path)
	case <-time.After(2 * time.Second):
		t.Fatal("ConfigSaved was not published")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/.config/backoffice")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "backoffice"), got)

	_, err = expandPath("   ")
	require.Error(t, err)
}
