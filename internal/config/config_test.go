package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENROLLKIOSK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "buildings.txt", cfg.Catalog.BuildingsPath)
	require.Equal(t, "user_input.txt", cfg.Log.RecordPath)
	require.Equal(t, "", cfg.Log.AppPath)
	require.Equal(t, "/usr/bin/say", cfg.Announce.Command)
	require.Equal(t, []string{"{first}", "{last}"}, cfg.Announce.Args)
	require.Equal(t, "2006-01-02 15:04:05", cfg.UI.ClockFormat)
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[catalog]
buildings_path = "/etc/enrollkiosk/buildings.txt"

[log]
record_path = "/var/log/enrollments.txt"

[announce]
command = "espeak"
args = ["{first} {last}"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("ENROLLKIOSK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/etc/enrollkiosk/buildings.txt", cfg.Catalog.BuildingsPath)
	require.Equal(t, "/var/log/enrollments.txt", cfg.Log.RecordPath)
	require.Equal(t, "espeak", cfg.Announce.Command)
	require.Equal(t, []string{"{first} {last}"}, cfg.Announce.Args)
	// untouched keys keep their defaults
	require.Equal(t, "2006-01-02 15:04:05", cfg.UI.ClockFormat)
}

func TestEnvOverridesFileAndDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nrecord_path = \"from-file.txt\"\n"), 0o644))
	t.Setenv("ENROLLKIOSK_CONFIG", path)
	t.Setenv("ENROLLKIOSK_LOG_RECORD_PATH", "from-env.txt")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-env.txt", cfg.Log.RecordPath)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("ENROLLKIOSK_CONFIG", path)

	want := Config{
		Catalog:  CatalogConfig{BuildingsPath: "b.txt"},
		Log:      LogConfig{RecordPath: "r.txt", AppPath: "a.log"},
		Announce: AnnounceConfig{Command: "say", Args: []string{"{first}"}},
		UI:       UIConfig{ClockFormat: "2006-01-02"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
