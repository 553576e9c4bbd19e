package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/platformfs/pkg/platform"
)

// clearEnv isolates a test from PLATFORM_* variables of the host.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"WRITABLE_DIR", "RESOURCES_DIR", "SETTINGS_DIR",
		"METASERVER_URL", "RESOURCES_METASERVER_URL", "DEFAULT_URLS_JSON",
		"FONT_NAMES", "LOG_LEVEL",
	} {
		for _, name := range []string{key, platform.EnvPrefix + "_" + key} {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := platform.DefaultConfig()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, platform.DefaultFontNames, cfg.FontNames)

	cfg.FontNames[0] = "changed.ttf"
	assert.Equal(t, "01_dejavusans.ttf", platform.DefaultFontNames[0])
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLATFORM_WRITABLE_DIR", "/var/lib/maps")
	t.Setenv("PLATFORM_METASERVER_URL", "https://meta.example.com/")
	t.Setenv("PLATFORM_FONT_NAMES", "a.ttf,b.ttf")

	cfg, err := platform.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/maps", cfg.WritableDir)
	assert.Equal(t, "https://meta.example.com/", cfg.MetaServerURL)
	assert.Equal(t, []string{"a.ttf", "b.ttf"}, cfg.FontNames)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "", cfg.ResourcesDir)
}

func TestParseConfig(t *testing.T) {
	cfg, err := platform.ParseConfig([]byte(`
writable_dir: /data/writable
resources_dir: /data/resources
settings_dir: /data/settings
default_urls_json: '{"search": "https://search.example.com"}'
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, "/data/writable", cfg.WritableDir)
	assert.Equal(t, "/data/resources", cfg.ResourcesDir)
	assert.Equal(t, "/data/settings", cfg.SettingsDir)
	assert.Equal(t, `{"search": "https://search.example.com"}`, cfg.DefaultURLsJSON)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, platform.DefaultFontNames, cfg.FontNames)

	_, err = platform.ParseConfig([]byte("writable_dir: [unterminated"))
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "platform.yaml")
	require.NoError(t, os.WriteFile(path, []byte("writable_dir: /from/file\nsettings_dir: /from/file/settings\n"), 0644))
	t.Setenv("PLATFORM_SETTINGS_DIR", "/from/env")

	cfg, err := platform.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.WritableDir)
	assert.Equal(t, "/from/env", cfg.SettingsDir)

	_, err = platform.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
