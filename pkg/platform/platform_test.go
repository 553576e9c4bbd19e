package platform_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/platformfs/pkg/platform"
)

func TestRootDirectories(t *testing.T) {
	env := newTestEnv(t)
	p := env.platform

	assert.Equal(t, "writable/", p.WritableDir())
	assert.Equal(t, "resources/", p.ResourcesDir())
	assert.Equal(t, "settings/", p.SettingsDir())

	p.SetWritableDirForTests("tmp/writable")
	p.SetResourceDir("tmp/resources/")
	p.SetSettingsDir("tmp/settings")

	assert.Equal(t, "tmp/writable/", p.WritableDir())
	assert.Equal(t, "tmp/resources/", p.ResourcesDir())
	assert.Equal(t, "tmp/settings/", p.SettingsDir())

	assert.Equal(t, "tmp/writable/World.mwm", p.WritablePathForFile("World.mwm"))
	assert.Equal(t, "tmp/resources/World.mwm", p.ResourcesPathForFile("World.mwm"))
	assert.Equal(t, "tmp/settings/settings.ini", p.SettingsPathForFile("settings.ini"))
}

func TestConfigAccessors(t *testing.T) {
	cfg := platform.DefaultConfig()
	cfg.MetaServerURL = "https://meta.example.com/"
	cfg.ResourcesMetaServerURL = "https://resources.example.com/"
	cfg.DefaultURLsJSON = `{"a": "b"}`
	p := platform.New(cfg, platform.WithLogger(platform.NewTestLogger(io.Discard, 0)))

	assert.Equal(t, "https://meta.example.com/", p.MetaServerURL())
	assert.Equal(t, "https://resources.example.com/", p.ResourcesMetaServerURL())
	assert.Equal(t, `{"a": "b"}`, p.DefaultURLsJSON())

	fonts := p.FontNames()
	assert.Equal(t, platform.DefaultFontNames, fonts)
	fonts[0] = "mutated.ttf"
	assert.Equal(t, "01_dejavusans.ttf", p.FontNames()[0])

	assert.GreaterOrEqual(t, p.CpuCores(), 1)
	assert.NotNil(t, p.FileSystem())
	assert.NotNil(t, p.Logger())
}

func TestRootDirectoriesConcurrentAccess(t *testing.T) {
	env := newTestEnv(t)
	p := env.platform
	env.WriteFile("resources/x.txt")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			p.SetSettingsDir("settings")
		}
	}()
	for i := 0; i < 200; i++ {
		path, err := p.ReadPathForFile("x.txt", "sr")
		assert.NoError(t, err)
		assert.Equal(t, "resources/x.txt", path)
	}
	<-done
}
