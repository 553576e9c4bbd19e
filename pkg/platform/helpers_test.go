package platform_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/platformfs/pkg/platform"
	"github.com/arthur-debert/platformfs/pkg/platform/filesystem"
)

type testEnv struct {
	*filesystem.TestHelper
	platform *platform.Platform
	logs     *bytes.Buffer
}

// newTestEnv builds a Platform on an in-memory filesystem with roots
// writable/, resources/ and settings/.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	th := filesystem.NewTestHelper(t)
	th.MkdirAll("writable", "resources", "settings")

	cfg := platform.DefaultConfig()
	cfg.WritableDir = "writable"
	cfg.ResourcesDir = "resources"
	cfg.SettingsDir = "settings"

	logs := &bytes.Buffer{}
	p := platform.New(cfg,
		platform.WithFileSystem(th.FileSystem()),
		platform.WithLogger(platform.NewTestLogger(logs, 2)),
		platform.WithMetrics(platform.NewMetrics(nil)),
	)
	return &testEnv{TestHelper: th, platform: p, logs: logs}
}
