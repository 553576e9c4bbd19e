// Package testutil holds helpers for tests that run a Platform against the
// real filesystem.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/platformfs/pkg/platform"
)

// RealFSTestHelper owns a temporary tree with writable, resources and
// settings roots and a Platform configured on them.
type RealFSTestHelper struct {
	t        *testing.T
	tempDir  string
	platform *platform.Platform
	logs     *bytes.Buffer
}

// NewRealFSTestHelper creates the roots below t.TempDir().
// Tests are skipped on Windows.
func NewRealFSTestHelper(t *testing.T) *RealFSTestHelper {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("real filesystem tests run on unix only")
	}

	tempDir := t.TempDir()
	cfg := platform.DefaultConfig()
	cfg.WritableDir = filepath.Join(tempDir, "writable")
	cfg.ResourcesDir = filepath.Join(tempDir, "resources")
	cfg.SettingsDir = filepath.Join(tempDir, "settings")
	for _, dir := range []string{cfg.WritableDir, cfg.ResourcesDir, cfg.SettingsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	logs := &bytes.Buffer{}
	p := platform.New(cfg, platform.WithLogger(platform.NewTestLogger(logs, 2)))

	return &RealFSTestHelper{
		t:        t,
		tempDir:  tempDir,
		platform: p,
		logs:     logs,
	}
}

// Platform returns the platform under test
func (h *RealFSTestHelper) Platform() *platform.Platform {
	return h.platform
}

// TempDir returns the temporary directory path
func (h *RealFSTestHelper) TempDir() string {
	return h.tempDir
}

// Logs returns what the platform has logged so far
func (h *RealFSTestHelper) Logs() string {
	return h.logs.String()
}

// Path returns rel inside the temporary directory
func (h *RealFSTestHelper) Path(rel string) string {
	return filepath.Join(h.tempDir, filepath.FromSlash(rel))
}

// WriteFile creates files (and their parents) under the temporary directory
func (h *RealFSTestHelper) WriteFile(rels ...string) {
	h.t.Helper()
	for _, rel := range rels {
		full := h.Path(rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			h.t.Fatalf("Failed to create parent of %s: %v", full, err)
		}
		if err := os.WriteFile(full, []byte(rel), 0644); err != nil {
			h.t.Fatalf("Failed to write file %s: %v", full, err)
		}
	}
}

// MkdirAll creates directories under the temporary directory
func (h *RealFSTestHelper) MkdirAll(rels ...string) {
	h.t.Helper()
	for _, rel := range rels {
		if err := os.MkdirAll(h.Path(rel), 0755); err != nil {
			h.t.Fatalf("Failed to create directory %s: %v", rel, err)
		}
	}
}

// Chmod changes a mode and restores 0755 when the test ends
func (h *RealFSTestHelper) Chmod(rel string, mode os.FileMode) {
	h.t.Helper()
	full := h.Path(rel)
	if err := os.Chmod(full, mode); err != nil {
		h.t.Fatalf("Failed to chmod %s: %v", full, err)
	}
	h.t.Cleanup(func() {
		_ = os.Chmod(full, 0755)
	})
}

// Exists reports whether rel exists, without following a final symlink
func (h *RealFSTestHelper) Exists(rel string) bool {
	_, err := os.Lstat(h.Path(rel))
	return err == nil
}

// AssertExists verifies rel exists
func (h *RealFSTestHelper) AssertExists(rel string) {
	h.t.Helper()
	if !h.Exists(rel) {
		h.t.Errorf("Expected %s to exist, but it does not", rel)
	}
}

// AssertNotExists verifies rel does not exist
func (h *RealFSTestHelper) AssertNotExists(rel string) {
	h.t.Helper()
	if h.Exists(rel) {
		h.t.Errorf("Expected %s to not exist, but it does", rel)
	}
}
