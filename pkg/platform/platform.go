// Package platform locates resource files across the writable, resources
// and settings directories, enumerates and deletes directory trees, and
// owns the application's long-lived worker threads.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/platformfs/pkg/platform/filesystem"
)

// Platform is the process-wide filesystem and environment context.
//
// The root directories may be reassigned at any time and from any goroutine;
// each assignment is independent, so a reader may observe a mix of old and
// new roots while a caller is reconfiguring several of them.
type Platform struct {
	mu           sync.RWMutex
	writableDir  string
	resourcesDir string
	settingsDir  string

	cfg       Config
	fs        filesystem.FileSystem
	logger    zerolog.Logger
	loggerSet bool
	metrics   *Metrics

	threadsMu sync.Mutex
	threads   *threadGroup
}

// New creates a Platform from cfg. Without options it works on the host
// filesystem and logs to stderr at cfg.LogLevel.
func New(cfg Config, opts ...Option) *Platform {
	p := &Platform{
		cfg: cfg,
		fs:  filesystem.NewOSFileSystem(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.loggerSet {
		level, err := LogLevelFromString(cfg.LogLevel)
		if err != nil || cfg.LogLevel == "" {
			level = zerolog.WarnLevel
		}
		p.logger = NewLogger(os.Stderr, level)
	}
	if p.metrics == nil {
		p.metrics = NewMetrics(nil)
	}

	p.writableDir = addSlashIfNeeded(cfg.WritableDir)
	p.resourcesDir = addSlashIfNeeded(cfg.ResourcesDir)
	p.settingsDir = addSlashIfNeeded(cfg.SettingsDir)
	return p
}

// addSlashIfNeeded terminates a non-empty directory with the separator.
// An empty directory stays empty and means "unset".
func addSlashIfNeeded(dir string) string {
	if dir == "" || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + string(filepath.Separator)
}

// Logger returns the platform logger.
func (p *Platform) Logger() *zerolog.Logger {
	return &p.logger
}

// Metrics returns the platform counters.
func (p *Platform) Metrics() *Metrics {
	return p.metrics
}

// FileSystem returns the primitives the platform runs on.
func (p *Platform) FileSystem() filesystem.FileSystem {
	return p.fs
}

// SetWritableDirForTests points the writable directory elsewhere.
func (p *Platform) SetWritableDirForTests(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writableDir = addSlashIfNeeded(path)
}

// SetResourceDir sets the read-only bundled resources directory.
func (p *Platform) SetResourceDir(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resourcesDir = addSlashIfNeeded(path)
}

// SetSettingsDir sets the user preferences directory.
func (p *Platform) SetSettingsDir(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settingsDir = addSlashIfNeeded(path)
}

// WritableDir returns the writable directory, separator terminated.
func (p *Platform) WritableDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.writableDir
}

// ResourcesDir returns the resources directory, separator terminated.
func (p *Platform) ResourcesDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.resourcesDir
}

// SettingsDir returns the settings directory, separator terminated.
func (p *Platform) SettingsDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settingsDir
}

// WritablePathForFile returns file inside the writable directory.
func (p *Platform) WritablePathForFile(file string) string {
	return p.WritableDir() + file
}

// ResourcesPathForFile returns file inside the resources directory.
func (p *Platform) ResourcesPathForFile(file string) string {
	return p.ResourcesDir() + file
}

// SettingsPathForFile returns file inside the settings directory.
func (p *Platform) SettingsPathForFile(file string) string {
	return p.SettingsDir() + file
}

func (p *Platform) MetaServerURL() string {
	return p.cfg.MetaServerURL
}

func (p *Platform) ResourcesMetaServerURL() string {
	return p.cfg.ResourcesMetaServerURL
}

func (p *Platform) DefaultURLsJSON() string {
	return p.cfg.DefaultURLsJSON
}

// FontNames returns the font files to load, bundled fonts first.
func (p *Platform) FontNames() []string {
	fonts := make([]string, 0, len(p.cfg.FontNames))
	fonts = append(fonts, p.cfg.FontNames...)
	p.logger.Info().Strs("fonts", fonts).Msg("Available font files")
	return fonts
}

// CpuCores returns the number of usable CPUs, at least one.
func (p *Platform) CpuCores() int {
	if cores := runtime.NumCPU(); cores > 0 {
		return cores
	}
	return 1
}
