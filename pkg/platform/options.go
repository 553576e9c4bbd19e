package platform

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/platformfs/pkg/platform/filesystem"
)

// Option configures a Platform.
type Option func(*Platform)

// WithFileSystem replaces the OS primitives, typically with a
// filesystem.TestFileSystem.
func WithFileSystem(fsys filesystem.FileSystem) Option {
	return func(p *Platform) {
		p.fs = fsys
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Platform) {
		p.logger = logger
		p.loggerSet = true
	}
}

// WithMetrics sets the counters updated by tree walks and resolution.
func WithMetrics(m *Metrics) Option {
	return func(p *Platform) {
		p.metrics = m
	}
}
