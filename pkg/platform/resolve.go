package platform

import (
	"github.com/arthur-debert/platformfs/pkg/platform/core"
)

// ReadPathForFile resolves file against the roots named by scope and returns
// the first candidate that exists. Scope tokens are:
//
//	w  writable directory
//	r  resources directory
//	s  settings directory
//	f  file as given
//
// An empty scope means DefaultSearchScope. Roots that are unset are skipped.
// Any other token is a programming error and panics.
func (p *Platform) ReadPathForFile(file, scope string) (string, error) {
	if scope == "" {
		scope = DefaultSearchScope
	}

	p.mu.RLock()
	writable, resources, settings := p.writableDir, p.resourcesDir, p.settingsDir
	p.mu.RUnlock()

	for _, token := range scope {
		var root string
		switch token {
		case 'w':
			root = writable
		case 'r':
			root = resources
		case 's':
			root = settings
		case 'f':
		default:
			core.Check(false, "supported search scope", scope)
		}
		if token != 'f' && root == "" {
			continue
		}

		fullPath := root + file
		if p.IsFileExistsByFullPath(fullPath) {
			p.metrics.ResolveHits.WithLabelValues(string(token)).Inc()
			return fullPath, nil
		}
	}

	p.metrics.ResolveMisses.Inc()
	p.logger.Debug().Str("file", file).Str("scope", scope).Msg("File not found in scope")
	return "", &FileAbsentError{
		File:         file,
		Scope:        scope,
		WritableDir:  writable,
		ResourcesDir: resources,
		SettingsDir:  settings,
	}
}
