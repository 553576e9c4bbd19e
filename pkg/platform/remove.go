package platform

import (
	"github.com/arthur-debert/platformfs/pkg/platform/core"
	"github.com/arthur-debert/platformfs/pkg/platform/filesystem"
)

// MkDir creates a single directory.
func (p *Platform) MkDir(dir string) error {
	return core.NewError(string(filesystem.OpMkdir), dir, p.fs.Mkdir(dir, DefaultDirMode))
}

// RmDir removes an empty directory.
func (p *Platform) RmDir(dir string) error {
	return core.NewError(string(filesystem.OpRmdir), dir, p.fs.Rmdir(dir))
}

// DeleteFile removes a non-directory entry.
func (p *Platform) DeleteFile(path string) error {
	return core.NewError(string(filesystem.OpUnlink), path, p.fs.Unlink(path))
}

// MkDirChecked makes sure dir exists as a directory. It succeeds when dir is
// created or is already a directory, and fails when something else occupies
// the path.
func (p *Platform) MkDirChecked(dir string) bool {
	err := p.MkDir(dir)
	switch code := MapError(err); code {
	case ErrOk:
		return true
	case ErrFileAlreadyExists:
		ft, ok := p.getFileTypeChecked(dir)
		if !ok {
			return false
		}
		if ft != FileTypeDirectory {
			p.logger.Error().Str("dir", dir).Stringer("type", ft).Msg("Exists, but not a directory")
			return false
		}
		return true
	default:
		p.logger.Error().Str("dir", dir).Str("code", code.String()).Err(err).Msg("Can't be created")
		return false
	}
}

// RmDirRecursively deletes dir and everything below it. It keeps going past
// failures and returns true only if every entry and dir itself were removed.
// Entries whose type can't be determined are skipped; when such an entry is
// still there, removing dir fails and the result is false. The empty path,
// "." and ".." are refused without touching anything.
func (p *Platform) RmDirRecursively(dir string) bool {
	if dir == "" || core.IsSpecialDirName(dir) {
		return false
	}

	res := true
	for _, name := range p.GetFilesByRegExp(dir, ".*") {
		path := joinPath(dir, name)

		ft, err := p.GetFileType(path)
		if err != nil {
			p.metrics.TypeQueryFailures.Inc()
			p.logger.Debug().Str("path", path).Err(err).Msg("Skipping entry of unknown type")
			continue
		}

		if ft == FileTypeDirectory {
			if !core.IsSpecialDirName(name) && !p.RmDirRecursively(path) {
				res = false
			}
			continue
		}

		if err := p.DeleteFile(path); err != nil {
			p.metrics.RemoveFailures.Inc()
			p.logger.Error().Str("path", path).Str("code", MapError(err).String()).Err(err).Msg("Can't delete file")
			res = false
			continue
		}
		p.metrics.FilesRemoved.Inc()
	}

	if err := p.RmDir(dir); err != nil {
		p.metrics.RemoveFailures.Inc()
		p.logger.Error().Str("dir", dir).Str("code", MapError(err).String()).Err(err).Msg("Can't remove directory")
		return false
	}
	p.metrics.DirsRemoved.Inc()
	return res
}
