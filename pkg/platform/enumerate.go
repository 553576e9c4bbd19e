package platform

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"github.com/arthur-debert/platformfs/pkg/platform/core"
	"github.com/arthur-debert/platformfs/pkg/platform/filesystem"
)

// FileWithType is an entry name paired with its type.
type FileWithType struct {
	Name string
	Type FileType
}

// GetFileType reports the type of path without following a final symlink.
// Failures are *core.Error values.
func (p *Platform) GetFileType(path string) (FileType, error) {
	ft, err := p.fs.FileType(path)
	if err != nil {
		return FileTypeUnknown, core.NewError(string(filesystem.OpFileType), path, err)
	}
	return ft, nil
}

// getFileTypeChecked logs a failed type query and counts it.
func (p *Platform) getFileTypeChecked(path string) (FileType, bool) {
	ft, err := p.GetFileType(path)
	if err != nil {
		p.metrics.TypeQueryFailures.Inc()
		p.logger.Error().
			Str("path", path).
			Str("code", MapError(err).String()).
			Err(err).
			Msg("Can't determine file type")
		return FileTypeUnknown, false
	}
	return ft, true
}

// IsDirectory reports whether path is a directory. Query failures count as no.
func (p *Platform) IsDirectory(path string) bool {
	ft, err := p.GetFileType(path)
	return err == nil && ft == FileTypeDirectory
}

// IsFileExistsByFullPath reports whether anything exists at path.
func (p *Platform) IsFileExistsByFullPath(path string) bool {
	_, err := p.fs.Stat(path)
	return err == nil
}

// GetFilesByRegExp lists the entry names of directory matching pattern,
// including "." and "..", in the order the filesystem reports them. An
// unreadable directory lists as empty.
func (p *Platform) GetFilesByRegExp(directory, pattern string) []string {
	re, err := regexp.Compile(pattern)
	core.Check(err == nil, "valid file pattern", pattern, err)

	names, err := p.fs.ReadDirNames(directory)
	if err != nil {
		p.logger.Warn().
			Str("dir", directory).
			Str("code", MapError(err).String()).
			Err(err).
			Msg("Can't read directory")
		return nil
	}

	var files []string
	for _, name := range names {
		if re.MatchString(name) {
			files = append(files, name)
		}
	}
	return files
}

// GetFilesByExt lists the names in directory ending with ext, which must
// start with a dot.
func (p *Platform) GetFilesByExt(directory, ext string) []string {
	core.Check(ext != "", "non-empty extension")
	core.Check(ext[0] == '.', "extension starts with a dot", ext)

	return p.GetFilesByRegExp(directory, regexp.QuoteMeta(ext)+"$")
}

// GetFilesByType lists the entries of directory whose type intersects
// typeMask. Entries whose type can't be determined are logged and dropped.
func (p *Platform) GetFilesByType(directory string, typeMask FileTypeMask) []FileWithType {
	var files []FileWithType
	for _, name := range p.GetFilesByRegExp(directory, ".*") {
		ft, ok := p.getFileTypeChecked(joinPath(directory, name))
		if !ok {
			continue
		}
		if ft.Matches(typeMask) {
			files = append(files, FileWithType{Name: name, Type: ft})
		}
	}
	return files
}

// GetFilesByGlob lists the paths under directory, relative to it, that match
// a doublestar pattern such as "**/*.mwm".
func (p *Platform) GetFilesByGlob(directory, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	fsys, err := p.fs.DirFS(directory)
	if err != nil {
		return nil, core.NewError("dirfs", directory, err)
	}
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q in %s: %w", pattern, directory, err)
	}
	return matches, nil
}

// GetFilesRecursively returns the paths of all regular files below
// directory. Within a level, files come before the contents of
// subdirectories; subdirectories are visited depth-first.
func (p *Platform) GetFilesRecursively(directory string) []string {
	var files []string
	p.getFilesRecursively(directory, &files)
	return files
}

func (p *Platform) getFilesRecursively(directory string, files *[]string) {
	for _, f := range p.GetFilesByType(directory, FileTypeRegular) {
		core.Check(f.Type == FileTypeRegular, "regular file", "dir:", directory, "file:", f.Name)
		*files = append(*files, joinPath(directory, f.Name))
	}

	for _, d := range p.GetFilesByType(directory, FileTypeDirectory) {
		core.Check(d.Type == FileTypeDirectory, "directory", "dir:", directory, "subdir:", d.Name)
		if core.IsSpecialDirName(d.Name) {
			continue
		}
		p.getFilesRecursively(joinPath(directory, d.Name), files)
	}
}

// WalkFilesParallel lists the regular files below directory using several
// goroutines. Order is unspecified. Only the host filesystem is supported.
func (p *Platform) WalkFilesParallel(ctx context.Context, directory string) ([]string, error) {
	if _, ok := p.fs.(*filesystem.OSFileSystem); !ok {
		return nil, fmt.Errorf("parallel walk requires the OS filesystem, have %T", p.fs)
	}

	var (
		mu    sync.Mutex
		files []string
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, directory, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if path == directory {
				return err
			}
			p.logger.Warn().Str("path", path).Err(err).Msg("Skipping unreadable entry")
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		mu.Lock()
		files = append(files, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, core.NewError("walk", directory, err)
	}
	return files, nil
}

// joinPath joins a directory and an entry name. The self and parent entries
// are kept verbatim so that "dir/.." still names dir's parent.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if core.IsSpecialDirName(name) {
		return addSlashIfNeeded(dir) + name
	}
	return filepath.Join(dir, name)
}
