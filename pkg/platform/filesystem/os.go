package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem on top of the host operating system.
// Paths are native and used as given.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS-based filesystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadDirNames implements ReadFS
func (osfs *OSFileSystem) ReadDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	// Readdirnames drops the self and parent entries that readdir(3) reports.
	return append([]string{".", ".."}, names...), nil
}

// Stat implements ReadFS
func (osfs *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// DirFS implements ReadFS
func (osfs *OSFileSystem) DirFS(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "dirfs", Path: dir, Err: errNotDir}
	}
	return os.DirFS(dir), nil
}
