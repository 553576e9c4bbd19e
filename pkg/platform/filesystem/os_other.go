//go:build !unix

package filesystem

import (
	"io/fs"
	"os"
	"syscall"

	"github.com/arthur-debert/platformfs/pkg/platform/core"
)

var errNotDir error = syscall.ENOTDIR

// FileType implements ReadFS
func (osfs *OSFileSystem) FileType(name string) (core.FileType, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return core.FileTypeUnknown, err
	}
	switch {
	case info.Mode().IsRegular():
		return core.FileTypeRegular, nil
	case info.IsDir():
		return core.FileTypeDirectory, nil
	default:
		return core.FileTypeUnknown, nil
	}
}

// Mkdir implements WriteFS
func (osfs *OSFileSystem) Mkdir(name string, perm fs.FileMode) error {
	return os.Mkdir(name, perm)
}

// Rmdir implements WriteFS
func (osfs *OSFileSystem) Rmdir(name string) error {
	info, err := os.Lstat(name)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: string(OpRmdir), Path: name, Err: syscall.ENOTDIR}
	}
	return os.Remove(name)
}

// Unlink implements WriteFS
func (osfs *OSFileSystem) Unlink(name string) error {
	info, err := os.Lstat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: string(OpUnlink), Path: name, Err: syscall.EISDIR}
	}
	return os.Remove(name)
}
