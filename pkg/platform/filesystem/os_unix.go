//go:build unix

package filesystem

import (
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/arthur-debert/platformfs/pkg/platform/core"
)

var errNotDir error = unix.ENOTDIR

// FileType implements ReadFS with lstat(2).
func (osfs *OSFileSystem) FileType(name string) (core.FileType, error) {
	var st unix.Stat_t
	if err := unix.Lstat(name, &st); err != nil {
		return core.FileTypeUnknown, &fs.PathError{Op: string(OpFileType), Path: name, Err: err}
	}
	switch uint32(st.Mode) & unix.S_IFMT {
	case unix.S_IFREG:
		return core.FileTypeRegular, nil
	case unix.S_IFDIR:
		return core.FileTypeDirectory, nil
	default:
		return core.FileTypeUnknown, nil
	}
}

// Mkdir implements WriteFS with mkdir(2); it never creates parents.
func (osfs *OSFileSystem) Mkdir(name string, perm fs.FileMode) error {
	if err := unix.Mkdir(name, uint32(perm.Perm())); err != nil {
		return &fs.PathError{Op: string(OpMkdir), Path: name, Err: err}
	}
	return nil
}

// Rmdir implements WriteFS with rmdir(2).
func (osfs *OSFileSystem) Rmdir(name string) error {
	if err := unix.Rmdir(name); err != nil {
		return &fs.PathError{Op: string(OpRmdir), Path: name, Err: err}
	}
	return nil
}

// Unlink implements WriteFS with unlink(2).
func (osfs *OSFileSystem) Unlink(name string) error {
	if err := unix.Unlink(name); err != nil {
		return &fs.PathError{Op: string(OpUnlink), Path: name, Err: err}
	}
	return nil
}
