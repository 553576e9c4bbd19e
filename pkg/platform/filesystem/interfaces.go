package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/platformfs/pkg/platform/core"
)

// Op names a primitive. It is used in error values and for fault injection.
type Op string

const (
	OpReadDir  Op = "readdir"
	OpFileType Op = "lstat"
	OpStat     Op = "stat"
	OpMkdir    Op = "mkdir"
	OpRmdir    Op = "rmdir"
	OpUnlink   Op = "unlink"
)

// ReadFS holds the query primitives.
type ReadFS interface {
	// ReadDirNames lists the raw entry names of dir the way readdir(3) does,
	// including the "." and ".." entries. Order is unspecified.
	ReadDirNames(dir string) ([]string, error)
	// FileType reports the kind of name without following a final symlink.
	FileType(name string) (core.FileType, error)
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)
	// DirFS exposes dir as an io/fs tree for pattern matching.
	DirFS(dir string) (fs.FS, error)
}

// WriteFS holds the mutating primitives. None of them is recursive.
type WriteFS interface {
	Mkdir(name string, perm fs.FileMode) error
	Rmdir(name string) error
	Unlink(name string) error
}

// FileSystem combines read and write primitives.
type FileSystem interface {
	ReadFS
	WriteFS
}
