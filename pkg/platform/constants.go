package platform

import "github.com/arthur-debert/platformfs/pkg/platform/core"

// --- File Type Constants ---

// FileType is defined in the core package
type FileType = core.FileType

// FileTypeMask is defined in the core package
type FileTypeMask = core.FileTypeMask

const (
	FileTypeUnknown   = core.FileTypeUnknown
	FileTypeRegular   = core.FileTypeRegular
	FileTypeDirectory = core.FileTypeDirectory
	FileTypeAll       = core.FileTypeAll
)

// --- Error Code Constants ---

// ErrorCode is defined in the core package
type ErrorCode = core.ErrorCode

const (
	ErrOk                = core.Ok
	ErrFileDoesNotExist  = core.FileDoesNotExist
	ErrAccessFailed      = core.AccessFailed
	ErrDirectoryNotEmpty = core.DirectoryNotEmpty
	ErrFileAlreadyExists = core.FileAlreadyExists
	ErrNameTooLong       = core.NameTooLong
	ErrNotADirectory     = core.NotADirectory
	ErrSymlinkLoop       = core.SymlinkLoop
	ErrIOError           = core.IOError
	ErrUnknown           = core.Unknown
)

// MapError normalises the error returned by a failing primitive.
func MapError(err error) ErrorCode {
	return core.MapError(err)
}

// AssertionError is the panic value for broken preconditions.
type AssertionError = core.AssertionError

// --- Default Values ---

const (
	// DefaultDirMode is the permission used by MkDir (0755).
	DefaultDirMode = 0755
)
