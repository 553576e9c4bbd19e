package core

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrorCode is the normalised form of an OS error.
type ErrorCode int

const (
	Ok ErrorCode = iota
	FileDoesNotExist
	AccessFailed
	DirectoryNotEmpty
	FileAlreadyExists
	NameTooLong
	NotADirectory
	SymlinkLoop
	IOError
	Unknown
)

// String returns a diagnostic description of the code.
func (c ErrorCode) String() string {
	switch c {
	case Ok:
		return "Ok"
	case FileDoesNotExist:
		return "File does not exist."
	case AccessFailed:
		return "Access failed."
	case DirectoryNotEmpty:
		return "Directory not empty."
	case FileAlreadyExists:
		return "File already exists."
	case NameTooLong:
		return "The length of a component of path exceeds {NAME_MAX} characters."
	case NotADirectory:
		return "A component of the path prefix of Path is not a directory."
	case SymlinkLoop:
		return "Too many symbolic links were encountered in translating path."
	case IOError:
		return "An I/O error occurred."
	default:
		return "Unknown"
	}
}

// MapErrno translates an OS errno into an ErrorCode. Errnos outside the
// table collapse to Unknown.
func MapErrno(errno syscall.Errno) ErrorCode {
	switch errno {
	case 0:
		return Ok
	case syscall.ENOENT:
		return FileDoesNotExist
	case syscall.EACCES:
		return AccessFailed
	case syscall.ENOTEMPTY:
		return DirectoryNotEmpty
	case syscall.EEXIST:
		return FileAlreadyExists
	case syscall.ENAMETOOLONG:
		return NameTooLong
	case syscall.ENOTDIR:
		return NotADirectory
	case syscall.ELOOP:
		return SymlinkLoop
	case syscall.EIO:
		return IOError
	default:
		return Unknown
	}
}

// MapError normalises the error returned by a failing primitive. It must be
// given that error directly; nothing is read from ambient state.
func MapError(err error) ErrorCode {
	if err == nil {
		return Ok
	}

	var coreErr *Error
	if errors.As(err, &coreErr) {
		return coreErr.Code
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return MapErrno(errno)
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return FileDoesNotExist
	case errors.Is(err, fs.ErrExist):
		return FileAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return AccessFailed
	default:
		return Unknown
	}
}

// Error is a primitive failure annotated with its normalised code.
type Error struct {
	Op   string
	Path string
	Code ErrorCode
	Err  error
}

// NewError wraps err, computing its code. It returns nil for a nil err.
func NewError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Code: MapError(err), Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Code, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AssertionError is the panic value raised when a caller breaks a
// precondition. It signals a logic defect, never an environmental condition.
type AssertionError struct {
	Check   string
	Details []interface{}
}

func (e *AssertionError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("assertion failed: %s", e.Check)
	}
	return fmt.Sprintf("assertion failed: %s %v", e.Check, e.Details)
}

// Check panics with an *AssertionError when cond is false.
func Check(cond bool, check string, details ...interface{}) {
	if !cond {
		panic(&AssertionError{Check: check, Details: details})
	}
}
