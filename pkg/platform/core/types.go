package core

import "strings"

// FileType is the kind of a filesystem entry as reported by a single
// non-following type query.
type FileType uint

const (
	// FileTypeUnknown covers symlinks, sockets, devices and anything else that
	// tree walks treat as skippable.
	FileTypeUnknown FileType = 0x1
	// FileTypeRegular is a regular file.
	FileTypeRegular FileType = 0x2
	// FileTypeDirectory is a directory.
	FileTypeDirectory FileType = 0x4
)

// FileTypeMask selects entry kinds during enumeration.
type FileTypeMask = FileType

// FileTypeAll matches every entry kind.
const FileTypeAll FileTypeMask = FileTypeUnknown | FileTypeRegular | FileTypeDirectory

// Matches reports whether t intersects mask.
func (t FileType) Matches(mask FileTypeMask) bool {
	return t&mask != 0
}

// String returns the string representation of the FileType
func (t FileType) String() string {
	switch t {
	case FileTypeUnknown:
		return "unknown"
	case FileTypeRegular:
		return "regular"
	case FileTypeDirectory:
		return "directory"
	}

	var parts []string
	if t&FileTypeUnknown != 0 {
		parts = append(parts, "unknown")
	}
	if t&FileTypeRegular != 0 {
		parts = append(parts, "regular")
	}
	if t&FileTypeDirectory != 0 {
		parts = append(parts, "directory")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// IsSpecialDirName reports whether name is the self or parent entry.
func IsSpecialDirName(name string) bool {
	return name == "." || name == ".."
}
