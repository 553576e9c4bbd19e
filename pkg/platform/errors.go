package platform

import (
	"errors"
	"fmt"
)

// ErrFileAbsent is matched by every *FileAbsentError.
var ErrFileAbsent = errors.New("file absent")

// FileAbsentError reports a read path resolution that found nothing. It
// carries the search roots so a missing deployment file can be diagnosed.
type FileAbsentError struct {
	File         string
	Scope        string
	WritableDir  string
	ResourcesDir string
	SettingsDir  string
}

func (e *FileAbsentError) Error() string {
	return fmt.Sprintf("file %q doesn't exist in the scope %q; have been looking in:\n%s\n%s\n%s",
		e.File, e.Scope, e.WritableDir, e.ResourcesDir, e.SettingsDir)
}

// Is reports ErrFileAbsent as a match.
func (e *FileAbsentError) Is(target error) bool {
	return target == ErrFileAbsent
}
