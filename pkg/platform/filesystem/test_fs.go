package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/platformfs/pkg/platform/core"
)

// TestFileSystem is an in-memory FileSystem backed by fstest.MapFS.
// Directories added through WriteFile and MkdirAll are explicit entries, so
// they outlive their last child the way real directories do. Any primitive can be made to fail on a given path with FailOn.
type TestFileSystem struct {
	mu     sync.RWMutex
	files  fstest.MapFS
	faults map[string]error
}

// NewTestFileSystem creates a new, empty test filesystem
func NewTestFileSystem() *TestFileSystem {
	return NewTestFileSystemFromMap(make(fstest.MapFS))
}

// NewTestFileSystemFromMap creates a test filesystem from an existing map
func NewTestFileSystemFromMap(files fstest.MapFS) *TestFileSystem {
	return &TestFileSystem{
		files:  files,
		faults: make(map[string]error),
	}
}

// cleanName maps a native path onto a MapFS key.
func cleanName(name string) string {
	name = path.Clean(filepath.ToSlash(name))
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}

func faultKey(op Op, name string) string {
	return string(op) + ":" + cleanName(name)
}

// FailOn makes op on name fail with err until cleared with FailOn(op, name, nil).
func (tfs *TestFileSystem) FailOn(op Op, name string, err error) {
	tfs.mu.Lock()
	defer tfs.mu.Unlock()
	if err == nil {
		delete(tfs.faults, faultKey(op, name))
		return
	}
	tfs.faults[faultKey(op, name)] = err
}

func (tfs *TestFileSystem) fault(op Op, name string) error {
	if err, ok := tfs.faults[faultKey(op, name)]; ok {
		return &fs.PathError{Op: string(op), Path: name, Err: err}
	}
	return nil
}

// WriteFile adds a regular file and any missing parent directories
func (tfs *TestFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) {
	tfs.mu.Lock()
	defer tfs.mu.Unlock()
	key := cleanName(name)
	tfs.addParents(key)
	tfs.files[key] = &fstest.MapFile{Data: data, Mode: perm}
}

// MkdirAll adds a directory and any missing parents
func (tfs *TestFileSystem) MkdirAll(name string, perm fs.FileMode) {
	tfs.mu.Lock()
	defer tfs.mu.Unlock()
	key := cleanName(name)
	tfs.addParents(key)
	if key != "." {
		tfs.files[key] = &fstest.MapFile{Mode: perm | fs.ModeDir}
	}
}

func (tfs *TestFileSystem) addParents(key string) {
	for dir := path.Dir(key); dir != "."; dir = path.Dir(dir) {
		if _, ok := tfs.files[dir]; ok {
			continue
		}
		tfs.files[dir] = &fstest.MapFile{Mode: 0755 | fs.ModeDir}
	}
}

// Exists reports whether name is present, file or directory
func (tfs *TestFileSystem) Exists(name string) bool {
	tfs.mu.RLock()
	defer tfs.mu.RUnlock()
	_, err := fs.Stat(tfs.files, cleanName(name))
	return err == nil
}

// ReadDirNames implements ReadFS
func (tfs *TestFileSystem) ReadDirNames(dir string) ([]string, error) {
	tfs.mu.RLock()
	defer tfs.mu.RUnlock()
	if err := tfs.fault(OpReadDir, dir); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(tfs.files, cleanName(dir))
	if err != nil {
		return nil, err
	}
	names := []string{".", ".."}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// FileType implements ReadFS
func (tfs *TestFileSystem) FileType(name string) (core.FileType, error) {
	tfs.mu.RLock()
	defer tfs.mu.RUnlock()
	if err := tfs.fault(OpFileType, name); err != nil {
		return core.FileTypeUnknown, err
	}

	info, err := fs.Stat(tfs.files, cleanName(name))
	if err != nil {
		return core.FileTypeUnknown, &fs.PathError{Op: string(OpFileType), Path: name, Err: syscall.ENOENT}
	}
	switch {
	case info.IsDir():
		return core.FileTypeDirectory, nil
	case info.Mode().IsRegular():
		return core.FileTypeRegular, nil
	default:
		return core.FileTypeUnknown, nil
	}
}

// Stat implements ReadFS
func (tfs *TestFileSystem) Stat(name string) (fs.FileInfo, error) {
	tfs.mu.RLock()
	defer tfs.mu.RUnlock()
	if err := tfs.fault(OpStat, name); err != nil {
		return nil, err
	}
	return fs.Stat(tfs.files, cleanName(name))
}

// DirFS implements ReadFS. The returned view shares the underlying map and
// must not be used concurrently with writes.
func (tfs *TestFileSystem) DirFS(dir string) (fs.FS, error) {
	tfs.mu.RLock()
	defer tfs.mu.RUnlock()
	name := cleanName(dir)
	info, err := fs.Stat(tfs.files, name)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "dirfs", Path: dir, Err: syscall.ENOTDIR}
	}
	return fs.Sub(tfs.files, name)
}

// Mkdir implements WriteFS
func (tfs *TestFileSystem) Mkdir(name string, perm fs.FileMode) error {
	tfs.mu.Lock()
	defer tfs.mu.Unlock()
	if err := tfs.fault(OpMkdir, name); err != nil {
		return err
	}

	key := cleanName(name)
	if _, err := fs.Stat(tfs.files, key); err == nil {
		return &fs.PathError{Op: string(OpMkdir), Path: name, Err: syscall.EEXIST}
	}
	if parent := path.Dir(key); parent != "." {
		info, err := fs.Stat(tfs.files, parent)
		if err != nil {
			return &fs.PathError{Op: string(OpMkdir), Path: name, Err: syscall.ENOENT}
		}
		if !info.IsDir() {
			return &fs.PathError{Op: string(OpMkdir), Path: name, Err: syscall.ENOTDIR}
		}
	}
	tfs.files[key] = &fstest.MapFile{Mode: perm | fs.ModeDir}
	return nil
}

// Rmdir implements WriteFS
func (tfs *TestFileSystem) Rmdir(name string) error {
	tfs.mu.Lock()
	defer tfs.mu.Unlock()
	if err := tfs.fault(OpRmdir, name); err != nil {
		return err
	}

	key := cleanName(name)
	if key == "." {
		return &fs.PathError{Op: string(OpRmdir), Path: name, Err: syscall.EINVAL}
	}
	info, err := fs.Stat(tfs.files, key)
	if err != nil {
		return &fs.PathError{Op: string(OpRmdir), Path: name, Err: syscall.ENOENT}
	}
	if !info.IsDir() {
		return &fs.PathError{Op: string(OpRmdir), Path: name, Err: syscall.ENOTDIR}
	}
	entries, err := fs.ReadDir(tfs.files, key)
	if err != nil {
		return &fs.PathError{Op: string(OpRmdir), Path: name, Err: err}
	}
	if len(entries) > 0 {
		return &fs.PathError{Op: string(OpRmdir), Path: name, Err: syscall.ENOTEMPTY}
	}
	delete(tfs.files, key)
	return nil
}

// Unlink implements WriteFS
func (tfs *TestFileSystem) Unlink(name string) error {
	tfs.mu.Lock()
	defer tfs.mu.Unlock()
	if err := tfs.fault(OpUnlink, name); err != nil {
		return err
	}

	key := cleanName(name)
	info, err := fs.Stat(tfs.files, key)
	if err != nil {
		return &fs.PathError{Op: string(OpUnlink), Path: name, Err: syscall.ENOENT}
	}
	if info.IsDir() {
		return &fs.PathError{Op: string(OpUnlink), Path: name, Err: syscall.EISDIR}
	}
	delete(tfs.files, key)
	return nil
}

// TestHelper provides utilities for tests that drive a TestFileSystem
type TestHelper struct {
	t  *testing.T
	fs *TestFileSystem
}

// NewTestHelper creates a new test helper with a fresh filesystem
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{
		t:  t,
		fs: NewTestFileSystem(),
	}
}

// FileSystem returns the test filesystem
func (th *TestHelper) FileSystem() *TestFileSystem {
	return th.fs
}

// WriteFile writes a file with default content
func (th *TestHelper) WriteFile(names ...string) {
	for _, name := range names {
		th.fs.WriteFile(name, []byte(name), 0644)
	}
}

// MkdirAll creates explicit directories
func (th *TestHelper) MkdirAll(names ...string) {
	for _, name := range names {
		th.fs.MkdirAll(name, 0755)
	}
}

// AssertExists checks that a path exists
func (th *TestHelper) AssertExists(name string) {
	th.t.Helper()
	if !th.fs.Exists(name) {
		th.t.Errorf("Expected %s to exist, but it does not", name)
	}
}

// AssertNotExists checks that a path does not exist
func (th *TestHelper) AssertNotExists(name string) {
	th.t.Helper()
	if th.fs.Exists(name) {
		th.t.Errorf("Expected %s to not exist, but it does", name)
	}
}
