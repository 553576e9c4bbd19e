package filesystem_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/platformfs/pkg/platform/core"
	"github.com/arthur-debert/platformfs/pkg/platform/filesystem"
)

func TestOSFileSystem(t *testing.T) {
	tempDir := t.TempDir()
	osfs := filesystem.NewOSFileSystem()

	t.Run("Mkdir and FileType", func(t *testing.T) {
		dir := filepath.Join(tempDir, "maps")
		require.NoError(t, osfs.Mkdir(dir, 0755))

		ft, err := osfs.FileType(dir)
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeDirectory, ft)

		err = osfs.Mkdir(dir, 0755)
		assert.Equal(t, core.FileAlreadyExists, core.MapError(err))

		err = osfs.Mkdir(filepath.Join(tempDir, "no", "parent"), 0755)
		assert.Equal(t, core.FileDoesNotExist, core.MapError(err))
	})

	t.Run("ReadDirNames reports self and parent", func(t *testing.T) {
		dir := filepath.Join(tempDir, "listing")
		require.NoError(t, os.Mkdir(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mwm"), []byte("a"), 0644))

		names, err := osfs.ReadDirNames(dir)
		require.NoError(t, err)
		sort.Strings(names)
		assert.Equal(t, []string{".", "..", "a.mwm"}, names)

		ft, err := osfs.FileType(filepath.Join(dir, "a.mwm"))
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeRegular, ft)
	})

	t.Run("Rmdir on non-empty directory", func(t *testing.T) {
		dir := filepath.Join(tempDir, "full")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "child"), 0755))

		err := osfs.Rmdir(dir)
		code := core.MapError(err)
		// Some platforms report EEXIST for a non-empty directory.
		assert.Contains(t, []core.ErrorCode{core.DirectoryNotEmpty, core.FileAlreadyExists}, code)

		require.NoError(t, osfs.Rmdir(filepath.Join(dir, "child")))
		require.NoError(t, osfs.Rmdir(dir))
	})

	t.Run("Unlink", func(t *testing.T) {
		file := filepath.Join(tempDir, "gone.txt")
		require.NoError(t, os.WriteFile(file, nil, 0644))
		require.NoError(t, osfs.Unlink(file))

		_, err := osfs.Stat(file)
		assert.True(t, os.IsNotExist(err))
		assert.Equal(t, core.FileDoesNotExist, core.MapError(osfs.Unlink(file)))
	})

	t.Run("symlinks are unknown", func(t *testing.T) {
		target := filepath.Join(tempDir, "target")
		link := filepath.Join(tempDir, "link")
		require.NoError(t, os.Mkdir(target, 0755))
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		ft, err := osfs.FileType(link)
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeUnknown, ft)
	})

	t.Run("DirFS", func(t *testing.T) {
		_, err := osfs.DirFS(filepath.Join(tempDir, "missing"))
		assert.Equal(t, core.FileDoesNotExist, core.MapError(err))

		sub, err := osfs.DirFS(tempDir)
		require.NoError(t, err)
		assert.NotNil(t, sub)
	})
}
