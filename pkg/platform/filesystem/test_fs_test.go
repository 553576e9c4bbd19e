package filesystem_test

import (
	"io/fs"
	"sort"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/platformfs/pkg/platform/core"
	"github.com/arthur-debert/platformfs/pkg/platform/filesystem"
)

func TestTestFileSystem_ReadDirNames(t *testing.T) {
	th := filesystem.NewTestHelper(t)
	th.WriteFile("root/a.txt", "root/sub/b.txt")
	th.MkdirAll("root/empty")

	names, err := th.FileSystem().ReadDirNames("root")
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{".", "..", "a.txt", "empty", "sub"}, names)

	_, err = th.FileSystem().ReadDirNames("missing")
	assert.Equal(t, core.FileDoesNotExist, core.MapError(err))
}

func TestTestFileSystem_FileType(t *testing.T) {
	th := filesystem.NewTestHelper(t)
	th.WriteFile("root/a.txt")
	tfs := th.FileSystem()

	ft, err := tfs.FileType("root/a.txt")
	require.NoError(t, err)
	assert.Equal(t, core.FileTypeRegular, ft)

	ft, err = tfs.FileType("root")
	require.NoError(t, err)
	assert.Equal(t, core.FileTypeDirectory, ft)

	ft, err = tfs.FileType("root/..")
	require.NoError(t, err)
	assert.Equal(t, core.FileTypeDirectory, ft)

	_, err = tfs.FileType("root/nope")
	assert.Equal(t, core.FileDoesNotExist, core.MapError(err))
}

func TestTestFileSystem_Mkdir(t *testing.T) {
	th := filesystem.NewTestHelper(t)
	th.WriteFile("file")
	tfs := th.FileSystem()

	require.NoError(t, tfs.Mkdir("dir", 0755))
	th.AssertExists("dir")

	assert.Equal(t, core.FileAlreadyExists, core.MapError(tfs.Mkdir("dir", 0755)))
	assert.Equal(t, core.FileAlreadyExists, core.MapError(tfs.Mkdir("file", 0755)))
	assert.Equal(t, core.FileDoesNotExist, core.MapError(tfs.Mkdir("a/b/c", 0755)))
	assert.Equal(t, core.NotADirectory, core.MapError(tfs.Mkdir("file/sub", 0755)))
}

func TestTestFileSystem_RmdirAndUnlink(t *testing.T) {
	th := filesystem.NewTestHelper(t)
	th.WriteFile("dir/file")
	tfs := th.FileSystem()

	assert.Equal(t, core.DirectoryNotEmpty, core.MapError(tfs.Rmdir("dir")))
	assert.Equal(t, core.NotADirectory, core.MapError(tfs.Rmdir("dir/file")))
	assert.ErrorIs(t, tfs.Unlink("dir"), syscall.EISDIR)

	require.NoError(t, tfs.Unlink("dir/file"))
	th.AssertNotExists("dir/file")
	th.AssertExists("dir")
	require.NoError(t, tfs.Rmdir("dir"))
	th.AssertNotExists("dir")

	th.MkdirAll("explicit")
	require.NoError(t, tfs.Rmdir("explicit"))
	th.AssertNotExists("explicit")

	assert.Equal(t, core.FileDoesNotExist, core.MapError(tfs.Unlink("explicit")))
}

func TestTestFileSystem_FailOn(t *testing.T) {
	th := filesystem.NewTestHelper(t)
	th.WriteFile("dir/locked")
	tfs := th.FileSystem()

	tfs.FailOn(filesystem.OpUnlink, "dir/locked", syscall.EACCES)
	err := tfs.Unlink("dir/locked")
	assert.Equal(t, core.AccessFailed, core.MapError(err))
	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "unlink", pathErr.Op)
	th.AssertExists("dir/locked")

	tfs.FailOn(filesystem.OpUnlink, "dir/locked", nil)
	require.NoError(t, tfs.Unlink("dir/locked"))
}

func TestTestFileSystem_DirFS(t *testing.T) {
	th := filesystem.NewTestHelper(t)
	th.WriteFile("res/a.mwm", "res/nested/b.mwm")
	tfs := th.FileSystem()

	sub, err := tfs.DirFS("res")
	require.NoError(t, err)
	_, err = fs.Stat(sub, "nested/b.mwm")
	assert.NoError(t, err)

	_, err = tfs.DirFS("res/a.mwm")
	assert.Equal(t, core.NotADirectory, core.MapError(err))
}
