//go:build windows

package local

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/winpath/ntpath"
)

func tmpDir(t *testing.T) string {
	t.Helper()

	// the temporary directory may itself live behind a junction
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}

func TestLocalFS(t *testing.T) {
	// create structure as:
	// <tmp>\dir: directory
	// <tmp>\file: file
	// <tmp>\dir_link: symlink to `dir`
	dir := tmpDir(t)

	dirPath := filepath.Join(dir, "dir")
	require.NoError(t, os.Mkdir(dirPath, 0755))

	filePath := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(filePath, []byte{}, 0644))

	linkPath := filepath.Join(dir, "dir_link")
	if err := os.Symlink("dir", linkPath); err != nil {
		t.Skipf("creating symlinks needs developer mode or elevation: %v", err)
	}

	fsys, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("IsSymlink", func(t *testing.T) {
		isLink, err := fsys.IsSymlink(ctx, linkPath)
		require.NoError(t, err)
		require.True(t, isLink)

		isLink, err = fsys.IsSymlink(ctx, dirPath)
		require.NoError(t, err)
		require.False(t, isLink)

		_, err = fsys.IsSymlink(ctx, filepath.Join(dir, "missing"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("Readlink", func(t *testing.T) {
		target, err := fsys.Readlink(ctx, linkPath)
		require.NoError(t, err)
		require.Equal(t, "dir", target)

		_, err = fsys.Readlink(ctx, filePath)
		require.ErrorIs(t, err, ntpath.ErrNotALink)
	})

	t.Run("FinalPathName", func(t *testing.T) {
		final, err := fsys.FinalPathName(ctx, linkPath)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(final, `\\?\`))

		direct, err := fsys.FinalPathName(ctx, dirPath)
		require.NoError(t, err)
		require.Equal(t, direct, final)

		_, err = fsys.FinalPathName(ctx, filepath.Join(dir, "missing"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("VolumePathName", func(t *testing.T) {
		volume, err := fsys.(ntpath.VolumePathNamer).VolumePathName(ctx, dirPath)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(volume, `\`))
	})

	t.Run("RealPath", func(t *testing.T) {
		resolved, err := ntpath.RealPath(ctx, fsys, linkPath+`\..\file`)
		require.NoError(t, err)

		direct, err := fsys.FinalPathName(ctx, filePath)
		require.NoError(t, err)
		require.Equal(t, direct, resolved)
	})
}
