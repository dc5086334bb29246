//go:build windows

package local

import (
	"context"
	"io/fs"
	"os"

	"golang.org/x/sys/windows"

	"gitlab.com/gitlab-org/winpath/ntpath"
)

// FS answers path queries from the host filesystem.
type FS struct{}

// New returns the host filesystem.
func New() (ntpath.FinalPathFS, error) {
	return &FS{}, nil
}

func (*FS) Name() string {
	return "local"
}

func (*FS) Getwd(ctx context.Context) (string, error) {
	return os.Getwd()
}

func (*FS) IsSymlink(ctx context.Context, path string) (bool, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return false, err
	}

	return fi.Mode()&fs.ModeSymlink != 0, nil
}

func (*FS) Readlink(ctx context.Context, path string) (string, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return "", err
	}

	if fi.Mode()&fs.ModeSymlink == 0 {
		return "", &fs.PathError{Op: "readlink", Path: path, Err: ntpath.ErrNotALink}
	}

	return os.Readlink(path)
}

func (*FS) FinalPathName(ctx context.Context, path string) (string, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", &fs.PathError{Op: "open", Path: path, Err: err}
	}

	// FILE_FLAG_BACKUP_SEMANTICS is required to open directories
	h, err := windows.CreateFile(name, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err == windows.ERROR_CANT_RESOLVE_FILENAME {
		err = ntpath.ErrLinkLoop
	}
	if err != nil {
		return "", &fs.PathError{Op: "open", Path: path, Err: err}
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_PATH)
	for {
		n, err := windows.GetFinalPathNameByHandle(h, &buf[0], uint32(len(buf)), windows.FILE_NAME_NORMALIZED|windows.VOLUME_NAME_DOS)
		if err != nil {
			return "", &fs.PathError{Op: "GetFinalPathNameByHandle", Path: path, Err: err}
		}
		if n < uint32(len(buf)) {
			return windows.UTF16ToString(buf[:n]), nil
		}
		buf = make([]uint16, n)
	}
}

func (*FS) VolumePathName(ctx context.Context, path string) (string, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", &fs.PathError{Op: "GetVolumePathName", Path: path, Err: err}
	}

	buf := make([]uint16, windows.MAX_LONG_PATH)
	if err := windows.GetVolumePathName(name, &buf[0], uint32(len(buf))); err != nil {
		return "", &fs.PathError{Op: "GetVolumePathName", Path: path, Err: err}
	}

	return windows.UTF16ToString(buf), nil
}
