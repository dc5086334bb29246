package ntpath

import (
	"context"
	"errors"
	"io/fs"
	"strings"
)

func isMount(ctx context.Context, fsys FS, p string) (bool, error) {
	abs, err := absPath(ctx, fsys, p)
	if err != nil {
		return false, err
	}

	if n := prefixLen(abs); n > 0 {
		return anchorLen(abs) == len(abs), nil
	}

	drive, rest := splitDrive(abs)
	if isUNCDrive(drive) {
		return rest == "" || len(rest) == 1 && isSep(rest[0]), nil
	}
	if len(rest) == 1 && isSep(rest[0]) {
		return true, nil
	}

	namer, ok := fsys.(VolumePathNamer)
	if !ok {
		return false, nil
	}
	volume, err := namer.VolumePathName(ctx, abs)
	switch {
	case errors.Is(err, ErrUnsupported), errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	}
	return equalFold(strings.TrimRight(abs, `\/`), strings.TrimRight(volume, `\/`)), nil
}

// IsMount reports whether p is the root of a volume: a drive root, a UNC
// share, a device root, or a directory fsys reports as a volume mount point.
// fsys may be nil for absolute paths, in which case only the lexical checks
// are made. A path that does not exist is not a mount point.
func IsMount[P Path](ctx context.Context, fsys FS, p P) (bool, error) {
	return isMount(ctx, fsys, string(p))
}
