package ntpath

import "errors"

var (
	// ErrIncompatibleRoots is returned by RelPath when path and start live on
	// different drives.
	ErrIncompatibleRoots = errors.New("paths are on different drives")
	// ErrIncompatiblePaths is returned by CommonPath for a mix of absolute and
	// relative paths, or for paths on different drives.
	ErrIncompatiblePaths = errors.New("paths have no common ancestor")
	ErrEmptyInput        = errors.New("empty sequence of paths")
	ErrMixedEncoding     = errors.New("cannot mix text and byte paths")
	ErrUnsupportedType   = errors.New("unsupported path type")
	ErrEmptyPath         = errors.New("no path specified")
	ErrNoWorkingDir      = errors.New("no working directory available")

	// ErrNotALink is returned by FS.Readlink for a path that is not a
	// symbolic link.
	ErrNotALink = errors.New("not a symbolic link")
	// ErrLinkLoop is returned by FinalPathNamer.FinalPathName when following
	// links does not terminate.
	ErrLinkLoop = errors.New("too many levels of symbolic links")
	// ErrUnsupported is returned by collaborators that cannot answer a query
	// on the current platform.
	ErrUnsupported = errors.New("operation not supported")
	// ErrDegraded accompanies a RealPath result that was computed lexically
	// because no filesystem was available.
	ErrDegraded = errors.New("resolved without filesystem access")
)
