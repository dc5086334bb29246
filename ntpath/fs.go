package ntpath

import "context"

//go:generate go run github.com/golang/mock/mockgen -source=fs.go -destination=mock/fs_mock.go -package=mock

// WorkingDir supplies the current working directory for relative inputs.
type WorkingDir interface {
	Getwd(ctx context.Context) (string, error)
}

// StaticWorkingDir is a WorkingDir that always answers with itself.
type StaticWorkingDir string

// Getwd returns d.
func (d StaticWorkingDir) Getwd(context.Context) (string, error) {
	return string(d), nil
}

// FS is the filesystem consulted by RealPath and IsMount.
//
// IsSymlink and Readlink must fail with an error matching fs.ErrNotExist for
// a missing path. Readlink fails with ErrNotALink for an existing path that is
// not a link.
type FS interface {
	WorkingDir
	IsSymlink(ctx context.Context, path string) (bool, error)
	Readlink(ctx context.Context, path string) (string, error)
}

// FinalPathNamer is implemented by filesystems that can report the canonical
// name of an existing file, the way GetFinalPathNameByHandle does.
type FinalPathNamer interface {
	FinalPathName(ctx context.Context, path string) (string, error)
}

// VolumePathNamer is implemented by filesystems that can report the mount
// point of the volume holding a path.
type VolumePathNamer interface {
	VolumePathName(ctx context.Context, path string) (string, error)
}

// FinalPathFS is an FS that also answers FinalPathName.
type FinalPathFS interface {
	FS
	FinalPathNamer
}
