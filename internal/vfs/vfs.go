package vfs

import (
	"context"
	"strconv"

	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/winpath/metrics"
	"gitlab.com/gitlab-org/winpath/ntpath"
)

// Instrumented wraps fsys so that every query is counted and traced under
// name. The wrapper always offers FinalPathName and VolumePathName and
// answers them with ntpath.ErrUnsupported when fsys does not.
func Instrumented(fsys ntpath.FS, name string) *InstrumentedFS {
	return &InstrumentedFS{fs: fsys, name: name}
}

type InstrumentedFS struct {
	fs   ntpath.FS
	name string
}

func (i *InstrumentedFS) increment(operation string, err error) {
	metrics.FSOperations.WithLabelValues(i.name, operation, strconv.FormatBool(err == nil)).Inc()
}

func (i *InstrumentedFS) Getwd(ctx context.Context) (string, error) {
	cwd, err := i.fs.Getwd(ctx)
	i.increment("Getwd", err)

	log.WithField("fs", i.name).
		WithField("ret-cwd", cwd).
		WithError(err).
		Traceln("Getwd call")

	return cwd, err
}

func (i *InstrumentedFS) IsSymlink(ctx context.Context, path string) (bool, error) {
	isLink, err := i.fs.IsSymlink(ctx, path)
	i.increment("IsSymlink", err)

	log.WithField("fs", i.name).
		WithField("path", path).
		WithField("ret-symlink", isLink).
		WithError(err).
		Traceln("IsSymlink call")

	return isLink, err
}

func (i *InstrumentedFS) Readlink(ctx context.Context, path string) (string, error) {
	target, err := i.fs.Readlink(ctx, path)
	i.increment("Readlink", err)

	log.WithField("fs", i.name).
		WithField("path", path).
		WithField("ret-target", target).
		WithError(err).
		Traceln("Readlink call")

	return target, err
}

func (i *InstrumentedFS) FinalPathName(ctx context.Context, path string) (string, error) {
	namer, ok := i.fs.(ntpath.FinalPathNamer)
	if !ok {
		return "", ntpath.ErrUnsupported
	}

	final, err := namer.FinalPathName(ctx, path)
	i.increment("FinalPathName", err)

	log.WithField("fs", i.name).
		WithField("path", path).
		WithField("ret-final", final).
		WithError(err).
		Traceln("FinalPathName call")

	return final, err
}

func (i *InstrumentedFS) VolumePathName(ctx context.Context, path string) (string, error) {
	namer, ok := i.fs.(ntpath.VolumePathNamer)
	if !ok {
		return "", ntpath.ErrUnsupported
	}

	volume, err := namer.VolumePathName(ctx, path)
	i.increment("VolumePathName", err)

	log.WithField("fs", i.name).
		WithField("path", path).
		WithField("ret-volume", volume).
		WithError(err).
		Traceln("VolumePathName call")

	return volume, err
}
