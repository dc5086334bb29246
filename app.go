package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/winpath/internal/command"
	"gitlab.com/gitlab-org/winpath/internal/config"
	"gitlab.com/gitlab-org/winpath/internal/vfs"
	"gitlab.com/gitlab-org/winpath/internal/vfs/local"
	"gitlab.com/gitlab-org/winpath/internal/vfs/memfs"
	"gitlab.com/gitlab-org/winpath/ntpath"
)

type theApp struct {
	config  *config.Config
	command *command.Command
	env     *command.Env
}

func newApp(cfg *config.Config) (*theApp, error) {
	c, err := command.Lookup(cfg.Command)
	if err != nil {
		return nil, err
	}

	fsys, err := openFS(cfg.General)
	if err != nil {
		return nil, err
	}

	env := &command.Env{
		FS:          fsys,
		Lookup:      os.LookupEnv,
		Parallelism: cfg.General.Parallelism,
	}

	switch {
	case fsys != nil:
		env.WorkingDir = fsys
	case cfg.General.WorkingDir != "":
		env.WorkingDir = ntpath.StaticWorkingDir(cfg.General.WorkingDir)
	}

	var opts []ntpath.ResolverOption
	if cfg.General.StripVerbatimPrefix {
		opts = append(opts, ntpath.WithPrefixStripping())
	}
	env.Resolver = ntpath.NewResolver(fsys, opts...)

	return &theApp{config: cfg, command: c, env: env}, nil
}

// openFS returns the filesystem paths are resolved against: the fixture arena
// when one is configured, the host filesystem otherwise. It returns nil when
// the host filesystem cannot be queried.
func openFS(cfg config.General) (ntpath.FS, error) {
	if cfg.FSFixture != "" {
		arena, err := memfs.LoadFile(cfg.FSFixture)
		if err != nil {
			return nil, fmt.Errorf("loading filesystem fixture: %w", err)
		}

		if cfg.WorkingDir != "" {
			arena.Chdir(cfg.WorkingDir)
		}

		return vfs.Instrumented(arena, arena.Name()), nil
	}

	host, err := local.New()
	if errors.Is(err, ntpath.ErrUnsupported) {
		log.WithError(err).Debug("Host filesystem unavailable")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if cfg.WorkingDir != "" {
		if err := os.Chdir(cfg.WorkingDir); err != nil {
			return nil, fmt.Errorf("could not change directory into %q: %w", cfg.WorkingDir, err)
		}
	}

	return vfs.Instrumented(host, "local"), nil
}

// Run executes the configured command and prints its result to w.
func (a *theApp) Run(ctx context.Context, w io.Writer) error {
	result, err := a.command.Run(ctx, a.env, a.config.Args)
	if err != nil {
		return err
	}

	return result.Write(w, a.config.General.Output)
}

func writeMetrics(path string) error {
	if path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
