package command

import (
	"context"
	"errors"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"gitlab.com/gitlab-org/winpath/ntpath"
)

// realPaths canonicalizes the operands concurrently, at most env.Parallelism
// at a time. Results keep the operand order.
func realPaths(ctx context.Context, env *Env, args []string) (any, error) {
	results := make([]any, len(args))
	var degraded atomic.Bool

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(env))

	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			resolved, err := ntpath.Resolve(ctx, env.Resolver, arg)
			switch {
			case errors.Is(err, ntpath.ErrDegraded):
				degraded.Store(true)
			case err != nil:
				return err
			}

			results[i] = resolved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if degraded.Load() {
		log.WithError(ntpath.ErrDegraded).Warn("No filesystem available, paths were normalized without following symbolic links")
	}

	return results, nil
}

func parallelism(env *Env) int {
	if env.Parallelism < 1 {
		return 1
	}
	return env.Parallelism
}
