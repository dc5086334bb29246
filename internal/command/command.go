package command

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gitlab.com/gitlab-org/winpath/ntpath"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgumentCount  = errors.New("wrong number of arguments")
)

// Env holds the collaborators commands run against.
type Env struct {
	// FS is nil when no filesystem can be queried
	FS ntpath.FS
	// WorkingDir makes relative paths absolute, nil when there is none
	WorkingDir  ntpath.WorkingDir
	Resolver    *ntpath.Resolver
	Lookup      ntpath.LookupEnv
	Parallelism int
}

// Tuple is a result made of several parts, printed tab-separated.
type Tuple []string

type runFunc func(ctx context.Context, env *Env, args []string) (any, error)

// Command maps a command name onto an ntpath operation.
type Command struct {
	Name  string
	Usage string
	// MinArgs and MaxArgs bound the operand count, a negative MaxArgs means
	// no upper bound
	MinArgs int
	MaxArgs int

	run runFunc
}

// Run checks the operand count and runs c.
func (c *Command) Run(ctx context.Context, env *Env, args []string) (*Result, error) {
	if len(args) < c.MinArgs || (c.MaxArgs >= 0 && len(args) > c.MaxArgs) {
		return nil, fmt.Errorf("%w: %s takes %s, got %d", ErrArgumentCount, c.Name, c.Usage, len(args))
	}

	result, err := c.run(ctx, env, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}

	return &Result{Command: c.Name, Result: result}, nil
}

// eachPath applies fn to every operand and collects one result per operand.
func eachPath(fn func(ctx context.Context, env *Env, path string) (any, error)) runFunc {
	return func(ctx context.Context, env *Env, args []string) (any, error) {
		results := make([]any, 0, len(args))
		for _, arg := range args {
			result, err := fn(ctx, env, arg)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
		return results, nil
	}
}

func lexical(fn func(path string) any) runFunc {
	return eachPath(func(_ context.Context, _ *Env, path string) (any, error) {
		return fn(path), nil
	})
}

const (
	paths    = "one or more paths"
	anyPaths = "any number of paths"
)

var commands = map[string]*Command{
	"splitdrive": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		drive, rest := ntpath.SplitDrive(p)
		return Tuple{drive, rest}
	})},
	"splitroot": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		drive, root, rest := ntpath.SplitRoot(p)
		return Tuple{drive, root, rest}
	})},
	"split": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		head, tail := ntpath.Split(p)
		return Tuple{head, tail}
	})},
	"splitext": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		root, ext := ntpath.SplitExt(p)
		return Tuple{root, ext}
	})},
	"basename": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		return ntpath.Basename(p)
	})},
	"dirname": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		return ntpath.Dirname(p)
	})},
	"isabs": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		return ntpath.IsAbs(p)
	})},
	"normpath": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		return ntpath.NormPath(p)
	})},
	"normcase": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: lexical(func(p string) any {
		return ntpath.NormCase(p)
	})},
	"abspath": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: eachPath(func(ctx context.Context, env *Env, p string) (any, error) {
		return ntpath.AbsPath(ctx, env.WorkingDir, p)
	})},
	"expandvars": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: eachPath(func(_ context.Context, env *Env, p string) (any, error) {
		return ntpath.ExpandVars(env.Lookup, p), nil
	})},
	"expanduser": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: eachPath(func(_ context.Context, env *Env, p string) (any, error) {
		return ntpath.ExpandUser(env.Lookup, p), nil
	})},
	"ismount":  {Usage: paths, MinArgs: 1, MaxArgs: -1, run: eachPath(isMount)},
	"realpath": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: realPaths},
	"join": {Usage: "a base path and any number of parts", MinArgs: 1, MaxArgs: -1, run: func(_ context.Context, _ *Env, args []string) (any, error) {
		return ntpath.Join(args[0], args[1:]...), nil
	}},
	"relpath": {Usage: "a path and an optional start", MinArgs: 1, MaxArgs: 2, run: func(ctx context.Context, env *Env, args []string) (any, error) {
		start := ""
		if len(args) > 1 {
			start = args[1]
		}
		return ntpath.RelPath(ctx, env.WorkingDir, args[0], start)
	}},
	"commonpath": {Usage: paths, MinArgs: 1, MaxArgs: -1, run: func(_ context.Context, _ *Env, args []string) (any, error) {
		return ntpath.CommonPath(args)
	}},
	"commonprefix": {Usage: anyPaths, MinArgs: 0, MaxArgs: -1, run: func(_ context.Context, _ *Env, args []string) (any, error) {
		return ntpath.CommonPrefix(args), nil
	}},
}

func init() {
	for name, c := range commands {
		c.Name = name
	}
}

// isMount makes relative paths absolute through the working directory so that
// mount points can be checked without a filesystem.
func isMount(ctx context.Context, env *Env, p string) (any, error) {
	if !ntpath.IsAbs(p) && env.WorkingDir != nil {
		abs, err := ntpath.AbsPath(ctx, env.WorkingDir, p)
		if err != nil {
			return nil, err
		}
		p = abs
	}
	return ntpath.IsMount(ctx, env.FS, p)
}

// Lookup returns the command called name.
func Lookup(name string) (*Command, error) {
	c, ok := commands[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	return c, nil
}

// Names returns the names of all commands in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
