package ntpath

import (
	"context"
	"fmt"
)

// qualify joins p onto the working directory unless it is fully qualified.
// The result is not normalized. A drive-relative path on another drive than
// the working directory is rooted at that drive.
func qualify(ctx context.Context, wd WorkingDir, p string) (string, error) {
	if isFullyQualified(p) {
		return p, nil
	}
	if wd == nil {
		if isAbs(p) {
			return p, nil
		}
		return "", fmt.Errorf("%w: cannot make %q absolute", ErrNoWorkingDir, p)
	}

	cwd, err := wd.Getwd(ctx)
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	joined := join(cwd, []string{p})
	if drive, root := rootLen(joined); drive > 0 && root == 0 && !isUNCDrive(joined[:drive]) {
		joined = joined[:drive] + string(Sep) + joined[drive:]
	}
	return joined, nil
}

func absPath(ctx context.Context, wd WorkingDir, p string) (string, error) {
	q, err := qualify(ctx, wd, p)
	if err != nil {
		return "", err
	}
	return normPath(q), nil
}

// AbsPath returns a normalized absolute version of p. Paths that lack a drive
// or a root take them from wd; a nil wd is only acceptable for paths that
// already have a root.
func AbsPath[P Path](ctx context.Context, wd WorkingDir, p P) (P, error) {
	abs, err := absPath(ctx, wd, string(p))
	if err != nil {
		var zero P
		return zero, err
	}
	return P(abs), nil
}
