package ntpath

import (
	"context"
	"fmt"
	"strings"
)

// components splits p on both separators and drops empty components.
func components(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r == Sep || r == AltSep
	})
}

func relPath(ctx context.Context, wd WorkingDir, path, start string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	if start == "" {
		start = curdir
	}

	startAbs, err := absPath(ctx, wd, start)
	if err != nil {
		return "", err
	}
	pathAbs, err := absPath(ctx, wd, path)
	if err != nil {
		return "", err
	}

	startDrive, startRest := splitDrive(startAbs)
	pathDrive, pathRest := splitDrive(pathAbs)
	if !equalFold(startDrive, pathDrive) {
		return "", fmt.Errorf("%w: path is on mount %q, start on mount %q", ErrIncompatibleRoots, pathDrive, startDrive)
	}

	startList := components(startRest)
	pathList := components(pathRest)
	i := 0
	for i < len(startList) && i < len(pathList) && equalFold(startList[i], pathList[i]) {
		i++
	}

	rel := make([]string, 0, len(startList)-i+len(pathList)-i)
	for range startList[i:] {
		rel = append(rel, pardir)
	}
	rel = append(rel, pathList[i:]...)
	if len(rel) == 0 {
		return curdir, nil
	}
	return strings.Join(rel, string(Sep)), nil
}

type splitPath struct {
	drive string
	abs   bool
	comps []string
}

func commonPath(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ErrEmptyInput
	}

	split := make([]splitPath, len(paths))
	for i, p := range paths {
		drive, rest := commonDrive(strings.ReplaceAll(p, string(AltSep), string(Sep)))
		sp := splitPath{drive: drive, abs: strings.HasPrefix(rest, string(Sep))}
		for _, c := range strings.Split(rest, string(Sep)) {
			if c != "" && c != curdir {
				sp.comps = append(sp.comps, c)
			}
		}
		split[i] = sp
	}

	first := split[0]
	for _, sp := range split[1:] {
		if sp.abs != first.abs {
			return "", fmt.Errorf("%w: can't mix absolute and relative paths", ErrIncompatiblePaths)
		}
	}
	for _, sp := range split[1:] {
		if !equalFold(sp.drive, first.drive) {
			return "", fmt.Errorf("%w: paths don't have the same drive", ErrIncompatiblePaths)
		}
	}

	n := len(first.comps)
	for _, sp := range split[1:] {
		i := 0
		for i < n && i < len(sp.comps) && equalFold(first.comps[i], sp.comps[i]) {
			i++
		}
		n = i
	}

	prefix := first.drive
	if first.abs {
		prefix += string(Sep)
	}
	return prefix + strings.Join(first.comps[:n], string(Sep)), nil
}

// commonDrive splits p like splitDrive but keeps a verbatim or device
// prefix, together with whatever it names, as the drive.
func commonDrive(p string) (string, string) {
	if prefixLen(p) == 0 {
		return splitDrive(p)
	}
	n := anchorLen(p)
	if n > len(verbatimPrefix) && p[n-1] == Sep {
		n--
	}
	return p[:n], p[n:]
}

func commonPrefixLen(paths []string) int {
	if len(paths) == 0 {
		return 0
	}
	n := len(paths[0])
	for _, p := range paths[1:] {
		if len(p) < n {
			n = len(p)
		}
		for i := 0; i < n; i++ {
			if p[i] != paths[0][i] {
				n = i
				break
			}
		}
	}
	return n
}

func toStrings[P Path](paths []P) []string {
	s := make([]string, len(paths))
	for i, p := range paths {
		s[i] = string(p)
	}
	return s
}

// RelPath returns path relative to start, which defaults to the working
// directory when empty. Both are made absolute through wd first and compared
// case-insensitively. Paths on different drives fail with
// ErrIncompatibleRoots.
func RelPath[P Path](ctx context.Context, wd WorkingDir, path, start P) (P, error) {
	rel, err := relPath(ctx, wd, string(path), string(start))
	if err != nil {
		var zero P
		return zero, err
	}
	return P(rel), nil
}

// CommonPath returns the longest common sub-path of paths, taking drive and
// component spelling from the first one. `.` components are ignored and `..`
// is compared literally.
func CommonPath[P Path](paths []P) (P, error) {
	common, err := commonPath(toStrings(paths))
	if err != nil {
		var zero P
		return zero, err
	}
	return P(common), nil
}

// CommonPrefix returns the longest character-wise prefix shared by all paths.
// The result need not be a valid path.
func CommonPrefix[P Path](paths []P) P {
	if len(paths) == 0 {
		var zero P
		return zero
	}
	return paths[0][:commonPrefixLen(toStrings(paths))]
}
