package ntpath

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/winpath/metrics"
)

// Resolver canonicalizes paths against a filesystem.
type Resolver struct {
	fs          FS
	stripPrefix bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithPrefixStripping removes the `\\?\` prefix from a final path name again
// when the input had no prefix and the unprefixed form names the same file.
func WithPrefixStripping() ResolverOption {
	return func(r *Resolver) {
		r.stripPrefix = true
	}
}

// NewResolver returns a Resolver querying fsys. A nil fsys makes every
// resolution fall back to NormPath and report ErrDegraded.
func NewResolver(fsys FS, opts ...ResolverOption) *Resolver {
	r := &Resolver{fs: fsys}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RealPath resolves p against fsys with default options.
func RealPath[P Path](ctx context.Context, fsys FS, p P) (P, error) {
	return Resolve(ctx, NewResolver(fsys), p)
}

// Resolve is Resolver.Resolve for either encoding. On ErrDegraded the
// lexically normalized path is returned alongside the error.
func Resolve[P Path](ctx context.Context, r *Resolver, p P) (P, error) {
	resolved, err := r.Resolve(ctx, string(p))
	if err != nil && !errors.Is(err, ErrDegraded) {
		var zero P
		return zero, err
	}
	return P(resolved), err
}

// Resolve returns the canonical form of path: absolute, normalized, with
// every symbolic link that could be followed replaced by its target.
//
// Missing components and link cycles are not errors. The part of the path
// from the first missing component, or from the link that closes a cycle, is
// appended without further queries. Only when the walk ended on an existing
// path is the filesystem asked for its final path name; a path with a missing
// component is returned without a `\\?\` prefix.
func (r *Resolver) Resolve(ctx context.Context, path string) (string, error) {
	if r == nil || r.fs == nil {
		metrics.RealPathTotal.WithLabelValues("degraded").Inc()
		log.WithField("path", path).Debug("resolving path without filesystem")
		return normPath(path), ErrDegraded
	}
	if equalFold(normPath(path), "nul") {
		metrics.RealPathTotal.WithLabelValues("device").Inc()
		return devicePrefix + "NUL", nil
	}

	start := time.Now()
	defer func() {
		metrics.RealPathDuration.Observe(time.Since(start).Seconds())
	}()

	w := &walker{fs: r.fs, seen: make(map[string]struct{})}
	resolved, state, err := w.walk(ctx, path)
	if err != nil {
		metrics.RealPathTotal.WithLabelValues("error").Inc()
		return "", err
	}

	switch state {
	case walkMissing:
		metrics.RealPathTotal.WithLabelValues("missing").Inc()
		return resolved, nil
	case walkCycle:
		final, err := r.cyclePath(ctx, resolved)
		if err != nil {
			metrics.RealPathTotal.WithLabelValues("error").Inc()
			return "", err
		}
		metrics.RealPathTotal.WithLabelValues("cycle").Inc()
		return final, nil
	}
	if strings.HasPrefix(resolved, devicePrefix) {
		// device paths have no final path name
		metrics.RealPathTotal.WithLabelValues("device").Inc()
		return resolved, nil
	}

	final, err := r.finalPath(ctx, path, resolved)
	if err != nil {
		metrics.RealPathTotal.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.RealPathTotal.WithLabelValues("resolved").Inc()
	return final, nil
}

// cyclePath returns the member of a cycle a walk stopped at. Filesystems that
// answer FinalPathName get it with a `\\?\` prefix like any other result,
// even though they cannot resolve it themselves.
func (r *Resolver) cyclePath(ctx context.Context, resolved string) (string, error) {
	namer, ok := r.fs.(FinalPathNamer)
	if !ok {
		return resolved, nil
	}

	final, err := namer.FinalPathName(ctx, resolved)
	switch {
	case err == nil:
		return addVerbatimPrefix(final), nil
	case errors.Is(err, ErrUnsupported):
		return resolved, nil
	case errors.Is(err, ErrLinkLoop), errors.Is(err, fs.ErrNotExist):
		return addVerbatimPrefix(resolved), nil
	}
	return "", err
}

func (r *Resolver) finalPath(ctx context.Context, input, resolved string) (string, error) {
	namer, ok := r.fs.(FinalPathNamer)
	if !ok {
		return resolved, nil
	}

	final, err := namer.FinalPathName(ctx, resolved)
	switch {
	case errors.Is(err, ErrUnsupported), errors.Is(err, fs.ErrNotExist):
		return resolved, nil
	case err != nil:
		return "", err
	}
	final = addVerbatimPrefix(final)

	if r.stripPrefix && prefixLen(input) == 0 {
		stripped := stripVerbatimPrefix(final)
		if again, err := namer.FinalPathName(ctx, stripped); err == nil && addVerbatimPrefix(again) == final {
			return stripped, nil
		}
	}
	return final, nil
}

func addVerbatimPrefix(p string) string {
	switch {
	case prefixLen(p) > 0:
		return p
	case isUNCDrive(p[:driveLen(p)]):
		return verbatimUNCPrefix + p[2:]
	}
	return verbatimPrefix + p
}

func stripVerbatimPrefix(p string) string {
	switch {
	case hasPrefixFold(p, verbatimUNCPrefix):
		return `\\` + p[len(verbatimUNCPrefix):]
	case strings.HasPrefix(p, verbatimPrefix):
		return p[len(verbatimPrefix):]
	}
	return p
}

// step is one entry of the walk queue. A step with a non-empty done field
// carries no component: it marks the end of the expansion of the link whose
// key it holds.
type step struct {
	name    string
	literal bool
	done    string
}

func splitSteps(rest string, literal bool) []step {
	var names []string
	if literal {
		names = strings.Split(rest, string(Sep))
	} else {
		names = components(rest)
	}

	steps := make([]step, 0, len(names))
	for _, name := range names {
		if name == "" || !literal && name == curdir {
			continue
		}
		steps = append(steps, step{name: name, literal: literal})
	}
	return steps
}

// splitAnchor splits p into its anchor and the steps below it. Separators of
// an anchor without a special prefix are normalized.
func splitAnchor(p string) (string, []step) {
	n := anchorLen(p)
	if prefixLen(p) > 0 {
		return p[:n], splitSteps(p[n:], true)
	}
	return strings.ReplaceAll(p[:n], string(AltSep), string(Sep)), splitSteps(p[n:], false)
}

func build(anchor string, comps []string) string {
	if len(comps) == 0 {
		return anchor
	}
	if anchor != "" && anchor[len(anchor)-1] != Sep {
		return anchor + string(Sep) + strings.Join(comps, string(Sep))
	}
	return anchor + strings.Join(comps, string(Sep))
}

type walkState int

const (
	// walkResolved means every component was queried.
	walkResolved walkState = iota
	// walkMissing means the walk stopped querying at a missing component.
	walkMissing
	// walkCycle means the walk stopped querying at a link cycle.
	walkCycle
)

type walker struct {
	fs FS
	// seen holds the keys of the links whose expansion is still queued.
	seen map[string]struct{}
}

// walk resolves path component by component.
func (w *walker) walk(ctx context.Context, path string) (string, walkState, error) {
	qualified, err := qualify(ctx, w.fs, path)
	if err != nil {
		return "", walkResolved, err
	}

	anchor, queue := splitAnchor(qualified)
	var comps []string
	// unchecked is the number of components below which queries are still
	// made, or -1 while every component is queried.
	unchecked := -1
	state := walkResolved

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		if s.done != "" {
			delete(w.seen, s.done)
			continue
		}
		if !s.literal && s.name == pardir {
			if len(comps) > 0 {
				comps = comps[:len(comps)-1]
			}
			if unchecked >= 0 && len(comps) <= unchecked {
				unchecked = -1
				state = walkResolved
			}
			continue
		}

		comps = append(comps, s.name)
		if unchecked >= 0 {
			continue
		}

		current := build(anchor, comps)
		isLink, err := w.fs.IsSymlink(ctx, current)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return "", walkResolved, err
			}
			if len(w.seen) > 0 {
				metrics.BrokenSymlinks.Inc()
				log.WithField("path", current).Debug("symbolic link target does not exist")
			}
			unchecked = len(comps) - 1
			state = walkMissing
			continue
		}
		if !isLink {
			continue
		}

		key := fold(current)
		if _, ok := w.seen[key]; ok {
			metrics.SymlinkCycles.Inc()
			log.WithField("path", current).Debug("symbolic link cycle detected")
			queue = w.discardExpansion(queue, key)
			unchecked = len(comps) - 1
			state = walkCycle
			continue
		}

		target, err := w.fs.Readlink(ctx, current)
		if err != nil {
			if errors.Is(err, ErrNotALink) || errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", walkResolved, err
		}
		metrics.SymlinksFollowed.Inc()
		w.seen[key] = struct{}{}

		var targetSteps []step
		anchor, comps, targetSteps = expandTarget(anchor, comps[:len(comps)-1], target)
		expansion := make([]step, 0, len(targetSteps)+1+len(queue))
		expansion = append(expansion, targetSteps...)
		expansion = append(expansion, step{done: key})
		queue = append(expansion, queue...)
	}

	return build(anchor, comps), state, nil
}

// discardExpansion drops the queued steps up to and including the end
// marker of key, forgetting every link whose marker is dropped with them.
func (w *walker) discardExpansion(queue []step, key string) []step {
	for i, s := range queue {
		if s.done == "" {
			continue
		}
		delete(w.seen, s.done)
		if s.done == key {
			return queue[i+1:]
		}
	}
	return nil
}

// expandTarget returns the anchor and components a link target is resolved
// against, and the steps of the target itself. parent holds the components
// of the directory containing the link.
func expandTarget(anchor string, parent []string, target string) (string, []string, []step) {
	switch {
	case isFullyQualified(target):
		a, steps := splitAnchor(target)
		return a, nil, steps
	case driveLen(target) > 0:
		n := driveLen(target)
		return target[:n] + string(Sep), nil, splitSteps(target[n:], false)
	case target != "" && isSep(target[0]):
		return anchor, nil, splitSteps(target, false)
	}
	return anchor, parent, splitSteps(target, false)
}
