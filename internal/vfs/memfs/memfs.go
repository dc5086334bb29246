package memfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gitlab.com/gitlab-org/winpath/ntpath"
)

// maxSymlinkHops mirrors the reparse point limit of Windows.
const maxSymlinkHops = 63

var (
	errNotDirectory = errors.New("not a directory")
	errInvalidKind  = errors.New("invalid entry kind")
	errNotQualified = errors.New("path must be below a drive or share")
)

// Kind is the type of an arena entry.
type Kind string

const (
	KindDir     Kind = "dir"
	KindFile    Kind = "file"
	KindSymlink Kind = "symlink"
	// KindMount is a directory that is the root of a mounted volume.
	KindMount Kind = "mount"
)

type entry struct {
	// name is the full path with the spelling it was created with.
	name   string
	kind   Kind
	target string
}

func (e *entry) isDir() bool {
	// a nil entry is an anchor
	return e == nil || e.kind == KindDir || e.kind == KindMount
}

// FS is an in-memory filesystem arena. Lookups ignore ASCII case and accept
// both separators and the `\\?\` prefix. Drive roots and UNC shares always
// exist. Without the prefix, trailing dots and spaces of a component are
// ignored as Windows does.
type FS struct {
	mu      sync.RWMutex
	cwd     string
	entries map[string]*entry
}

// New returns an empty arena whose working directory is cwd.
func New(cwd string) *FS {
	return &FS{
		cwd:     cwd,
		entries: make(map[string]*entry),
	}
}

// Name identifies the arena in metrics and logs.
func (f *FS) Name() string {
	return "memfs"
}

func stripVerbatimPrefix(p string) string {
	switch {
	case len(p) >= len(`\\?\UNC\`) && strings.EqualFold(p[:len(`\\?\UNC\`)], `\\?\UNC\`):
		return `\\` + p[len(`\\?\UNC\`):]
	case strings.HasPrefix(p, `\\?\`):
		return p[len(`\\?\`):]
	}
	return p
}

func addVerbatimPrefix(p string) string {
	if prefix, _ := ntpath.SplitPrefix(p); prefix != "" {
		return p
	}
	if drive, _ := ntpath.SplitDrive(p); len(drive) > 2 {
		return `\\?\UNC\` + p[2:]
	}
	return `\\?\` + p
}

func joinName(parent, name string) string {
	if strings.HasSuffix(parent, `\`) {
		return parent + name
	}
	return parent + `\` + name
}

// split returns the anchor and the components of the normalized absolute
// form of p.
func (f *FS) split(p string) (string, []string, error) {
	abs, err := ntpath.AbsPath(context.Background(), ntpath.StaticWorkingDir(f.cwd), stripVerbatimPrefix(p))
	if err != nil {
		return "", nil, err
	}
	anchor, rest := ntpath.SplitAnchor(abs)
	if anchor == "" {
		return "", nil, errNotQualified
	}
	if len(anchor) >= 2 && anchor[1] == ':' {
		anchor = strings.ToUpper(anchor[:1]) + anchor[1:]
	}
	if rest == "" {
		return anchor, nil, nil
	}

	comps := strings.Split(rest, `\`)
	if !strings.HasPrefix(p, `\\?\`) {
		// Win32 names lose trailing dots and spaces, verbatim names keep them
		for i, c := range comps {
			if trimmed := strings.TrimRight(c, ". "); trimmed != "" {
				comps[i] = trimmed
			}
		}
	}
	return anchor, comps, nil
}

func (f *FS) add(p string, kind Kind, target string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	anchor, comps, err := f.split(p)
	if err != nil {
		return &fs.PathError{Op: "create", Path: p, Err: err}
	}
	if len(comps) == 0 {
		return &fs.PathError{Op: "create", Path: p, Err: fs.ErrExist}
	}

	parent := anchor
	for i, c := range comps {
		name := joinName(parent, c)
		key := ntpath.NormCase(name)
		e, ok := f.entries[key]
		last := i == len(comps)-1

		switch {
		case !ok && last:
			f.entries[key] = &entry{name: name, kind: kind, target: target}
			return nil
		case !ok:
			f.entries[key] = &entry{name: name, kind: KindDir}
			parent = name
		case last:
			if e.kind == kind && e.isDir() {
				return nil
			}
			return &fs.PathError{Op: "create", Path: p, Err: fs.ErrExist}
		case !e.isDir():
			return &fs.PathError{Op: "create", Path: p, Err: errNotDirectory}
		default:
			parent = e.name
		}
	}
	return nil
}

// Mkdir creates a directory and any missing parents.
func (f *FS) Mkdir(path string) error {
	return f.add(path, KindDir, "")
}

// Mount creates a directory that is reported as a volume mount point.
func (f *FS) Mount(path string) error {
	return f.add(path, KindMount, "")
}

// WriteFile creates an empty file and any missing parents.
func (f *FS) WriteFile(path string) error {
	return f.add(path, KindFile, "")
}

// Symlink creates link pointing at target. The target is stored verbatim and
// need not exist.
func (f *FS) Symlink(target, link string) error {
	return f.add(link, KindSymlink, target)
}

// Chdir changes the working directory reported by Getwd.
func (f *FS) Chdir(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cwd = path
}

// lookup walks p through the arena. Links in intermediate components are
// always followed; the last component is followed only with followLast. It
// returns the spelling of the path reached and its entry, nil for an anchor.
func (f *FS) lookup(p string, followLast bool, hops *int) (string, *entry, error) {
	anchor, comps, err := f.split(p)
	if err != nil {
		return "", nil, err
	}

	current := anchor
	var e *entry
	for i, c := range comps {
		if !e.isDir() {
			return "", nil, fs.ErrNotExist
		}
		e = f.entries[ntpath.NormCase(joinName(current, c))]
		if e == nil {
			return "", nil, fs.ErrNotExist
		}

		last := i == len(comps)-1
		if e.kind != KindSymlink || last && !followLast {
			current = e.name
			continue
		}

		*hops++
		if *hops > maxSymlinkHops {
			return "", nil, ntpath.ErrLinkLoop
		}
		target := e.target
		if prefix, _ := ntpath.SplitPrefix(target); prefix == "" {
			target = ntpath.Join(current, target)
		}
		current, e, err = f.lookup(target, true, hops)
		if err != nil {
			return "", nil, err
		}
	}
	return current, e, nil
}

func (f *FS) lstat(op, path string) (*entry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var hops int
	_, e, err := f.lookup(path, false, &hops)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: path, Err: err}
	}
	return e, nil
}

// Getwd returns the working directory the arena was created with.
func (f *FS) Getwd(ctx context.Context) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.cwd == "" {
		return "", ntpath.ErrNoWorkingDir
	}
	return f.cwd, nil
}

func (f *FS) IsSymlink(ctx context.Context, path string) (bool, error) {
	e, err := f.lstat("lstat", path)
	if err != nil {
		return false, err
	}
	return e != nil && e.kind == KindSymlink, nil
}

func (f *FS) Readlink(ctx context.Context, path string) (string, error) {
	e, err := f.lstat("readlink", path)
	if err != nil {
		return "", err
	}
	if e == nil || e.kind != KindSymlink {
		return "", &fs.PathError{Op: "readlink", Path: path, Err: ntpath.ErrNotALink}
	}
	return e.target, nil
}

// FinalPathName follows every link in path and returns the result with the
// spelling of the arena, behind a `\\?\` prefix.
func (f *FS) FinalPathName(ctx context.Context, path string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var hops int
	final, _, err := f.lookup(path, true, &hops)
	if err != nil {
		return "", &fs.PathError{Op: "open", Path: path, Err: err}
	}
	return addVerbatimPrefix(final), nil
}

// VolumePathName returns the closest mount point above path, or its drive
// root.
func (f *FS) VolumePathName(ctx context.Context, path string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var hops int
	final, _, err := f.lookup(path, true, &hops)
	if err != nil {
		return "", &fs.PathError{Op: "GetVolumePathName", Path: path, Err: err}
	}

	for p := final; ; {
		if e := f.entries[ntpath.NormCase(p)]; e != nil && e.kind == KindMount {
			return p + `\`, nil
		}
		parent := ntpath.Dirname(p)
		if parent == p {
			return joinName(parent, ""), nil
		}
		p = parent
	}
}

// Add creates the entry described by e.
func (f *FS) Add(e Entry) error {
	switch e.Kind {
	case KindDir:
		return f.Mkdir(e.Path)
	case KindMount:
		return f.Mount(e.Path)
	case KindFile:
		return f.WriteFile(e.Path)
	case KindSymlink:
		if e.Target == "" {
			return fmt.Errorf("symlink %q: empty target", e.Path)
		}
		return f.Symlink(e.Target, e.Path)
	}
	return fmt.Errorf("%w: %q", errInvalidKind, e.Kind)
}
