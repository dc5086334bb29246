package ntpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/winpath/ntpath"
)

func TestSplit(t *testing.T) {
	tests := map[string]struct {
		path string
		head string
		tail string
	}{
		"drive":             {path: `c:\foo\bar`, head: `c:\foo\`, tail: `bar`},
		"unc":               {path: `\\conky\mountpoint\foo\bar`, head: `\\conky\mountpoint\foo\`, tail: `bar`},
		"drive_root":        {path: `c:\`, head: `c:\`, tail: ``},
		"unc_root":          {path: `\\conky\mountpoint\`, head: `\\conky\mountpoint\`, tail: ``},
		"drive_root_fwd":    {path: `c:/`, head: `c:/`, tail: ``},
		"unc_root_fwd":      {path: `//conky/mountpoint/`, head: `//conky/mountpoint/`, tail: ``},
		"drive_relative":    {path: `c:foo`, head: `c:`, tail: `foo`},
		"trailing_sep":      {path: `foo\bar\`, head: `foo\bar\`, tail: ``},
		"repeated_seps":     {path: `foo\\\bar`, head: `foo\\\`, tail: `bar`},
		"no_separator":      {path: `foo`, head: ``, tail: `foo`},
		"empty":             {path: ``, head: ``, tail: ``},
		"rooted":            {path: `\foo`, head: `\`, tail: `foo`},
		"mixed_separators":  {path: `a/b\c`, head: `a/b\`, tail: `c`},
		"unc_without_share": {path: `\\conky`, head: `\\`, tail: `conky`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			head, tail := ntpath.Split(tt.path)
			require.Equal(t, tt.head, head)
			require.Equal(t, tt.tail, tail)
			require.Equal(t, tt.path, head+tail)

			bhead, btail := ntpath.Split([]byte(tt.path))
			require.Equal(t, tt.head, string(bhead))
			require.Equal(t, tt.tail, string(btail))

			require.Equal(t, tt.tail, ntpath.Basename(tt.path))
		})
	}
}

func TestDirname(t *testing.T) {
	tests := map[string]struct {
		path string
		dir  string
	}{
		"drive":          {path: `c:\foo\bar`, dir: `c:\foo`},
		"drive_root":     {path: `c:\`, dir: `c:\`},
		"drive_child":    {path: `c:\foo`, dir: `c:\`},
		"unc":            {path: `\\conky\mountpoint\foo\bar`, dir: `\\conky\mountpoint\foo`},
		"unc_child":      {path: `\\conky\mountpoint\foo`, dir: `\\conky\mountpoint\`},
		"repeated_seps":  {path: `foo\\\bar`, dir: `foo`},
		"only_seps":      {path: `\\\`, dir: `\\\`},
		"relative":       {path: `foo`, dir: ``},
		"drive_relative": {path: `c:foo`, dir: `c:`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.dir, ntpath.Dirname(tt.path))
			require.Equal(t, tt.dir, string(ntpath.Dirname([]byte(tt.path))))
		})
	}
}

func TestSplitExt(t *testing.T) {
	tests := map[string]struct {
		path string
		root string
		ext  string
	}{
		"simple":            {path: `foo.ext`, root: `foo`, ext: `.ext`},
		"rooted":            {path: `/foo/foo.ext`, root: `/foo/foo`, ext: `.ext`},
		"leading_dot":       {path: `.ext`, root: `.ext`, ext: ``},
		"dot_in_dir":        {path: `\foo.ext\foo`, root: `\foo.ext\foo`, ext: ``},
		"trailing_sep":      {path: `foo.ext\`, root: `foo.ext\`, ext: ``},
		"empty":             {path: ``, root: ``, ext: ``},
		"two_dots":          {path: `foo.bar.ext`, root: `foo.bar`, ext: `.ext`},
		"forward_dir":       {path: `xx/foo.bar.ext`, root: `xx/foo.bar`, ext: `.ext`},
		"backward_dir":      {path: `xx\foo.bar.ext`, root: `xx\foo.bar`, ext: `.ext`},
		"drive_relative":    {path: `c:a/b\c.d`, root: `c:a/b\c`, ext: `.d`},
		"many_leading_dots": {path: `...ext`, root: `...ext`, ext: ``},
		"dots_then_ext":     {path: `..a.ext`, root: `..a`, ext: `.ext`},
		"trailing_dot":      {path: `foo.`, root: `foo`, ext: `.`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, ext := ntpath.SplitExt(tt.path)
			require.Equal(t, tt.root, root)
			require.Equal(t, tt.ext, ext)

			broot, bext := ntpath.SplitExt([]byte(tt.path))
			require.Equal(t, tt.root, string(broot))
			require.Equal(t, tt.ext, string(bext))
		})
	}
}
