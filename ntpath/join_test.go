package ntpath_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/winpath/ntpath"
)

func joinBytes(base string, parts ...string) string {
	bparts := make([][]byte, len(parts))
	for i, p := range parts {
		bparts[i] = []byte(p)
	}
	return string(ntpath.Join([]byte(base), bparts...))
}

func TestJoin(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{parts: []string{``}, want: ``},
		{parts: []string{``, ``, ``}, want: ``},
		{parts: []string{`a`}, want: `a`},
		{parts: []string{`/a`}, want: `/a`},
		{parts: []string{`\a`}, want: `\a`},
		{parts: []string{`a:`}, want: `a:`},
		{parts: []string{`a:`, `\b`}, want: `a:\b`},
		{parts: []string{`a`, `\b`}, want: `\b`},
		{parts: []string{`a`, `b`, `c`}, want: `a\b\c`},
		{parts: []string{`a\`, `b`, `c`}, want: `a\b\c`},
		{parts: []string{`a`, `b\`, `c`}, want: `a\b\c`},
		{parts: []string{`a`, `b`, `\c`}, want: `\c`},
		{parts: []string{`d:\`, `\pleep`}, want: `d:\pleep`},
		{parts: []string{`d:\`, `a`, `b`}, want: `d:\a\b`},

		{parts: []string{``, `a`}, want: `a`},
		{parts: []string{``, ``, ``, ``, `a`}, want: `a`},
		{parts: []string{`a`, ``}, want: `a\`},
		{parts: []string{`a`, ``, ``, ``, ``}, want: `a\`},
		{parts: []string{`a\`, ``}, want: `a\`},
		{parts: []string{`a\`, ``, ``, ``, ``}, want: `a\`},
		{parts: []string{`a/`, ``}, want: `a/`},

		{parts: []string{`a/b`, `x/y`}, want: `a/b\x/y`},
		{parts: []string{`/a/b`, `x/y`}, want: `/a/b\x/y`},
		{parts: []string{`/a/b/`, `x/y`}, want: `/a/b/x/y`},
		{parts: []string{`c:`, `x/y`}, want: `c:x/y`},
		{parts: []string{`c:a/b`, `x/y`}, want: `c:a/b\x/y`},
		{parts: []string{`c:a/b/`, `x/y`}, want: `c:a/b/x/y`},
		{parts: []string{`c:/`, `x/y`}, want: `c:/x/y`},
		{parts: []string{`c:/a/b`, `x/y`}, want: `c:/a/b\x/y`},
		{parts: []string{`c:/a/b/`, `x/y`}, want: `c:/a/b/x/y`},
		{parts: []string{`//computer/share`, `x/y`}, want: `//computer/share\x/y`},
		{parts: []string{`//computer/share/`, `x/y`}, want: `//computer/share/x/y`},
		{parts: []string{`//computer/share/a/b`, `x/y`}, want: `//computer/share/a/b\x/y`},

		{parts: []string{`a/b`, `/x/y`}, want: `/x/y`},
		{parts: []string{`/a/b`, `/x/y`}, want: `/x/y`},
		{parts: []string{`c:`, `/x/y`}, want: `c:/x/y`},
		{parts: []string{`c:a/b`, `/x/y`}, want: `c:/x/y`},
		{parts: []string{`c:/`, `/x/y`}, want: `c:/x/y`},
		{parts: []string{`c:/a/b`, `/x/y`}, want: `c:/x/y`},
		{parts: []string{`//computer/share`, `/x/y`}, want: `//computer/share/x/y`},
		{parts: []string{`//computer/share/`, `/x/y`}, want: `//computer/share/x/y`},
		{parts: []string{`//computer/share/a`, `/x/y`}, want: `//computer/share/x/y`},

		{parts: []string{`c:`, `C:x/y`}, want: `C:x/y`},
		{parts: []string{`c:a/b`, `C:x/y`}, want: `C:a/b\x/y`},
		{parts: []string{`c:/`, `C:x/y`}, want: `C:/x/y`},
		{parts: []string{`c:/a/b`, `C:x/y`}, want: `C:/a/b\x/y`},

		{parts: []string{`\\computer\share\`, `a`, `b`}, want: `\\computer\share\a\b`},
		{parts: []string{`\\computer\share`, `a`, `b`}, want: `\\computer\share\a\b`},
		{parts: []string{`\\computer\share`, `a\b`}, want: `\\computer\share\a\b`},
		{parts: []string{`//computer/share/`, `a`, `b`}, want: `//computer/share/a\b`},
		{parts: []string{`//computer/share`, `a`, `b`}, want: `//computer/share\a\b`},
		{parts: []string{`//computer/share`, `a/b`}, want: `//computer/share\a/b`},

		{parts: []string{`c:/a/b`, `d:/x/y`}, want: `d:/x/y`},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.parts), func(t *testing.T) {
			require.Equal(t, tt.want, ntpath.Join(tt.parts[0], tt.parts[1:]...))
			require.Equal(t, tt.want, joinBytes(tt.parts[0], tt.parts[1:]...))
		})
	}
}

func TestJoinOtherDriveDiscardsBase(t *testing.T) {
	bases := []string{``, `a/b`, `/a/b`, `c:`, `c:a/b`, `c:/`, `c:/a/b`,
		`//computer/share`, `//computer/share/`, `//computer/share/a/b`}
	parts := []string{`d:`, `d:x/y`, `d:/`, `d:/x/y`,
		`//machine/common`, `//machine/common/`, `//machine/common/x/y`}

	for _, base := range bases {
		for _, part := range parts {
			require.Equal(t, part, ntpath.Join(base, part), "join(%q, %q)", base, part)
			require.Equal(t, part, joinBytes(base, part), "join(%q, %q)", base, part)
		}
	}
}

func TestNormPath(t *testing.T) {
	tests := map[string]struct {
		path string
		want string
	}{
		"collapse_separators":        {path: `A//////././//.//B`, want: `A\B`},
		"drop_curdir":                {path: `A/./B`, want: `A\B`},
		"pop_pardir":                 {path: `A/foo/../B`, want: `A\B`},
		"drive_relative":             {path: `C:A//B`, want: `C:A\B`},
		"drive_relative_curdir":      {path: `D:A/./B`, want: `D:A\B`},
		"drive_relative_pardir":      {path: `e:A/foo/../B`, want: `e:A\B`},
		"drive_root":                 {path: `C:///A//B`, want: `C:\A\B`},
		"drive_root_curdir":          {path: `D:///A/./B`, want: `D:\A\B`},
		"drive_root_pardir":          {path: `e:///A/foo/../B`, want: `e:\A\B`},
		"pardir":                     {path: `..`, want: `..`},
		"curdir":                     {path: `.`, want: `.`},
		"empty":                      {path: ``, want: `.`},
		"root":                       {path: `/`, want: `\`},
		"drive_root_only":            {path: `c:/`, want: `c:\`},
		"pardir_above_root":          {path: `/../.././..`, want: `\`},
		"pardir_above_drive_root":    {path: `c:/../../..`, want: `c:\`},
		"leading_pardirs":            {path: `../.././..`, want: `..\..\..`},
		"drive_relative_pardirs":     {path: `K:../.././..`, want: `K:..\..\..`},
		"drive_root_many_separators": {path: `C:////a/b`, want: `C:\a\b`},
		"unc":                        {path: `//machine/share//a/b`, want: `\\machine\share\a\b`},
		"drive_only":                 {path: `C:`, want: `C:`},
		"device":                     {path: `\\.\NUL`, want: `\\.\NUL`},
		"verbatim_untouched":         {path: `\\?\D:/XY\Z`, want: `\\?\D:/XY\Z`},
		"verbatim_dots_untouched":    {path: `\\?\C:\a\..\.\b`, want: `\\?\C:\a\..\.\b`},
		"pardir_after_pardir":        {path: `a/../../b`, want: `..\b`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, ntpath.NormPath(tt.path))
			require.Equal(t, tt.want, string(ntpath.NormPath([]byte(tt.path))))
		})
	}
}

func TestNormPathIsIdempotent(t *testing.T) {
	paths := []string{`A//B/../C`, `c:/../x`, `//machine/share//a/..`, `../a/./b/..`, ``, `\\?\C:\x\..`}

	for _, p := range paths {
		once := ntpath.NormPath(p)
		require.Equal(t, once, ntpath.NormPath(once), p)
	}
}
