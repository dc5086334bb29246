package vfs

import (
	"context"
	"io/fs"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/winpath/internal/testhelpers"
	"gitlab.com/gitlab-org/winpath/metrics"
	"gitlab.com/gitlab-org/winpath/ntpath"
)

type linksOnly struct {
	ntpath.FS
}

func operations(name, operation string, success bool) float64 {
	s := "false"
	if success {
		s = "true"
	}
	return testutil.ToFloat64(metrics.FSOperations.WithLabelValues(name, operation, s))
}

func TestInstrumentedCountsOperations(t *testing.T) {
	ctx := context.Background()
	arena := testhelpers.Arena(t, `C:\work`,
		testhelpers.Dir(`C:\work\dir`),
		testhelpers.Link(`C:\work\link`, `dir`),
	)
	fsys := Instrumented(arena, "counting")

	tests := map[string]struct {
		operation string
		call      func() error
		success   bool
	}{
		"getwd": {
			operation: "Getwd",
			call:      func() error { _, err := fsys.Getwd(ctx); return err },
			success:   true,
		},
		"is_symlink": {
			operation: "IsSymlink",
			call:      func() error { _, err := fsys.IsSymlink(ctx, `link`); return err },
			success:   true,
		},
		"is_symlink_missing": {
			operation: "IsSymlink",
			call:      func() error { _, err := fsys.IsSymlink(ctx, `nope`); return err },
			success:   false,
		},
		"readlink": {
			operation: "Readlink",
			call:      func() error { _, err := fsys.Readlink(ctx, `link`); return err },
			success:   true,
		},
		"final_path_name": {
			operation: "FinalPathName",
			call:      func() error { _, err := fsys.FinalPathName(ctx, `link`); return err },
			success:   true,
		},
		"volume_path_name": {
			operation: "VolumePathName",
			call:      func() error { _, err := fsys.VolumePathName(ctx, `dir`); return err },
			success:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			before := operations("counting", tt.operation, tt.success)

			err := tt.call()
			if tt.success {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, fs.ErrNotExist)
			}

			require.Equal(t, before+1, operations("counting", tt.operation, tt.success))
		})
	}
}

func TestInstrumentedOptionalMethods(t *testing.T) {
	ctx := context.Background()
	fsys := Instrumented(linksOnly{FS: testhelpers.Arena(t, `C:\`)}, "links-only")

	_, err := fsys.FinalPathName(ctx, `C:\`)
	require.ErrorIs(t, err, ntpath.ErrUnsupported)

	_, err = fsys.VolumePathName(ctx, `C:\`)
	require.ErrorIs(t, err, ntpath.ErrUnsupported)

	require.Zero(t, operations("links-only", "FinalPathName", false))
	require.Zero(t, operations("links-only", "VolumePathName", false))
}

func TestInstrumentedTracesCalls(t *testing.T) {
	hook := test.NewGlobal()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.TraceLevel)
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	fsys := Instrumented(testhelpers.Arena(t, `C:\`, testhelpers.Link(`C:\l`, `C:\x`)), "traced")
	target, err := fsys.Readlink(context.Background(), `C:\l`)
	require.NoError(t, err)
	require.Equal(t, `C:\x`, target)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.TraceLevel, entry.Level)
	require.Equal(t, "Readlink call", entry.Message)
	require.Equal(t, "traced", entry.Data["fs"])
	require.Equal(t, `C:\l`, entry.Data["path"])
	require.Equal(t, `C:\x`, entry.Data["ret-target"])
}

func TestInstrumentedResolvesLikeWrappedFS(t *testing.T) {
	ctx := context.Background()
	arena := testhelpers.Arena(t, `C:\work`,
		testhelpers.File(`C:\data\f`),
		testhelpers.Link(`C:\work\a`, `..\data`),
		testhelpers.Link(`C:\work\loop`, `loop`),
	)
	fsys := Instrumented(arena, "resolving")

	for _, p := range []string{`a\f`, `a\missing\..\f`, `loop\x`, `NUL`, `C:\`} {
		want, err := ntpath.RealPath(ctx, arena, p)
		require.NoError(t, err)

		got, err := ntpath.RealPath(ctx, fsys, p)
		require.NoError(t, err)
		require.Equal(t, want, got, p)
	}

	mount, err := ntpath.IsMount(ctx, fsys, `C:\work`)
	require.NoError(t, err)
	require.False(t, mount)
}
