package testhelpers

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/winpath/internal/vfs/memfs"
)

// Arena builds an in-memory filesystem with working directory cwd
func Arena(tb testing.TB, cwd string, entries ...memfs.Entry) *memfs.FS {
	tb.Helper()

	fsys := memfs.New(cwd)
	for _, e := range entries {
		require.NoError(tb, fsys.Add(e), "adding %s %q", e.Kind, e.Path)
	}

	return fsys
}

// Dir is a directory entry for Arena
func Dir(path string) memfs.Entry {
	return memfs.Entry{Path: path, Kind: memfs.KindDir}
}

// File is a file entry for Arena
func File(path string) memfs.Entry {
	return memfs.Entry{Path: path, Kind: memfs.KindFile}
}

// Link is a symlink entry for Arena
func Link(path, target string) memfs.Entry {
	return memfs.Entry{Path: path, Kind: memfs.KindSymlink, Target: target}
}

// CaptureLogs records every entry of the standard logger at debug level and
// above until the test ends
func CaptureLogs(tb testing.TB) *test.Hook {
	tb.Helper()

	hook := test.NewGlobal()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)

	tb.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	return hook
}

// AssertLogContains checks that wantLogEntry is contained in at least one of the log entries
func AssertLogContains(tb testing.TB, wantLogEntry string, entries []*logrus.Entry) {
	tb.Helper()

	if wantLogEntry != "" {
		messages := make([]string, len(entries))
		for k, entry := range entries {
			messages[k] = entry.Message
		}

		require.Contains(tb, messages, wantLogEntry)
	}
}
