package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()

	logger := logrus.StandardLogger()
	formatter, level, out := logger.Formatter, logger.GetLevel(), logger.Out

	t.Cleanup(func() {
		logger.SetFormatter(formatter)
		logger.SetLevel(level)
		logger.SetOutput(out)
	})
}

func TestConfigureLoggingLevel(t *testing.T) {
	tests := map[string]struct {
		verbose bool
		want    logrus.Level
	}{
		"verbose": {verbose: true, want: logrus.TraceLevel},
		"quiet":   {verbose: false, want: logrus.InfoLevel},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			restoreLogger(t)

			require.NoError(t, ConfigureLogging("text", tt.verbose))
			require.Equal(t, tt.want, logrus.GetLevel())
		})
	}
}

func TestConfigureLoggingJSON(t *testing.T) {
	restoreLogger(t)

	require.NoError(t, ConfigureLogging("json", false))

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.WithField("path", `C:\tmp`).Info("resolved")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "resolved", entry["msg"])
	require.Equal(t, `C:\tmp`, entry["path"])
}
