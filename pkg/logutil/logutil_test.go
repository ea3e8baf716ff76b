package logutil_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uftool/pkg/logutil"
)

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetOutput(&buf, logutil.WARN)
	defer logutil.CloseLogger()

	logutil.Debug("debug %d", 1)
	logutil.Info("info %d", 2)
	logutil.Warn("warn %d", 3)
	logutil.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERR] error 4")
	assert.Contains(t, out, "logutil_test.go:")
}

func TestLogLevelFlagValue(t *testing.T) {
	var level logutil.LogLevel
	require.NoError(t, level.Set("debug"))
	assert.Equal(t, logutil.DEBUG, level)
	assert.Equal(t, "DEBUG", level.String())

	require.NoError(t, level.Set("ERROR"))
	assert.Equal(t, logutil.ERROR, level)

	assert.Error(t, level.Set("verbose"))
	assert.Equal(t, "loglevel", level.Type())
}

func TestInitLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uftool.log")
	require.NoError(t, logutil.InitLogger(path, logutil.INFO))
	logutil.Info("written to %s", "file")
	require.NoError(t, logutil.CloseLogger())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
