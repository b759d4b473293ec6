package corelog

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"critical", zerolog.FatalLevel},
		{"off", zerolog.Disabled},
	}

	for _, test := range tests {
		got, err := ParseLevel(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}

	for _, bad := range []string{"", "verbose", "7"} {
		_, err := ParseLevel(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewFileLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "corelog")
	require.NoError(t, err)

	cfg := Config{}.Default()
	cfg.DisableConsoleLog = true
	cfg.FileLoggingEnabled = true
	cfg.Directory = dir

	logger := New("CHCF", zerolog.DebugLevel, cfg)
	logger.Debug().Str("net", "main").Msg("selected chain parameters")
	logger.Trace().Msg("hidden")

	data, err := ioutil.ReadFile(filepath.Join(dir, DefaultLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unit":"CHCF"`)
	assert.Contains(t, string(data), `"app":"dogeposd"`)
	assert.Contains(t, string(data), "selected chain parameters")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewWithoutWriters(t *testing.T) {
	cfg := Config{}.Default()
	cfg.DisableConsoleLog = true

	logger := New("MAIN", zerolog.InfoLevel, cfg)
	assert.Equal(t, Disabled, logger)
}
