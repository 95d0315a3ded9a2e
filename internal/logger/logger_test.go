package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxgate/emwintg/internal/config"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected LogFormat
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"console", FormatConsole},
		{"text", FormatText},
		{"", FormatConsole},
		{"garbage", FormatConsole},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseFormat(tt.input), "input %q", tt.input)
	}
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "text", FormatText.String())
}

func TestNew(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	logger, err := New(cfg)
	require.NoError(t, err)

	// Exercise the logger; output goes to stderr.
	logger.Debug().Str("component", "test").Msg("hello")
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "shouty"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_WithFileOutput(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "json"
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "emwintg.log")

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Info().Msg("write something so the file exists")
}
