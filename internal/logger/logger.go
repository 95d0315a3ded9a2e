package logger

import (
	"io"
	stdlog "log" // Standard Go log package, aliased to avoid conflict with zerolog field
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/wxgate/emwintg/internal/common"
	"github.com/wxgate/emwintg/internal/config"
)

// LogFormat represents available log formats
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

// String returns string representation of LogFormat
func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// ParseFormat parses string format to LogFormat
func ParseFormat(formatStr string) LogFormat {
	switch strings.ToLower(formatStr) {
	case "json":
		return FormatJSON
	case "console":
		return FormatConsole
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

// New creates a zerolog logger from the given log configuration. Console
// output goes to stderr; file output, when configured, is rotated with
// lumberjack.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Logger{}, common.WrapError(err, "invalid log level")
	}

	format := ParseFormat(cfg.LogFormat)

	writers := []io.Writer{createConsoleWriter(format)}
	if cfg.LogFile != "" {
		writers = append(writers, createFileWriter(cfg))
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multiWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Route the standard library logger through zerolog as well.
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}

// createConsoleWriter creates the stderr writer for the requested format
func createConsoleWriter(format LogFormat) io.Writer {
	switch format {
	case FormatJSON:
		return os.Stderr
	case FormatText:
		return zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: os.Stderr}
	}
}

// createFileWriter creates a rotating file writer. File output is always
// structured JSON regardless of the console format.
func createFileWriter(cfg config.LogConfig) io.Writer {
	// Best effort; lumberjack surfaces the failure on the first write.
	_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0755)

	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxLogSizeMB,
		LocalTime:  true,
		MaxBackups: cfg.MaxLogBackups,
	}
}
