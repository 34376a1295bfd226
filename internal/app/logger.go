package app

import (
	"io"
	"log/slog"

	"github.com/vk/rostergo/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// stderrSink is the log file name that routes logs to the error stream.
const stderrSink = "-"

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// newLogSink returns the writer for log records. Files are rotated by size;
// the returned closer is nil when nothing needs closing.
func newLogSink(cfg config.Log, errW io.Writer) (io.Writer, io.Closer) {
	if cfg.File == stderrSink {
		return errW, nil
	}
	rotating := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	return rotating, rotating
}
