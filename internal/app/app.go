package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/rostergo/internal/config"
	"github.com/vk/rostergo/internal/ctxlog"
	"github.com/vk/rostergo/internal/roster"
)

// App encapsulates the application's dependencies, settings, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	logSink  io.Closer
	settings *config.Settings
	roster   *roster.Roster
}

// Option customizes an App at construction time.
type Option func(*options)

type options struct {
	logW io.Writer
}

// WithLogOutput sends log records to w instead of the configured log file.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logW = w }
}

// NewApp is the constructor for the main application. It resolves the
// settings, opens the log sink and returns an App with an empty roster.
func NewApp(ctx context.Context, outW, errW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	settings, err := resolveSettings(ctx, appConfig, loader)
	if err != nil {
		return nil, err
	}

	logW, logSink := o.logW, io.Closer(nil)
	if logW == nil {
		logW, logSink = newLogSink(settings.Log, errW)
	}
	logger := newLogger(settings.Log.Level, settings.Log.Format, logW)
	logger.Debug("Logger configured successfully.", "file", settings.Log.File, "level", settings.Log.Level)

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		logSink:  logSink,
		settings: settings,
		roster:   roster.New(),
	}, nil
}

// Roster returns the application's roster. This is primarily for testing.
func (a *App) Roster() *roster.Roster {
	return a.roster
}

// Settings returns the resolved settings.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// Context returns ctx with the application logger attached.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Close releases the log sink.
func (a *App) Close() error {
	if a.logSink == nil {
		return nil
	}
	return a.logSink.Close()
}
