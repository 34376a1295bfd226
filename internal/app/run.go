package app

import (
	"context"
	"io"

	"github.com/vk/rostergo/internal/shell"
)

// Run loads the configured data file, if any, then runs the command shell
// over in until the user exits or the input ends.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	sh := shell.New(a.roster, in, a.outW, a.errW, a.settings.Prompt)

	if path := a.settings.DataFile; path != "" {
		a.logger.Debug("Loading data file at startup.", "path", path)
		if err := sh.Load(ctx, path); err != nil {
			sh.Report(ctx, "load "+path, err)
		}
	}

	a.logger.Info("Session started.", "students", a.roster.Len())
	if err := sh.Run(ctx); err != nil {
		return err
	}
	a.logger.Info("Session finished.", "students", a.roster.Len())
	return nil
}
