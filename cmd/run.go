package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/allyquest/internal/app"
	"github.com/abhisek/allyquest/internal/kv"
)

// runApp opens the store, starts the file watcher when the backend supports
// it, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := app.Options{
		Store:   e.store,
		Catalog: e.catalog,
		Timing:  e.cfg.Timing,
		Logger:  e.logger,
	}

	if dir, ok := e.store.(*kv.DirStore); ok {
		w, err := kv.NewWatcher(dir, e.logger)
		if err != nil {
			e.logger.Warn("store watcher unavailable", zap.Error(err))
		} else {
			w.Start()
			defer w.Stop()
			opts.Changes = w.Changes
		}
	}

	e.logger.Info("starting tui")
	return app.Run(ctx, opts)
}
