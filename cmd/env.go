package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/config"
	"github.com/abhisek/allyquest/internal/kv"
	"github.com/abhisek/allyquest/internal/logging"
)

// env bundles what every command needs.
type env struct {
	cfg     config.Config
	logger  *zap.Logger
	store   kv.Store
	catalog *catalog.Catalog
}

// setup loads config, builds the logger and opens the store. Callers must
// Close the result.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		if logPath, err = logging.DefaultPath(); err != nil {
			return nil, err
		}
	}
	logger, err := logging.New(logPath, cfg.Verbose)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Default()
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	store, err := kv.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger.Debug("environment ready",
		zap.String("command", cmd.Name()),
		zap.String("backend", cfg.Storage.Backend))

	return &env{cfg: cfg, logger: logger, store: store, catalog: cat}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("close store", zap.Error(err))
	}
	_ = e.logger.Sync()
}
