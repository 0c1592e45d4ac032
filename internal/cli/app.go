package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskman/internal/logging"
	"github.com/mesh-intelligence/taskman/internal/paths"
	"github.com/mesh-intelligence/taskman/internal/store"
	"github.com/mesh-intelligence/taskman/pkg/types"
)

// app bundles what every store-backed command needs.
type app struct {
	cfg    types.Config
	store  *store.Store
	logger *log.Logger
	closer io.Closer
}

// openApp resolves configuration, builds the logger, and loads the task
// store. The caller must Close the result.
func openApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	configDir, err := paths.ResolveConfigDir(opts.configDir)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(configDir, opts)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved config", "config_dir", configDir, "data_file", cfg.DataFile, "log_level", cfg.LogLevel)

	st := store.New(cfg.DataFile, store.WithLogger(logger))
	if err := st.Load(); err != nil {
		closer.Close()
		return nil, err
	}

	return &app{cfg: cfg, store: st, logger: logger, closer: closer}, nil
}

// Close releases the log destination.
func (a *app) Close() error {
	return a.closer.Close()
}
