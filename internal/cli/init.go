package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/taskman/internal/paths"
	"github.com/mesh-intelligence/taskman/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataFile string `yaml:"data_file,omitempty"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`
}

const configHeader = "# taskman configuration\n" +
	"# data_file: task file path (default: ./tasks.jsonl)\n" +
	"# log_level: debug, info, warn, error\n" +
	"# log_file: rotate diagnostics into this file instead of stderr\n" +
	"# Relative data_file and log_file paths are resolved against this directory.\n"

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and default config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}
}

func runInit(cmd *cobra.Command, opts *rootOptions) error {
	level := types.DefaultLogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	if !types.IsLogLevel(level) {
		return fmt.Errorf("%w %q", types.ErrLogLevelUnknown, level)
	}

	configDir, err := paths.ResolveConfigDir(opts.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("%w: create config directory: %w", types.ErrStorageIO, err)
	}

	path := paths.ConfigFile(configDir)
	created, err := writeConfigIfMissing(path, configFile{DataFile: opts.dataFile, LogLevel: level})
	if err != nil {
		return fmt.Errorf("%w: write config: %w", types.ErrStorageIO, err)
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
	}
	return nil
}

// writeConfigIfMissing writes cfg to path unless the file already exists.
// It reports whether the file was created.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
