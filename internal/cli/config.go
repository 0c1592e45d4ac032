package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/taskman/internal/paths"
	"github.com/mesh-intelligence/taskman/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataFile = "data_file"
	cfgKeyLogLevel = "log_level"
	cfgKeyLogFile  = "log_file"
)

// loadConfig reads config.yaml from configDir using Viper and applies flag
// overrides. A missing config.yaml is not an error. Relative data_file and
// log_file values are taken relative to configDir.
func loadConfig(configDir string, opts *rootOptions) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	dataFile, err := paths.ResolveDataFile(opts.dataFile, relativeTo(configDir, v.GetString(cfgKeyDataFile)))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data file: %w", err)
	}

	logLevel := v.GetString(cfgKeyLogLevel)
	if opts.logLevel != "" {
		logLevel = opts.logLevel
	}

	logFile := relativeTo(configDir, v.GetString(cfgKeyLogFile))

	cfg := types.Config{
		DataFile: dataFile,
		LogLevel: logLevel,
		LogFile:  logFile,
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// relativeTo joins a relative config path onto dir. Empty and absolute
// paths are returned unchanged.
func relativeTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
