// Package cli implements the taskman command-line interface. Running the
// root command with no subcommand starts the interactive session.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskman/internal/session"
	"github.com/mesh-intelligence/taskman/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootOptions holds global flag values shared by all subcommands.
type rootOptions struct {
	configDir string
	dataFile  string
	logLevel  string
}

// NewRootCmd creates the top-level "taskman" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "taskman",
		Short: "An interactive single-user task tracker",
		Long: "taskman keeps a list of tasks with a title, description, and due date.\n" +
			"Run it without arguments for the interactive menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/taskman)")
	root.PersistentFlags().StringVar(&opts.dataFile, "data-file", "", "task file (default: ./tasks.jsonl)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newAddCmd(opts))
	root.AddCommand(newImportCmd(opts))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps an error to a process exit code. Decode and I/O failures
// are system errors; everything else is a user error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrMalformedRecord), errors.Is(err, types.ErrStorageIO):
		return exitSysError
	default:
		return exitUserError
	}
}

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	env, err := openApp(cmd, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	s := session.New(env.store, cmd.InOrStdin(), cmd.OutOrStdout(), session.WithLogger(env.logger))
	return s.Run(cmd.Context())
}
