package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import-legacy <file>",
		Short: "Import tasks from a legacy space-separated tasks.txt",
		Long: `Import reads a task file in the old format, one task per line:

  <title> <description> <due_date> <True|False>

with spaces in the title and description written as underscores. Imported
tasks are appended to the current task file. Underscores always come back
as spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer env.Close()

			n, err := env.store.Import(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks from %s\n", n, args[0])
			return nil
		},
	}
}
