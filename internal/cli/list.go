package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all tasks without starting the menu",
		Long: `List prints every task in the order it was added.

With --json each task is printed as one JSON object per line, including
its task_id and created_at.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer env.Close()

			if !asJSON {
				return env.store.ListAll(cmd.OutOrStdout())
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, task := range env.store.Tasks() {
				if err := enc.Encode(task); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON lines")
	return cmd
}
