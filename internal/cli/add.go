package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskman/pkg/types"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var title, description, due string
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a task without starting the menu",
		Example: `  taskman add --title "Buy milk" --description "2L whole milk" --due 2024-05-01`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := types.ValidateFields(title, description, due); err != nil {
				return err
			}

			env, err := openApp(cmd, opts)
			if err != nil {
				return err
			}
			defer env.Close()

			task := types.NewTask(title, description, due)
			if err := env.store.Add(task); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task added successfully!")
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "task title (required)")
	cmd.Flags().StringVar(&description, "description", "", "task description (required)")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD (required)")
	return cmd
}
