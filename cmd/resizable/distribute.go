package main

import (
	"github.com/spf13/cobra"
)

func (a *app) distributeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distribute <layout-file>",
		Short: "Print the initial size of every panel",
		Long: `Load a layout and print the sizes the distributor assigns to its panels,
in display order. Sizes listed in the layout (or saved in the state file)
seed the distribution when their count matches the panel count.`,
		Example: `  resizable distribute editor.yaml
  resizable distribute editor.toml --normalize respect-bounds`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGroup(args[0])
			if err != nil {
				return err
			}
			printPanels(cmd.OutOrStdout(), g)
			return nil
		},
	}
}
