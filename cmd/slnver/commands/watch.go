package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/slnver/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <solution.sln>",
		Short: "Re-detect the engine version whenever the solution or its assets change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noRestore, _ := cmd.Flags().GetBool("no-restore")
			return c.app.Watch(cmd.Context(), args[0], app.DetectOptions{NoRestore: noRestore})
		},
	}
	cmd.Flags().Bool("no-restore", false, "Never run a dependency restore for projects without an assets file")
	return cmd
}
