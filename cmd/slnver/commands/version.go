package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/slnver/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			restore := "enabled"
			if !build.RestoreSupported {
				restore = "disabled"
			}
			_, _ = fmt.Fprintf(cmdo, "slnver version %s (commit: %s, date: %s, restore: %s)\n",
				build.Version, build.Commit, build.Date, restore)
		},
	}
}
