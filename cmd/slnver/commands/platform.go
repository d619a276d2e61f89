package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Print the detected platform",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := c.app.Platform()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "platform: %s\n", info.Type)
			_, _ = fmt.Fprintf(out, "windows desktop: %t\n", info.WindowsDesktop)
			_, _ = fmt.Fprintf(out, "debug build: %t\n", info.DebugBuild)
			_, _ = fmt.Fprintf(out, "restore command: %s\n", info.RestoreCommand())
		},
	}
}
