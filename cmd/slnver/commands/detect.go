package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/slnver/internal/app"
	"go.trai.ch/slnver/internal/core/domain"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <solution.sln>",
		Short: "Print the engine version the solution targets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noRestore, _ := cmd.Flags().GetBool("no-restore")

			version, err := c.app.DetectVersion(cmd.Context(), args[0], app.DetectOptions{NoRestore: noRestore})
			if errors.Is(err, domain.ErrVersionNotFound) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return err
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
	cmd.Flags().Bool("no-restore", false, "Never run a dependency restore for projects without an assets file")
	return cmd
}
