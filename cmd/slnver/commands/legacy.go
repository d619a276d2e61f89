package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/slnver/internal/ui/style"
)

func (c *CLI) newLegacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy",
		Short: "Inspect the legacy package markers of solution folders",
	}
	cmd.AddCommand(c.newLegacyListCmd())
	cmd.AddCommand(c.newLegacyStripCmd())
	return cmd
}

func (c *CLI) newLegacyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <solution.sln>",
		Short: "List the legacy package markers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, err := c.app.LegacyList(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, ref := range refs {
				_, _ = fmt.Fprintf(out, "%s %s %s\n", ref.Project, ref.Section, ref.RelativePath)
			}
			return nil
		},
	}
}

func (c *CLI) newLegacyStripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip <solution.sln>",
		Short: "Remove the legacy package markers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			changed, err := c.app.LegacyStrip(cmd.Context(), args[0], write)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			icon := lipgloss.NewStyle().Foreground(style.Green).Render(style.Check)
			_, _ = fmt.Fprintf(out, "%s %d folder(s) stripped\n", icon, changed)
			if changed > 0 && !write {
				note := lipgloss.NewStyle().Foreground(style.Mist).Render("dry run, pass --write to save")
				_, _ = fmt.Fprintln(out, note)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Rewrite the solution file")
	return cmd
}
