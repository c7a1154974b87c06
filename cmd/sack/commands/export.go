package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sack/internal/app"
	"go.trai.ch/sack/internal/core/domain"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export package relations of a repository in susetags format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, _ := cmd.Flags().GetString("repo")
			output, _ := cmd.Flags().GetString("output")

			return c.app.Export(cmd.Context(), cmd.OutOrStdout(), app.ExportOptions{
				ConfigPath: c.configPath,
				Repo:       repo,
				Output:     output,
			})
		},
	}

	cmd.Flags().StringP("repo", "r", domain.SystemRepoID, "Repository to export")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of standard output")

	return cmd
}
