package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sack/internal/app"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [pattern...]",
		Short: "List installed and available packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			installed, _ := cmd.Flags().GetBool("installed")
			available, _ := cmd.Flags().GetBool("available")
			repos, _ := cmd.Flags().GetStringSlice("repo")
			arches, _ := cmd.Flags().GetStringSlice("arch")

			return c.app.Query(cmd.Context(), cmd.OutOrStdout(), app.QueryOptions{
				ConfigPath: c.configPath,
				Installed:  installed,
				Available:  available,
				Repos:      repos,
				Arches:     arches,
				Patterns:   args,
			})
		},
	}

	cmd.Flags().Bool("installed", false, "Only list installed packages")
	cmd.Flags().Bool("available", false, "Only list repository packages")
	cmd.Flags().StringSlice("repo", nil, "Only list packages from these repositories")
	cmd.Flags().StringSlice("arch", nil, "Only list packages for these architectures")

	return cmd
}
