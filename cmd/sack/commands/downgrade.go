package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sack/internal/app"
)

func (c *CLI) newDowngradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "downgrade <package>...",
		Short: "Plan downgrading packages to the next lower available version",
		Long: `Plan downgrading packages to the next lower available version.

Packages are name globs or paths of local .rpm files. The plan is printed and
never executed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Downgrade(cmd.Context(), cmd.OutOrStdout(), app.DowngradeOptions{
				ConfigPath: c.configPath,
				Specs:      args,
			})
		},
	}
}
