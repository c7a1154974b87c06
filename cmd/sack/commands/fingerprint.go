package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sack/internal/app"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fingerprint",
		Aliases: []string{"rpmdb-version"},
		Short:   "Print the fingerprint of the installed package set",
		Long: `Print the fingerprint of the installed package set as <count>:<sha1>.

The fingerprint changes whenever a package is installed, removed or replaced.
Use --save to remember it and --check to fail when it has changed since.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			save, _ := cmd.Flags().GetBool("save")
			check, _ := cmd.Flags().GetBool("check")

			return c.app.Fingerprint(cmd.Context(), cmd.OutOrStdout(), app.FingerprintOptions{
				ConfigPath: c.configPath,
				Save:       save,
				Check:      check,
			})
		},
	}

	cmd.Flags().Bool("save", false, "Save the fingerprint for later checks")
	cmd.Flags().Bool("check", false, "Fail if the fingerprint differs from the saved one")

	return cmd
}
