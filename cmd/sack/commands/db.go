package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sack/internal/app"
)

func (c *CLI) newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the package metadata store",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "record",
		Short: "Record the checksum of every installed package file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.RecordChecksums(cmd.Context(), app.RecordOptions{ConfigPath: c.configPath})
		},
	})

	return cmd
}
