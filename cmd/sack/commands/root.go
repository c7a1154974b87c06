// Package commands implements the CLI commands for sack.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sack/internal/app"
	"go.trai.ch/sack/internal/build"
)

// CLI represents the command line interface for sack.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	logJSON    bool
}

// Application represents the application logic interface.
type Application interface {
	Fingerprint(ctx context.Context, w io.Writer, opts app.FingerprintOptions) error
	Export(ctx context.Context, w io.Writer, opts app.ExportOptions) error
	Query(ctx context.Context, w io.Writer, opts app.QueryOptions) error
	Downgrade(ctx context.Context, w io.Writer, opts app.DowngradeOptions) error
	Watch(ctx context.Context, w io.Writer, opts app.WatchOptions) error
	RecordChecksums(ctx context.Context, opts app.RecordOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	SetLogJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "sack",
		Short:         "Fingerprint and export RPM package sets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if c.logJSON {
				c.app.SetLogJSON(true)
			}
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to sack.yaml (default: discovered from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write log messages as JSON")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newFingerprintCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newQueryCmd())
	rootCmd.AddCommand(c.newDowngradeCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newDBCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
