// Package commands implements the CLI commands for rehost.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rehost/internal/app"
	"go.trai.ch/rehost/internal/build"
	"go.trai.ch/rehost/internal/core/domain"
)

// CLI represents the command line interface for rehost.
type CLI struct {
	app          Application
	rootCmd      *cobra.Command
	settingsPath string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (*domain.Report, error)
	List(ctx context.Context, opts app.ListOptions) (*app.Listing, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	var opts app.RunOptions
	rootCmd := &cobra.Command{
		Use:   "rehost",
		Short: "Refresh dynamic HostName values in your SSH config",
		Long: `rehost rewrites HostName lines that are annotated with a directive:

  #<|web|> aws ec2 describe-instances ... --output text
  HostName 10.0.0.1

The command after the directive is run through the shell and its output
replaces the value of the HostName line directly below it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.SettingsPath = c.settingsPath
			_, err := c.app.Run(cmd.Context(), opts)
			return err
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

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.File, "file", "f", "", "SSH config file to rewrite (default ~/.ssh/config)")
	flags.StringVarP(&opts.Name, "name", "n", "", "Refresh the directives with this name without prompting")
	flags.BoolVarP(&opts.All, "all", "a", false, "Refresh every directive without prompting")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Run the commands but do not write the file")
	flags.StringVar(&opts.Shell, "shell", "", "Shell used to run directive commands (default /bin/sh)")
	flags.StringVar(&opts.LogFormat, "log-format", "", "Log format: pretty or json")
	flags.StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	rootCmd.MarkFlagsMutuallyExclusive("name", "all")

	rootCmd.PersistentFlags().StringVar(&c.settingsPath, "settings", "",
		"Settings file (default $XDG_CONFIG_HOME/rehost/config.yaml)")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newListCmd())
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
