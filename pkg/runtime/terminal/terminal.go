package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/time-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/time-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/time-atlas/pkg/services/config"
	"github.com/de-tools/time-atlas/pkg/services/daterange"
	"github.com/de-tools/time-atlas/pkg/services/report"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Controller report.Controller
	Navigator  *daterange.Navigator
	Registry   config.Registry
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time-atlas",
		Short: "Hours reporting and aggregation tool",
	}

	reporter := export.NewReporter(opts.Output)
	cmd.AddCommand(commands.NewReportCmd(opts.Controller, reporter))
	cmd.AddCommand(commands.NewNavigateCmd(opts.Navigator, opts.Output))
	if opts.Registry != nil {
		cmd.AddCommand(commands.NewProfilesCmd(opts.Registry, opts.Output))
	}

	return cmd
}
