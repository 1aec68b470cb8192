// Package commands implements the CLI commands for jcdb.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/jcdb/internal/app"
	"go.trai.ch/jcdb/internal/build"
)

// CLI represents the command line interface for jcdb.
type CLI struct {
	app     Application
	log     LogFormatter
	rootCmd *cobra.Command
	getwd   func() (string, error)
}

// Application represents the application logic interface.
type Application interface {
	Make(ctx context.Context, req app.MakeRequest, stdout io.Writer) error
	Fix(ctx context.Context, req app.FixRequest, stdout io.Writer) error
	SetTracing(enabled bool)
}

// LogFormatter switches the log output format and destination.
type LogFormatter interface {
	SetJSON(enable bool)
	SetOutput(w io.Writer)
}

// New creates a new CLI instance with the given app. A nil log ignores --log-json.
func New(a Application, log LogFormatter) *CLI {
	rootCmd := &cobra.Command{
		Use:           "jcdb",
		Short:         "Generate and normalize JSON compilation databases",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log the duration of each step")

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
		getwd:   os.Getwd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logJSON, _ := cmd.Flags().GetBool("log-json")
		if log != nil {
			log.SetJSON(logJSON)
		}
		trace, _ := cmd.Flags().GetBool("trace")
		c.app.SetTracing(trace)
	}

	rootCmd.AddCommand(c.newMakeCmd())
	rootCmd.AddCommand(c.newFixCmd())
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

// SetOutput sets the output and error streams. Logs follow the error stream.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
	if c.log != nil {
		c.log.SetOutput(err)
	}
}

// SetWorkingDir pins the working directory instead of reading it from the process.
func (c *CLI) SetWorkingDir(dir string) {
	c.getwd = func() (string, error) { return dir, nil }
}
