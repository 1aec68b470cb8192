package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isInteractive reports whether w is a terminal outside CI.
func isInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// prettyFlag returns an explicit --pretty, or true when the database is
// printed to an interactive terminal. Nil leaves the choice to the profile.
func prettyFlag(cmd *cobra.Command, toStdout bool) *bool {
	if cmd.Flags().Changed("pretty") {
		pretty, _ := cmd.Flags().GetBool("pretty")
		return &pretty
	}
	if toStdout && isInteractive(cmd.OutOrStdout()) {
		pretty := true
		return &pretty
	}
	return nil
}
