package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jcdb/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [flags to add or remove...]",
		Short: "Add or remove flags in every entry of an existing compilation database",
		Example: "  jcdb fix -- -Wno-unknown-warning-option\n" +
			"  jcdb fix --remove Werror\n" +
			"  jcdb fix --strip deps --stdout",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := c.getwd()
			if err != nil {
				return zerr.Wrap(err, "failed to get working directory")
			}

			file, _ := cmd.Flags().GetString("file")
			remove, _ := cmd.Flags().GetBool("remove")
			strip, _ := cmd.Flags().GetStringSlice("strip")
			stdout, _ := cmd.Flags().GetBool("stdout")

			return c.app.Fix(cmd.Context(), app.FixRequest{
				Cwd:    cwd,
				File:   file,
				Flags:  args,
				Remove: remove,
				Strip:  strip,
				Stdout: stdout,
				Pretty: prettyFlag(cmd, stdout),
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("file", "f", "", "Compilation database to fix (default: compile_commands.json)")
	cmd.Flags().BoolP("remove", "r", false, "Remove the given flags instead of adding them")
	cmd.Flags().StringSlice("strip", nil, "Flag families to strip: deps, opt, debug")
	cmd.Flags().Bool("stdout", false, "Print the result instead of rewriting the file")
	cmd.Flags().BoolP("pretty", "p", false, "Indent the JSON output (default when printing to a terminal)")

	return cmd
}
