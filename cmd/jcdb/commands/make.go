package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jcdb/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newMakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make [sources...]",
		Short: "Generate a compilation database from one command and its sources",
		Long: "Generate one compilation database entry per source file. The command is\n" +
			"deduplicated, the newest clang resource include directory is injected, and\n" +
			"flags are stripped, discarded and added according to the profile and flags.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := c.getwd()
			if err != nil {
				return zerr.Wrap(err, "failed to get working directory")
			}

			command, _ := cmd.Flags().GetString("command")
			sources, _ := cmd.Flags().GetStringArray("source")
			dir, _ := cmd.Flags().GetString("dir")
			clangDir, _ := cmd.Flags().GetString("clang-dir")
			noSystemHeaders, _ := cmd.Flags().GetBool("no-system-headers")
			raw, _ := cmd.Flags().GetBool("raw")
			strip, _ := cmd.Flags().GetStringSlice("strip")
			add, _ := cmd.Flags().GetStringArray("add")
			discard, _ := cmd.Flags().GetStringArray("discard")
			output, _ := cmd.Flags().GetString("output")

			return c.app.Make(cmd.Context(), app.MakeRequest{
				Cwd:             cwd,
				Command:         command,
				Sources:         append(sources, args...),
				Directory:       dir,
				ResourceDir:     clangDir,
				NoSystemHeaders: noSystemHeaders,
				Raw:             raw,
				Strip:           strip,
				Add:             add,
				Discard:         discard,
				Pretty:          prettyFlag(cmd, output == ""),
				Output:          output,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("command", "c", "", "Compilation command shared by every source")
	cmd.Flags().StringArrayP("source", "s", nil, "Source file (repeatable; positional arguments are sources too)")
	cmd.Flags().StringP("dir", "d", "", "Directory recorded in each entry (default: working directory)")
	cmd.Flags().String("clang-dir", "", "Clang resource directory whose include directory is injected")
	cmd.Flags().Bool("no-system-headers", false, "Do not inject a clang resource include directory")
	cmd.Flags().Bool("raw", false, "Use the command verbatim")
	cmd.Flags().StringSlice("strip", nil, "Flag families to strip: deps, opt, debug")
	cmd.Flags().StringArray("add", nil, "Flag to append, with or without its leading dash (repeatable)")
	cmd.Flags().StringArray("discard", nil, "Flag to remove, with or without its leading dash (repeatable)")
	cmd.Flags().BoolP("pretty", "p", false, "Indent the JSON output (default when printing to a terminal)")
	cmd.Flags().StringP("output", "o", "", "Write the database to this file instead of stdout")
	_ = cmd.MarkFlagRequired("command")

	return cmd
}
