package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/genko/manuscript"
)

func addExport(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Print a draft as plain text.",
		Long: `Print a draft as plain text: one line per row with the row's overflow
mark appended, pages separated by a blank line.`,
		Example: `
genko export chapter-1 > chapter-1.txt
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.store.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), manuscript.Export(st.Document()))
			return err
		},
	}

	topLevel.AddCommand(cmd)
}

func addCopy(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "copy <name>",
		Short: "Copy a draft's plain text to the system clipboard.",
		Example: `
genko copy chapter-1
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.store.Load(args[0])
			if err != nil {
				return err
			}
			text := manuscript.Export(st.Document())
			if err := e.clip.WriteText(text); err != nil {
				printErr(cmd.ErrOrStderr(), err)
				return fmt.Errorf("copy %s: %w", args[0], err)
			}
			e.log.Info("copied draft", "name", args[0], "chars", st.Document().CharCount())
			printOK(cmd.OutOrStdout(), "copied %s (%d characters)", args[0], st.Document().CharCount())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
