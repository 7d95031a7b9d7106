package commands

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved drafts.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts := e.store.List(cmd.Context())
			if len(drafts) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no drafts in", e.store.BasePath())
				return err
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(headColor.Sprint("NAME"), headColor.Sprint("GRID"), headColor.Sprint("PAGES"), headColor.Sprint("CHARS"))
			for _, d := range drafts {
				tbl.AddRow(d.Name, fmt.Sprintf("%dx%d", d.Cols, d.Rows), d.Pages, d.Chars)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "rm <name>...",
		Aliases: []string{"remove"},
		Short:   "Delete saved drafts.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if err := e.store.Delete(name); err != nil {
					return err
				}
				printOK(cmd.OutOrStdout(), "removed %s", name)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
