package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/allyquest/internal/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Print reflections, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		list := notes.NewStore(e.store, e.logger).List(cmd.Context())
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No reflections yet.")
			return nil
		}
		for i, n := range list {
			if limit > 0 && i == limit {
				break
			}
			fmt.Fprintf(out, "%s  %s\n  %s\n\n",
				time.UnixMilli(n.Timestamp).Format(time.DateTime), n.By, n.Text)
		}
		return nil
	},
}

func init() {
	notesCmd.Flags().IntP("limit", "n", 0, "show at most N entries (0 for all)")
}
