package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/allyquest/internal/identity"
	"github.com/abhisek/allyquest/internal/notes"
	"github.com/abhisek/allyquest/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear stage progress",
	Long:  "Clear stage progress. With --all, also forget the display name and the reflection wall.",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		progress.NewTracker(ctx, e.store, e.logger).Reset(ctx)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Progress cleared.")

		if all {
			identity.NewStore(ctx, e.store, e.logger).Clear(ctx)
			notes.NewStore(e.store, e.logger).Clear(ctx)
			fmt.Fprintln(out, "Name and reflections cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "also clear name and reflections")
}
