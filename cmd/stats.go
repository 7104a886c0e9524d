package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/allyquest/internal/identity"
	"github.com/abhisek/allyquest/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stage completion and stars",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		tracker := progress.NewTracker(ctx, e.store, e.logger)
		name := identity.NewStore(ctx, e.store, e.logger).Name()

		out := cmd.OutOrStdout()
		if name != "" {
			fmt.Fprintf(out, "Learner: %s\n\n", name)
		}

		records := tracker.Snapshot()
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "STAGE\tTITLE\tSTATUS\tSTARS\tCOMPLETED AT")
		for _, st := range e.catalog.Stages {
			status, stars, when := "locked", "", ""
			if tracker.IsUnlocked(st.ID) {
				status = "open"
			}
			if r, ok := records[st.ID]; ok && r.Completed {
				status = "done"
				n := min(max(r.Stars, 0), 3)
				stars = strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
				when = time.UnixMilli(r.Timestamp).Format(time.DateTime)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", st.ID, st.Title, status, stars, when)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%d / %d stages completed, %d stars\n",
			tracker.CompletedCount(), e.catalog.Len(), tracker.TotalStars())
		return nil
	},
}
