package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/allyquest/internal/catalog"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the stages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, st := range cat.Stages {
			fmt.Fprintf(out, "%d. %s %s (%s)\n", st.ID, st.Icon, st.Title, st.Color)
		}
		return nil
	},
}
