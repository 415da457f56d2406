package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List resumable sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := buildDeps(cmd)
		if err != nil {
			return err
		}

		summaries := mgr.ListResumable()
		if len(summaries) == 0 {
			fmt.Println("No resumable sessions.")
			return nil
		}

		fmt.Printf("%-20s %-10s %-10s %s\n", "SESSION", "LENGTH", "ANSWERED", "LAST UPDATED")
		for _, s := range summaries {
			fmt.Printf("%-20s %-10s %d/%-8d %s\n",
				s.ID, s.Length, s.Answered, s.Total,
				s.LastUpdated.Format("2006-01-02 15:04"))
		}
		return nil
	},
}
