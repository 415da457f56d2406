package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindprint/internal/catalog"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Start a test directly, skipping the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("length")
		length := catalog.Length(raw)
		if !length.Valid() {
			return fmt.Errorf("unknown test length %q (want short, medium, or long)", raw)
		}
		if resumeID, _ := cmd.Flags().GetString("resume"); resumeID != "" {
			return runApp(cmd, nil, resumeID)
		}
		return runApp(cmd, &length, "")
	},
}

func init() {
	takeCmd.Flags().String("length", "medium", "Test length: short, medium, or long")
	takeCmd.Flags().String("resume", "", "Resume the given session instead of starting fresh")
}
