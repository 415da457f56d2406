package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindprint",
	Short: "Terminal personality assessment",
	Long:  "Mindprint — an MBTI-style personality assessment that runs entirely in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for session files (overrides MINDPRINT_DATA env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
