package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindprint/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a completed session's result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(raw)
		if err != nil {
			return err
		}

		mgr, exporter, err := buildDeps(cmd)
		if err != nil {
			return err
		}

		sess, err := mgr.LoadCompleted(args[0])
		if err != nil {
			return err
		}

		path, err := exporter.Export(sess, format)
		if err != nil {
			return err
		}
		fmt.Println("saved", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Export format: json or text")
}
