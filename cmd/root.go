package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ttrack",
	Short: "ttrack – a minimal CLI work-time tracker",
	Long: `ttrack is a single-binary, file-based command-line work-time tracker.
Activities are recorded under a fixed set of categories; all data is
stored as human-readable JSON files in ~/.ttrack/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(tuiCmd)
}
