package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the full-screen terminal dashboard.

Number keys start the corresponding category, s stops the running
entry, and the arrow keys page between days. Entries can be edited or
deleted in place.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	a := newApp()

	if err := tui.Run(a.cfg, a.store, a.session, a.editor); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
	return nil
}
