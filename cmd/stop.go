package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/aggregate"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the currently running entry",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	a := newApp()

	stopped, err := a.session.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if stopped == nil {
		fmt.Fprintln(os.Stderr, "No running entry to stop.")
		os.Exit(1)
	}

	mins := aggregate.Minutes(stopped.Start, stopped.End, time.Now())
	fmt.Printf("Stopped %q. Elapsed: %s\n", stopped.Category, aggregate.FormatMinutes(mins))
	return nil
}
