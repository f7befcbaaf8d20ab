package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/aggregate"
	"github.com/SHOSESHOSE/time-tracker/internal/clock"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current tracking status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()
	a := newApp()

	if cur := a.session.Current(); cur != nil {
		mins := aggregate.Minutes(cur.Start, nil, now)
		fmt.Println("Running:")
		fmt.Printf("  Category: %s\n", cur.Category)
		fmt.Printf("  Since: %s\n", clock.FormatHM(cur.Start))
		fmt.Printf("  Elapsed: %s\n", aggregate.FormatMinutes(mins))
		return nil
	}

	// Idle — show today's total.
	today := clock.ToYMD(now)
	sum := aggregate.SummarizeDay(today, a.store.LoadAll(), a.cfg.Categories, now)

	fmt.Println("No running entry.")
	fmt.Printf("Today: %s logged.\n", aggregate.FormatMinutes(sum.TotalMinutes))
	return nil
}
