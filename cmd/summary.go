package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/aggregate"
)

var summaryDate string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category totals for a day",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Day to summarize (YYYY-MM-DD, default today)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	a := newApp()

	date, err := resolveDate(summaryDate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sum := aggregate.SummarizeDay(date, a.store.LoadAll(), a.cfg.Categories, time.Now())

	fmt.Println(date)
	fmt.Println("--------------------------------")
	for _, c := range sum.Order {
		fmt.Printf("%-20s%s\n", c, aggregate.FormatMinutes(sum.ByCategory[c]))
	}
	fmt.Println("--------------------------------")
	fmt.Printf("%-20s%s\n", "Total", aggregate.FormatMinutes(sum.TotalMinutes))
	return nil
}
