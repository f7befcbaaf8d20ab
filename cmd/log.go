package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/aggregate"
	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/model"
)

var logDate string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List the day's entries",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Day to list (YYYY-MM-DD, default today)")
}

func runLog(cmd *cobra.Command, args []string) error {
	a := newApp()

	date, err := resolveDate(logDate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	entries := aggregate.ForDay(date, a.store.LoadAll())
	printDay(date, entries)
	return nil
}

// printDay prints one line per entry with id, category, span, and minutes.
func printDay(date string, entries []model.LogEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	now := time.Now()
	fmt.Println(date)
	for _, e := range entries {
		endStr := "ongoing"
		if e.End != nil {
			endStr = clock.FormatHM(*e.End)
		}
		sent := ""
		if e.Sent {
			sent = "  [sent]"
		}
		mins := aggregate.Minutes(e.Start, e.End, now)
		fmt.Printf("%s  %s–%s  %s (%s)%s\n",
			e.ID, clock.FormatHM(e.Start), endStr, e.Category,
			aggregate.FormatMinutes(mins), sent)
	}
}
