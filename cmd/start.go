package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/clock"
)

var startDate string

var startCmd = &cobra.Command{
	Use:   "start <category>",
	Short: "Start timing a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVar(&startDate, "date", "", "Day bucket for the new entry (YYYY-MM-DD, default today)")
}

func runStart(cmd *cobra.Command, args []string) error {
	category := args[0]

	a := newApp()

	date, err := resolveDate(startDate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cur := a.session.Current(); cur != nil {
		fmt.Fprintf(os.Stderr, "Warning: auto-stopping running entry for category %q\n", cur.Category)
	}

	entry, err := a.session.Start(category, date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Started %q at %s\n", category, clock.FormatHM(entry.Start))
	return nil
}
