package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/export"
)

var (
	exportDate string
	exportSave bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a day's entries as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Day to export (YYYY-MM-DD, default today)")
	exportCmd.Flags().BoolVar(&exportSave, "save", false, "Write to time_log_<date>_<user>.csv instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	a := newApp()

	date, err := resolveDate(exportDate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	user := a.userName()
	csv := export.DayCSV(date, user, a.store.LoadAll(), time.Now())

	if !exportSave {
		fmt.Print(csv)
		return nil
	}

	name := export.FileName(date, user)
	if err := os.WriteFile(name, []byte(csv), 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", name, err)
		os.Exit(2)
	}
	fmt.Printf("Wrote %s\n", name)
	return nil
}
