package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/editor"
)

var (
	editCategory string
	editStart    string
	editEnd      string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry's category, start, and end",
	Long: `Edit rewrites an entry's category and times. --start is mandatory;
an empty --end re-opens the entry as in-progress. Times are HH:MM and
are interpreted on the entry's original day, not today.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category label")
	editCmd.Flags().StringVar(&editStart, "start", "", "New start time (HH:MM)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end time (HH:MM); empty re-opens the entry")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	a := newApp()

	if err := a.editor.Edit(id, editCategory, editStart, editEnd); err != nil {
		if errors.Is(err, editor.ErrStartRequired) {
			fmt.Fprintln(os.Stderr, "Start time is required (--start HH:MM).")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Updated entry %s\n", id)
	return nil
}
