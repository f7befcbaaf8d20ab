package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SHOSESHOSE/time-tracker/internal/relay"
)

var sendDate string

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Upload a day's unsent entries to the configured endpoint",
	Long: `Send posts one form submission per unsent entry of the selected day
to the relay endpoint from ~/.ttrack/config.json. Entries are marked
sent after each successful post, so an interrupted run resumes with
the remainder.`,
	Args: cobra.NoArgs,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendDate, "date", "", "Day to upload (YYYY-MM-DD, default today)")
}

func runSend(cmd *cobra.Command, args []string) error {
	a := newApp()

	date, err := resolveDate(sendDate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Uploading entries for %s...\n", date)

	sender := relay.New(a.store, a.cfg.Relay)
	result, err := sender.Send(context.Background(), date, a.userName())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Upload failed: %v\n", err)
		if result.Sent > 0 {
			fmt.Fprintf(os.Stderr, "%d entries were sent before the failure and will not be resent.\n", result.Sent)
		}
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d sent\n", result.Sent)
	fmt.Printf("  %d already sent\n", result.Skipped)
	return nil
}
