package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name [new name]",
	Short: "Show or set the display user name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runName,
}

func runName(cmd *cobra.Command, args []string) error {
	a := newApp()

	if len(args) == 0 {
		fmt.Println(a.userName())
		return nil
	}

	if err := a.store.SaveName(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("User name set to %q\n", args[0])
	return nil
}
