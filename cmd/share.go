package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Create a share code for the calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			code, err := a.services.Share.CreateShareEvent(cmd.Context(), a.cfg.OwnerID, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Share code: %s\n", code)
			return nil
		})
	},
}

var shareShowCmd = &cobra.Command{
	Use:   "show [code]",
	Short: "Show the event behind a share code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			event, err := a.services.Calendar.EventByShareCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s shared at %s\n", event.Title, event.StartAt.Format(time.RFC3339))
			return nil
		})
	},
}

func init() {
	shareCmd.AddCommand(shareShowCmd)
	rootCmd.AddCommand(shareCmd)
}
