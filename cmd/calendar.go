package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maiquockhanh06/Timeflow-app/internal/http/validators"
	"github.com/maiquockhanh06/Timeflow-app/internal/services"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the tasks and events of a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawYear, _ := cmd.Flags().GetString("year")
		rawMonth, _ := cmd.Flags().GetString("month")
		year, month, err := validators.ParseMonthParams(rawYear, rawMonth, time.Now())
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app) error {
			view, err := a.services.Calendar.Month(cmd.Context(), a.cfg.OwnerID, year, month)
			if err != nil {
				return err
			}

			fmt.Printf("%s %d  [%s, %s)\n\n", time.Month(view.Month), view.Year, view.Start, view.End)
			fmt.Println("Tasks:")
			printTasks(view.Tasks)
			fmt.Println("\nEvents:")
			if len(view.Events) == 0 {
				fmt.Println("  (none)")
			}
			for _, e := range view.Events {
				fmt.Printf("  %s  %s\n", e.StartAt.Format("2006-01-02 15:04"), e.Title)
			}
			return nil
		})
	},
}

var eventAddCmd = &cobra.Command{
	Use:   "event [title]",
	Short: "Add a calendar event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawStart, _ := cmd.Flags().GetString("start")
		rawEnd, _ := cmd.Flags().GetString("end")
		taskID, _ := cmd.Flags().GetString("task")

		start, err := time.Parse(time.RFC3339, rawStart)
		if err != nil {
			return fmt.Errorf("--start must be an RFC 3339 timestamp: %w", err)
		}
		in := services.EventInput{Title: args[0], StartAt: start}
		if rawEnd != "" {
			end, err := time.Parse(time.RFC3339, rawEnd)
			if err != nil {
				return fmt.Errorf("--end must be an RFC 3339 timestamp: %w", err)
			}
			in.EndAt = &end
		}
		if taskID != "" {
			in.TaskID = &taskID
		}

		return withApp(cmd.Context(), func(a *app) error {
			event, err := a.services.Calendar.CreateEvent(cmd.Context(), a.cfg.OwnerID, in)
			if err != nil {
				return err
			}
			fmt.Printf("Created event %s at %s\n", event.ID, event.StartAt.Format(time.RFC3339))
			return nil
		})
	},
}

func init() {
	calendarCmd.Flags().String("year", "", "Year (defaults to the current year)")
	calendarCmd.Flags().String("month", "", "Month 1-12 (defaults to the current month)")

	eventAddCmd.Flags().String("start", "", "Start time (RFC 3339)")
	eventAddCmd.Flags().String("end", "", "End time (RFC 3339)")
	eventAddCmd.Flags().String("task", "", "Related task id")
	_ = eventAddCmd.MarkFlagRequired("start")

	calendarCmd.AddCommand(eventAddCmd)
	rootCmd.AddCommand(calendarCmd)
}
