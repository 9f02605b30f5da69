package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maiquockhanh06/Timeflow-app/internal/http/validators"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize completed tasks over a trailing period",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("period")
		period, err := validators.ParsePeriodParam(raw)
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app) error {
			s, err := a.services.Statistics.Summarize(cmd.Context(), a.cfg.OwnerID, period)
			if err != nil {
				return err
			}

			fmt.Printf("Statistics for the last %s [%s, %s]\n", s.Period, s.WindowStart, s.WindowEnd)
			fmt.Printf("  %-16s %d\n", "Completed:", s.TotalCompleted)
			fmt.Printf("  %-16s %d\n", "On time:", s.CompletedEarly)
			fmt.Printf("  %-16s %d\n", "Late:", s.CompletedLate)
			fmt.Printf("  %-16s %d\n", "Incomplete:", s.Incomplete)
			return nil
		})
	},
}

func init() {
	statsCmd.Flags().String("period", "week", "day, week, month or year")
	rootCmd.AddCommand(statsCmd)
}
