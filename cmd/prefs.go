package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	"github.com/maiquockhanh06/Timeflow-app/internal/services"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change notification preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show notification preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			prefs, err := a.services.Preferences.Get(cmd.Context(), a.cfg.OwnerID)
			if err != nil {
				return err
			}
			printPreferences(prefs)
			return nil
		})
	},
}

// prefsSetCmd only changes the flags that were passed.
var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change notification preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			ctx := cmd.Context()
			current, err := a.services.Preferences.Get(ctx, a.cfg.OwnerID)
			if err != nil {
				return err
			}

			in := services.PreferencesInput{
				DeadlineNotification: current.DeadlineNotification,
				EmailNotification:    current.EmailNotification,
				PushNotification:     current.PushNotification,
				ReminderTime:         current.ReminderTime,
				Sound:                current.Sound,
				Volume:               current.Volume,
			}

			flags := cmd.Flags()
			if flags.Changed("deadline") {
				in.DeadlineNotification, _ = flags.GetBool("deadline")
			}
			if flags.Changed("email") {
				in.EmailNotification, _ = flags.GetBool("email")
			}
			if flags.Changed("push") {
				in.PushNotification, _ = flags.GetBool("push")
			}
			if flags.Changed("reminder") {
				in.ReminderTime, _ = flags.GetInt("reminder")
			}
			if flags.Changed("sound") {
				in.Sound, _ = flags.GetString("sound")
			}
			if flags.Changed("volume") {
				in.Volume, _ = flags.GetInt("volume")
			}

			prefs, err := a.services.Preferences.Update(ctx, a.cfg.OwnerID, in)
			if err != nil {
				return err
			}
			printPreferences(prefs)
			return nil
		})
	},
}

func init() {
	prefsSetCmd.Flags().Bool("deadline", true, "Notify before deadlines")
	prefsSetCmd.Flags().Bool("email", false, "Send email notifications")
	prefsSetCmd.Flags().Bool("push", true, "Send push notifications")
	prefsSetCmd.Flags().Int("reminder", 1, "Reminder lead time")
	prefsSetCmd.Flags().String("sound", "default", "Notification sound")
	prefsSetCmd.Flags().Int("volume", 70, "Volume 0-100")

	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}

func printPreferences(p *model.NotificationPreferences) {
	fmt.Printf("  %-10s %t\n", "deadline:", p.DeadlineNotification)
	fmt.Printf("  %-10s %t\n", "email:", p.EmailNotification)
	fmt.Printf("  %-10s %t\n", "push:", p.PushNotification)
	fmt.Printf("  %-10s %d\n", "reminder:", p.ReminderTime)
	fmt.Printf("  %-10s %s\n", "sound:", p.Sound)
	fmt.Printf("  %-10s %d\n", "volume:", p.Volume)
}
