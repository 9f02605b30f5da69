package validators

import (
	dto "github.com/maiquockhanh06/Timeflow-app/internal/data_models"
	"github.com/maiquockhanh06/Timeflow-app/internal/services"
)

// Range checks live in the preferences service so the CLI gets them too.
func ValidateUpdatePreferencesRequest(r *dto.UpdatePreferencesRequest) services.PreferencesInput {
	return services.PreferencesInput{
		DeadlineNotification: r.DeadlineNotification,
		EmailNotification:    r.EmailNotification,
		PushNotification:     r.PushNotification,
		ReminderTime:         r.ReminderTime,
		Sound:                r.Sound,
		Volume:               r.Volume,
	}
}
