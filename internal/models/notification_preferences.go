package model

import "time"

// NotificationPreferences holds one owner's reminder settings. ReminderTime
// is an opaque lead-time unit chosen by the presentation layer.
type NotificationPreferences struct {
	OwnerID              string    `gorm:"primaryKey;size:64" json:"owner_id"`
	DeadlineNotification bool      `gorm:"not null" json:"deadline_notification"`
	EmailNotification    bool      `gorm:"not null" json:"email_notification"`
	PushNotification     bool      `gorm:"not null" json:"push_notification"`
	ReminderTime         int       `gorm:"not null" json:"reminder_time"`
	Sound                string    `gorm:"not null" json:"sound"`
	Volume               int       `gorm:"not null" json:"volume"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (NotificationPreferences) TableName() string {
	return "notification_preferences"
}

func DefaultNotificationPreferences(ownerID string) NotificationPreferences {
	return NotificationPreferences{
		OwnerID:              ownerID,
		DeadlineNotification: true,
		EmailNotification:    false,
		PushNotification:     true,
		ReminderTime:         1,
		Sound:                "default",
		Volume:               70,
	}
}
