package model

import "time"

type Event struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string     `gorm:"size:64;not null;index:idx_events_owner_start,priority:1" json:"owner_id"`
	Title       string     `gorm:"not null" json:"title"`
	StartAt     time.Time  `gorm:"not null;index:idx_events_owner_start,priority:2" json:"start_at"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	Description string     `gorm:"not null;default:''" json:"description"`
	TaskID      *string    `gorm:"size:36;index" json:"task_id,omitempty"`
	ShareCode   *string    `gorm:"size:32;uniqueIndex" json:"share_code,omitempty"`
}
