package model

import "time"

const DefaultCategoryColor = "#3498db"

type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"size:64;not null;index" json:"owner_id"`
	Name      string    `gorm:"not null" json:"name"`
	Color     string    `gorm:"size:7;not null" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
