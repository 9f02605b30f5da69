package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

type PreferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// FindOrCreate returns the owner's preferences, inserting defaults the
// first time they are read.
func (r *PreferencesRepository) FindOrCreate(ctx context.Context, ownerID string) (*model.NotificationPreferences, error) {
	var prefs model.NotificationPreferences
	err := r.db.WithContext(ctx).First(&prefs, "owner_id = ?", ownerID).Error
	if err == nil {
		return &prefs, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	prefs = model.DefaultNotificationPreferences(ownerID)
	if err := r.db.WithContext(ctx).Create(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *PreferencesRepository) Save(ctx context.Context, prefs *model.NotificationPreferences) error {
	return r.db.WithContext(ctx).Save(prefs).Error
}
