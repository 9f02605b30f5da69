package services

import (
	"context"
	"strings"

	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

type PreferencesService struct {
	store *repository.Store
}

type PreferencesInput struct {
	DeadlineNotification bool
	EmailNotification    bool
	PushNotification     bool
	ReminderTime         int
	Sound                string
	Volume               int
}

func NewPreferencesService(store *repository.Store) *PreferencesService {
	return &PreferencesService{store: store}
}

func (s *PreferencesService) Get(ctx context.Context, ownerID string) (*model.NotificationPreferences, error) {
	var prefs *model.NotificationPreferences
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		prefs, err = tx.Preferences().FindOrCreate(ctx, ownerID)
		return err
	})
	return prefs, err
}

func (s *PreferencesService) Update(ctx context.Context, ownerID string, in PreferencesInput) (*model.NotificationPreferences, error) {
	if in.Volume < 0 || in.Volume > 100 {
		return nil, apperrors.Validation("volume %d out of range 0-100", in.Volume)
	}
	if in.ReminderTime < 0 {
		return nil, apperrors.Validation("reminder time must not be negative")
	}
	sound := strings.TrimSpace(in.Sound)
	if sound == "" {
		sound = "default"
	}

	var prefs *model.NotificationPreferences
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Preferences().FindOrCreate(ctx, ownerID)
		if err != nil {
			return err
		}

		current.DeadlineNotification = in.DeadlineNotification
		current.EmailNotification = in.EmailNotification
		current.PushNotification = in.PushNotification
		current.ReminderTime = in.ReminderTime
		current.Sound = sound
		current.Volume = in.Volume

		if err := tx.Preferences().Save(ctx, current); err != nil {
			return err
		}
		prefs = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return prefs, nil
}
