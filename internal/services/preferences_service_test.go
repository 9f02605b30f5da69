package services

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

func TestPreferencesService_GetCreatesDefaultsOnce(t *testing.T) {
	svc := NewPreferencesService(setupTestStore(t))
	ctx := context.Background()

	first, err := svc.Get(ctx, testOwner)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := model.DefaultNotificationPreferences(testOwner)
	if first.DeadlineNotification != want.DeadlineNotification ||
		first.EmailNotification != want.EmailNotification ||
		first.PushNotification != want.PushNotification ||
		first.ReminderTime != want.ReminderTime ||
		first.Sound != want.Sound ||
		first.Volume != want.Volume {
		t.Errorf("expected defaults %+v, got %+v", want, first)
	}

	if _, err := svc.Update(ctx, testOwner, PreferencesInput{Volume: 30, ReminderTime: 2}); err != nil {
		t.Fatal(err)
	}

	second, err := svc.Get(ctx, testOwner)
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if second.Volume != 30 {
		t.Errorf("later Get must return the stored record, not fresh defaults; got volume %d", second.Volume)
	}
}

func TestPreferencesService_Update(t *testing.T) {
	svc := NewPreferencesService(setupTestStore(t))
	ctx := context.Background()

	updated, err := svc.Update(ctx, testOwner, PreferencesInput{
		DeadlineNotification: false,
		EmailNotification:    true,
		PushNotification:     false,
		ReminderTime:         24,
		Sound:                "chime",
		Volume:               0,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.Get(ctx, testOwner)
	if err != nil {
		t.Fatal(err)
	}
	if got.DeadlineNotification || !got.EmailNotification || got.PushNotification {
		t.Errorf("flags not persisted: %+v", got)
	}
	if got.ReminderTime != 24 || got.Sound != "chime" || got.Volume != 0 {
		t.Errorf("values not persisted: %+v", got)
	}
	if got.Volume != updated.Volume {
		t.Errorf("returned record differs from stored one")
	}
}

func TestPreferencesService_UpdateValidation(t *testing.T) {
	svc := NewPreferencesService(setupTestStore(t))
	ctx := context.Background()

	for _, in := range []PreferencesInput{
		{Volume: 101},
		{Volume: -1},
		{Volume: 50, ReminderTime: -5},
	} {
		if _, err := svc.Update(ctx, testOwner, in); !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("%+v: expected validation error, got %v", in, err)
		}
	}

	got, err := svc.Get(ctx, testOwner)
	if err != nil {
		t.Fatal(err)
	}
	if got.Volume != 70 {
		t.Errorf("rejected updates must leave defaults, got volume %d", got.Volume)
	}
}
