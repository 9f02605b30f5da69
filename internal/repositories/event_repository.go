package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListInRange returns events with start <= start_at < end, earliest first.
// Event times are wall-clock values, so start and end are compared as
// they are, without zone conversion.
func (r *EventRepository) ListInRange(ctx context.Context, ownerID string, start, end time.Time) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND start_at >= ? AND start_at < ?", ownerID, start, end).
		Order("start_at asc, id asc").
		Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByShareCode(ctx context.Context, code string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).First(&event, "share_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) ShareCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("share_code = ?", code).
		Count(&count).Error
	return count > 0, err
}
