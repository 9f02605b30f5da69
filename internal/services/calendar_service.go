package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

type CalendarService struct {
	store *repository.Store
}

type EventInput struct {
	Title       string
	Description string
	StartAt     time.Time
	EndAt       *time.Time
	TaskID      *string
}

type MonthView struct {
	Year   int              `json:"year"`
	Month  int              `json:"month"`
	Start  dates.Date       `json:"start"`
	End    dates.Date       `json:"end"`
	Events []model.Event    `json:"events"`
	Tasks  []model.TaskView `json:"tasks"`
}

func NewCalendarService(store *repository.Store) *CalendarService {
	return &CalendarService{store: store}
}

// ResolveMonthRange returns the half-open interval [first of month, first
// of next month). December rolls over into January of the next year.
func ResolveMonthRange(year, month int) (dates.Date, dates.Date, error) {
	if month < 1 || month > 12 {
		return dates.Date{}, dates.Date{}, apperrors.Validation("month %d out of range 1-12", month)
	}
	// December of the last year would end in a five-digit year.
	if year < 1 || year > dates.MaxYear || (year == dates.MaxYear && month == 12) {
		return dates.Date{}, dates.Date{}, apperrors.Validation("%04d-%02d is outside the supported calendar", year, month)
	}

	start := dates.Date{Year: year, Month: time.Month(month), Day: 1}
	if month == 12 {
		return start, dates.Date{Year: year + 1, Month: time.January, Day: 1}, nil
	}
	return start, dates.Date{Year: year, Month: time.Month(month + 1), Day: 1}, nil
}

func (s *CalendarService) EventsInRange(ctx context.Context, ownerID string, start, end dates.Date) ([]model.Event, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.store.Events().ListInRange(ctx, ownerID, start.Time(), end.Time())
}

func (s *CalendarService) TasksInRange(ctx context.Context, ownerID string, start, end dates.Date) ([]model.TaskView, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.store.Tasks().ListDueInRange(ctx, ownerID, start, end, false)
}

func (s *CalendarService) TasksOnDate(ctx context.Context, ownerID string, date dates.Date) ([]model.TaskView, error) {
	if date.IsZero() {
		return nil, apperrors.Validation("date is required")
	}
	return s.store.Tasks().ListDueInRange(ctx, ownerID, date, date.AddDays(1), false)
}

// Month gathers the events and tasks of one calendar month in a single
// read transaction.
func (s *CalendarService) Month(ctx context.Context, ownerID string, year, month int) (*MonthView, error) {
	start, end, err := ResolveMonthRange(year, month)
	if err != nil {
		return nil, err
	}

	view := &MonthView{Year: year, Month: month, Start: start, End: end}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		view.Events, err = tx.Events().ListInRange(ctx, ownerID, start.Time(), end.Time())
		if err != nil {
			return err
		}
		view.Tasks, err = tx.Tasks().ListDueInRange(ctx, ownerID, start, end, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (s *CalendarService) CreateEvent(ctx context.Context, ownerID string, in EventInput) (*model.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.Validation("event title is required")
	}
	if in.StartAt.IsZero() {
		return nil, apperrors.Validation("event start is required")
	}
	if in.StartAt.Year() > dates.MaxYear {
		return nil, apperrors.Validation("event start year %d is outside the supported calendar", in.StartAt.Year())
	}

	event := &model.Event{
		ID:          uuid.Must(uuid.NewV7()).String(),
		OwnerID:     ownerID,
		Title:       title,
		StartAt:     dates.WallClock(in.StartAt),
		Description: in.Description,
		TaskID:      in.TaskID,
	}
	if in.EndAt != nil {
		end := dates.WallClock(*in.EndAt)
		if end.Before(event.StartAt) {
			return nil, apperrors.Validation("event end is before its start")
		}
		event.EndAt = &end
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if event.TaskID != nil {
			_, err := tx.Tasks().FindByID(ctx, ownerID, *event.TaskID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Reference("task", *event.TaskID)
			}
			if err != nil {
				return err
			}
		}
		return tx.Events().Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (s *CalendarService) EventByShareCode(ctx context.Context, code string) (*model.Event, error) {
	event, err := s.store.Events().FindByShareCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("shared event", code)
	}
	return event, err
}
