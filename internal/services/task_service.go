package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maiquockhanh06/Timeflow-app/internal/cache"
	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

// upcomingDays is how far past today the agenda looks, inclusive.
const upcomingDays = 7

type TaskService struct {
	store     *repository.Store
	summaries cache.SummaryCache
	now       func() time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     dates.Date
	DueTime     dates.ClockTime
	CategoryID  *string
}

type Agenda struct {
	Date     dates.Date                     `json:"date"`
	Today    []model.TaskView               `json:"today"`
	Upcoming []model.TaskView               `json:"upcoming"`
	Counts   map[constants.TaskStatus]int64 `json:"counts"`
}

func NewTaskService(store *repository.Store, summaries cache.SummaryCache) *TaskService {
	return &TaskService{
		store:     store,
		summaries: summaries,
		now:       time.Now,
	}
}

func (s *TaskService) today() dates.Date {
	return dates.DateOf(s.now())
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, in CreateTaskInput) (*model.Task, error) {
	task, err := s.newTask(ownerID, in)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if task.CategoryID != nil {
			ok, err := tx.Categories().Exists(ctx, ownerID, *task.CategoryID)
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.Reference("category", *task.CategoryID)
			}
		}
		return tx.Tasks().Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx, ownerID)
	log.Printf("task %s created for owner %s (due %s)", task.ID, ownerID, task.DueDate)
	return task, nil
}

func (s *TaskService) newTask(ownerID string, in CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if in.DueDate.IsZero() {
		return nil, apperrors.Validation("due date is required")
	}

	dueTime, err := dates.ParseClockTime(string(in.DueTime))
	if err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	var categoryID *string
	if in.CategoryID != nil && strings.TrimSpace(*in.CategoryID) != "" {
		id := strings.TrimSpace(*in.CategoryID)
		categoryID = &id
	}

	return &model.Task{
		ID:           uuid.Must(uuid.NewV7()).String(),
		OwnerID:      ownerID,
		Title:        title,
		Description:  in.Description,
		CreationDate: s.today(),
		DueDate:      in.DueDate,
		DueTime:      dueTime,
		CategoryID:   categoryID,
		Status:       constants.StatusPending,
		Version:      1,
	}, nil
}

// SetStatus moves a task to status. Every transition is allowed; the only
// side effect is the completion date derived by Task.ApplyStatus.
func (s *TaskService) SetStatus(
	ctx context.Context,
	ownerID, taskID string,
	status constants.TaskStatus,
) (*model.Task, error) {
	if !status.IsValid() {
		return nil, apperrors.Validation("unknown status %q", status)
	}

	var (
		task *model.Task
		prev constants.TaskStatus
	)
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		found, err := s.findTask(ctx, tx, ownerID, taskID)
		if err != nil {
			return err
		}

		prev = found.ApplyStatus(status, s.today())

		if err := tx.Tasks().Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrOptimisticLock) {
				return apperrors.ErrOptimisticLock
			}
			return err
		}

		task = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx, ownerID)
	log.Printf("task %s status %s -> %s", task.ID, prev, task.Status)
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID string) (*model.Task, error) {
	return s.findTask(ctx, s.store, ownerID, taskID)
}

func (s *TaskService) findTask(ctx context.Context, store *repository.Store, ownerID, taskID string) (*model.Task, error) {
	task, err := store.Tasks().FindByID(ctx, ownerID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("task", taskID)
	}
	return task, err
}

func (s *TaskService) ListByFilter(ctx context.Context, ownerID string, filter constants.StatusFilter) ([]model.TaskView, error) {
	if _, ok := constants.ParseStatusFilter(string(filter)); !ok {
		return nil, apperrors.Validation("unknown status filter %q", filter)
	}
	if filter == "" {
		filter = constants.FilterAll
	}

	return s.store.Tasks().List(ctx, ownerID, filter)
}

func (s *TaskService) ListDueOn(ctx context.Context, ownerID string, date dates.Date) ([]model.TaskView, error) {
	if date.IsZero() {
		return nil, apperrors.Validation("date is required")
	}
	return s.store.Tasks().ListDueInRange(ctx, ownerID, date, date.AddDays(1), false)
}

func (s *TaskService) ListDueInRange(ctx context.Context, ownerID string, start, end dates.Date) ([]model.TaskView, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.store.Tasks().ListDueInRange(ctx, ownerID, start, end, false)
}

func (s *TaskService) CountByStatus(ctx context.Context, ownerID string) (map[constants.TaskStatus]int64, error) {
	return s.store.Tasks().CountByStatus(ctx, ownerID)
}

// Agenda lists open tasks due today and open tasks due within the next
// week, today included.
func (s *TaskService) Agenda(ctx context.Context, ownerID string) (*Agenda, error) {
	today := s.today()
	agenda := &Agenda{Date: today}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		agenda.Today, err = tx.Tasks().ListDueInRange(ctx, ownerID, today, today.AddDays(1), true)
		if err != nil {
			return err
		}
		agenda.Upcoming, err = tx.Tasks().ListDueInRange(ctx, ownerID, today, today.AddDays(upcomingDays+1), true)
		if err != nil {
			return err
		}
		agenda.Counts, err = tx.Tasks().CountByStatus(ctx, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return agenda, nil
}

func (s *TaskService) invalidateSummaries(ctx context.Context, ownerID string) {
	if err := s.summaries.Invalidate(ctx, ownerID); err != nil {
		log.Printf("failed to invalidate cached statistics for owner %s: %v", ownerID, err)
	}
}

func validateRange(start, end dates.Date) error {
	if start.IsZero() || end.IsZero() {
		return apperrors.Validation("start and end dates are required")
	}
	if end.Before(start) {
		return apperrors.Validation("end date %s is before start date %s", end, start)
	}
	return nil
}
