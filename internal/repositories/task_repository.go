package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var ErrOptimisticLock = errors.New("optimistic locking conflict")

// An empty due_time sorts before any HH:MM value, so untimed tasks come
// first within a day. id breaks the remaining ties in creation order.
const taskOrder = "tasks.due_date asc, tasks.due_time asc, tasks.id asc"

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.Version == 0 {
		task.Version = 1
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":           task.Title,
			"description":     task.Description,
			"due_date":        task.DueDate,
			"due_time":        task.DueTime,
			"category_id":     task.CategoryID,
			"status":          task.Status,
			"completion_date": task.CompletionDate,
			"version":         gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	task.Version++
	return nil
}

func (r *TaskRepository) views(ctx context.Context, ownerID string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Select("tasks.*, COALESCE(categories.name, '') AS category_name").
		Joins("LEFT JOIN categories ON categories.id = tasks.category_id").
		Where("tasks.owner_id = ?", ownerID).
		Order(taskOrder)
}

func (r *TaskRepository) List(ctx context.Context, ownerID string, filter constants.StatusFilter) ([]model.TaskView, error) {
	query := r.views(ctx, ownerID)
	if status, ok := filter.Status(); ok {
		query = query.Where("tasks.status = ?", status)
	}

	var tasks []model.TaskView
	if err := query.Scan(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListDueInRange returns tasks with start <= due_date < end.
func (r *TaskRepository) ListDueInRange(
	ctx context.Context,
	ownerID string,
	start, end dates.Date,
	openOnly bool,
) ([]model.TaskView, error) {
	query := r.views(ctx, ownerID).
		Where("tasks.due_date >= ? AND tasks.due_date < ?", start, end)
	if openOnly {
		query = query.Where("tasks.status <> ?", constants.StatusCompleted)
	}

	var tasks []model.TaskView
	if err := query.Scan(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) CountByStatus(ctx context.Context, ownerID string) (map[constants.TaskStatus]int64, error) {
	var rows []struct {
		Status constants.TaskStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("status, COUNT(*) AS count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[constants.TaskStatus]int64, len(constants.TaskStatuses))
	for _, s := range constants.TaskStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *TaskRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

type CompletionStats struct {
	Total int64
	Early int64
	Late  int64
}

// CompletionStats classifies completed tasks whose completion date falls in
// [start, end]. Rows without a completion date are never counted.
func (r *TaskRepository) CompletionStats(ctx context.Context, ownerID string, start, end dates.Date) (CompletionStats, error) {
	var stats CompletionStats
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN completion_date <= due_date THEN 1 ELSE 0 END), 0) AS early,
			COALESCE(SUM(CASE WHEN completion_date > due_date THEN 1 ELSE 0 END), 0) AS late`).
		Where("owner_id = ? AND status = ?", ownerID, constants.StatusCompleted).
		Where("completion_date IS NOT NULL AND completion_date BETWEEN ? AND ?", start, end).
		Scan(&stats).Error
	return stats, err
}
