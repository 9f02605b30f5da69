package model

import (
	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
)

type Task struct {
	ID             string               `gorm:"primaryKey;size:36" json:"id"`
	OwnerID        string               `gorm:"size:64;not null;index:idx_tasks_owner_due,priority:1" json:"owner_id"`
	Title          string               `gorm:"not null" json:"title"`
	Description    string               `gorm:"not null;default:''" json:"description"`
	CreationDate   dates.Date           `gorm:"type:text;not null" json:"creation_date"`
	DueDate        dates.Date           `gorm:"type:text;not null;index:idx_tasks_owner_due,priority:2" json:"due_date"`
	DueTime        dates.ClockTime      `gorm:"type:text;not null;default:'';index:idx_tasks_owner_due,priority:3" json:"due_time"`
	CategoryID     *string              `gorm:"size:36;index" json:"category_id"`
	Status         constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CompletionDate *dates.Date          `gorm:"type:text" json:"completion_date"`
	Version        uint                 `gorm:"not null;default:1" json:"version"`
}

// CompletionDateFor is the only place the completion date is derived: a
// completed task carries today's date, any other status carries none.
func CompletionDateFor(status constants.TaskStatus, today dates.Date) *dates.Date {
	if status != constants.StatusCompleted {
		return nil
	}
	d := today
	return &d
}

// ApplyStatus moves the task to status and returns the previous status.
func (t *Task) ApplyStatus(status constants.TaskStatus, today dates.Date) constants.TaskStatus {
	prev := t.Status
	t.Status = status
	t.CompletionDate = CompletionDateFor(status, today)
	return prev
}

// TaskView is a task joined with the name of its category, empty when the
// task has none.
type TaskView struct {
	Task
	CategoryName string `json:"category_name"`
}
