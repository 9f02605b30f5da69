package validators

import (
	"strings"

	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	dto "github.com/maiquockhanh06/Timeflow-app/internal/data_models"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	"github.com/maiquockhanh06/Timeflow-app/internal/services"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (services.CreateTaskInput, error) {
	if strings.TrimSpace(r.Title) == "" {
		return services.CreateTaskInput{}, apperrors.Validation("title is required")
	}
	if r.DueDate == "" {
		return services.CreateTaskInput{}, apperrors.Validation("due_date is required")
	}

	due, err := dates.ParseDate(r.DueDate)
	if err != nil {
		return services.CreateTaskInput{}, apperrors.Validation("due_date must be YYYY-MM-DD")
	}

	dueTime, err := dates.ParseClockTime(r.DueTime)
	if err != nil {
		return services.CreateTaskInput{}, apperrors.Validation("due_time must be HH:MM")
	}

	var categoryID *string
	if r.CategoryID != nil && *r.CategoryID != "" {
		categoryID = r.CategoryID
	}

	return services.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		DueTime:     dueTime,
		CategoryID:  categoryID,
	}, nil
}
