package validators

import (
	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	dto "github.com/maiquockhanh06/Timeflow-app/internal/data_models"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
)

func ValidateUpdateTaskStatusRequest(r *dto.UpdateTaskStatusRequest) (constants.TaskStatus, error) {
	status, ok := constants.ParseTaskStatus(r.Status)
	if !ok {
		return "", apperrors.Validation("status must be one of pending, in_progress, completed")
	}
	return status, nil
}
