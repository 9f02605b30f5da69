package validators

import (
	"time"

	dto "github.com/maiquockhanh06/Timeflow-app/internal/data_models"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	"github.com/maiquockhanh06/Timeflow-app/internal/services"
)

func ValidateCreateEventRequest(r *dto.CreateEventRequest) (services.EventInput, error) {
	start, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return services.EventInput{}, apperrors.Validation("start_at must be an RFC 3339 timestamp")
	}

	in := services.EventInput{
		Title:       r.Title,
		Description: r.Description,
		StartAt:     start,
		TaskID:      r.TaskID,
	}

	if r.EndAt != nil && *r.EndAt != "" {
		end, err := time.Parse(time.RFC3339, *r.EndAt)
		if err != nil {
			return services.EventInput{}, apperrors.Validation("end_at must be an RFC 3339 timestamp")
		}
		in.EndAt = &end
	}

	return in, nil
}
