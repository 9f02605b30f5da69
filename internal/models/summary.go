package model

import (
	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
)

type Summary struct {
	Period         constants.Period `json:"period"`
	WindowStart    dates.Date       `json:"window_start"`
	WindowEnd      dates.Date       `json:"window_end"`
	TotalCompleted int64            `json:"total_completed"`
	CompletedEarly int64            `json:"completed_early"`
	CompletedLate  int64            `json:"completed_late"`
	Incomplete     int64            `json:"incomplete"`
}
