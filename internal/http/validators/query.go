package validators

import (
	"strconv"
	"time"

	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
)

func ParseDateParam(raw string) (dates.Date, error) {
	d, err := dates.ParseDate(raw)
	if err != nil {
		return dates.Date{}, apperrors.Validation("date must be YYYY-MM-DD, got %q", raw)
	}
	return d, nil
}

func ParseStatusParam(raw string) (constants.StatusFilter, error) {
	filter, ok := constants.ParseStatusFilter(raw)
	if !ok {
		return "", apperrors.Validation("status must be one of all, pending, in_progress, completed")
	}
	return filter, nil
}

// ParsePeriodParam defaults to a week when raw is empty.
func ParsePeriodParam(raw string) (constants.Period, error) {
	if raw == "" {
		return constants.PeriodWeek, nil
	}
	period, ok := constants.ParsePeriod(raw)
	if !ok {
		return "", apperrors.Validation("period must be one of day, week, month, year")
	}
	return period, nil
}

// ParseMonthParams falls back to the month containing now for any part
// left empty.
func ParseMonthParams(rawYear, rawMonth string, now time.Time) (int, int, error) {
	year, month := now.Year(), int(now.Month())

	if rawYear != "" {
		y, err := strconv.Atoi(rawYear)
		if err != nil {
			return 0, 0, apperrors.Validation("year must be a number")
		}
		year = y
	}
	if rawMonth != "" {
		m, err := strconv.Atoi(rawMonth)
		if err != nil {
			return 0, 0, apperrors.Validation("month must be a number")
		}
		month = m
	}

	return year, month, nil
}
