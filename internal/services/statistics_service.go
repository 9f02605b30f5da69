package services

import (
	"context"
	"log"
	"time"

	"github.com/maiquockhanh06/Timeflow-app/internal/cache"
	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

type StatisticsService struct {
	store     *repository.Store
	summaries cache.SummaryCache
	now       func() time.Time
}

func NewStatisticsService(store *repository.Store, summaries cache.SummaryCache) *StatisticsService {
	return &StatisticsService{
		store:     store,
		summaries: summaries,
		now:       time.Now,
	}
}

// Summarize classifies tasks completed in the trailing window of period,
// both ends inclusive at day precision.
func (s *StatisticsService) Summarize(ctx context.Context, ownerID string, period constants.Period) (*model.Summary, error) {
	if _, ok := constants.ParsePeriod(string(period)); !ok {
		return nil, apperrors.Validation("unknown period %q", period)
	}

	end := dates.DateOf(s.now())
	start := end.AddDays(-period.Days())

	cached, generation, ok, err := s.summaries.Load(ctx, ownerID, period, end)
	cacheable := err == nil
	if err != nil {
		log.Printf("statistics cache read failed for owner %s: %v", ownerID, err)
	} else if ok {
		return cached, nil
	}

	var stats repository.CompletionStats
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		stats, err = tx.Tasks().CompletionStats(ctx, ownerID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}

	summary := classify(period, start, end, stats)

	// Stored under the generation seen before the query; a write that
	// invalidated in between has already moved readers past it.
	if cacheable {
		if err := s.summaries.Store(ctx, ownerID, generation, summary); err != nil {
			log.Printf("statistics cache write failed for owner %s: %v", ownerID, err)
		}
	}

	return &summary, nil
}

func classify(period constants.Period, start, end dates.Date, stats repository.CompletionStats) model.Summary {
	incomplete := stats.Total - (stats.Early + stats.Late)
	if incomplete < 0 {
		incomplete = 0
	}

	return model.Summary{
		Period:         period,
		WindowStart:    start,
		WindowEnd:      end,
		TotalCompleted: stats.Early + stats.Late,
		CompletedEarly: stats.Early,
		CompletedLate:  stats.Late,
		Incomplete:     incomplete,
	}
}
