package cache

import (
	"context"
	"strconv"

	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

// SummaryCache stores statistics summaries per owner. A summary is keyed by
// its period, the last day of its window and the owner's generation.
// Invalidate bumps the generation, so a summary computed before an
// invalidation and stored after it is never served.
type SummaryCache interface {
	// Load returns the cached summary, if any, and the generation a
	// freshly computed summary must be stored under.
	Load(ctx context.Context, ownerID string, period constants.Period, windowEnd dates.Date) (*model.Summary, int64, bool, error)

	Store(ctx context.Context, ownerID string, generation int64, summary model.Summary) error

	Invalidate(ctx context.Context, ownerID string) error
}

// NopSummaryCache never hits. It is used when Redis is disabled.
type NopSummaryCache struct{}

func (NopSummaryCache) Load(context.Context, string, constants.Period, dates.Date) (*model.Summary, int64, bool, error) {
	return nil, 0, false, nil
}

func (NopSummaryCache) Store(context.Context, string, int64, model.Summary) error {
	return nil
}

func (NopSummaryCache) Invalidate(context.Context, string) error {
	return nil
}

func field(period constants.Period, windowEnd dates.Date, generation int64) string {
	return string(period) + ":" + windowEnd.String() + ":" + strconv.FormatInt(generation, 10)
}
