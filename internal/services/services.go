package services

import (
	"github.com/maiquockhanh06/Timeflow-app/internal/cache"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

// Services bundles the engine components that share one store.
type Services struct {
	Tasks       *TaskService
	Categories  *CategoryService
	Calendar    *CalendarService
	Share       *ShareService
	Statistics  *StatisticsService
	Preferences *PreferencesService
}

func New(store *repository.Store, summaries cache.SummaryCache, shareAttempts int) *Services {
	if summaries == nil {
		summaries = cache.NopSummaryCache{}
	}

	return &Services{
		Tasks:       NewTaskService(store, summaries),
		Categories:  NewCategoryService(store),
		Calendar:    NewCalendarService(store),
		Share:       NewShareService(store, shareAttempts),
		Statistics:  NewStatisticsService(store, summaries),
		Preferences: NewPreferencesService(store),
	}
}
