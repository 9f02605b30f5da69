package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	config "github.com/maiquockhanh06/Timeflow-app/internal/configs"
	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

const testOwner = "owner-1"

// mockSummaryCache is a simple in-memory summary cache for testing
type mockSummaryCache struct {
	mu            sync.Mutex
	entries       map[string]model.Summary
	generations   map[string]int64
	invalidations int
	beforeStore   func()
}

func newMockSummaryCache() *mockSummaryCache {
	return &mockSummaryCache{
		entries:     make(map[string]model.Summary),
		generations: make(map[string]int64),
	}
}

func (m *mockSummaryCache) key(ownerID string, period constants.Period, windowEnd dates.Date, gen int64) string {
	return fmt.Sprintf("%s|%s|%s|%d", ownerID, period, windowEnd, gen)
}

func (m *mockSummaryCache) Load(_ context.Context, ownerID string, period constants.Period, windowEnd dates.Date) (*model.Summary, int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gen := m.generations[ownerID]
	s, ok := m.entries[m.key(ownerID, period, windowEnd, gen)]
	if !ok {
		return nil, gen, false, nil
	}
	return &s, gen, true, nil
}

func (m *mockSummaryCache) Store(_ context.Context, ownerID string, gen int64, summary model.Summary) error {
	if hook := m.beforeStore; hook != nil {
		m.beforeStore = nil
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[m.key(ownerID, summary.Period, summary.WindowEnd, gen)] = summary
	return nil
}

func (m *mockSummaryCache) Invalidate(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generations[ownerID]++
	m.invalidations++
	return nil
}

func setupTestStore(t *testing.T) *repository.Store {
	t.Helper()

	db, err := config.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return repository.NewStore(db)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func day(s string) dates.Date {
	d, err := dates.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string {
	return &s
}

func assertTitles(t *testing.T, label string, tasks []model.TaskView, want []string) {
	t.Helper()

	if len(tasks) != len(want) {
		t.Fatalf("%s: expected %d tasks, got %d", label, len(want), len(tasks))
	}
	for i, task := range tasks {
		if task.Title != want[i] {
			t.Errorf("%s[%d]: expected %q, got %q", label, i, want[i], task.Title)
		}
	}
}
