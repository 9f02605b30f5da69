package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maiquockhanh06/Timeflow-app/internal/constants"
	"github.com/maiquockhanh06/Timeflow-app/internal/dates"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

const owner = "owner-1"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Category{}, &model.Task{}, &model.Event{}, &model.NotificationPreferences{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTask(title string, due dates.Date, dueTime dates.ClockTime, categoryID *string) *model.Task {
	return &model.Task{
		ID:           uuid.Must(uuid.NewV7()).String(),
		OwnerID:      owner,
		Title:        title,
		CreationDate: due.AddDays(-1),
		DueDate:      due,
		DueTime:      dueTime,
		CategoryID:   categoryID,
		Status:       constants.StatusPending,
	}
}

func TestTaskRepository_CreateFindUpdate(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	repo := store.Tasks()

	task := newTask("write report", dates.New(2024, time.June, 1), "09:00", nil)
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Version != 1 {
		t.Errorf("expected version 1, got %d", task.Version)
	}

	got, err := repo.FindByID(ctx, owner, task.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.DueDate != task.DueDate || got.DueTime != "09:00" || got.CompletionDate != nil {
		t.Errorf("round trip mismatch: %+v", got)
	}

	got.ApplyStatus(constants.StatusCompleted, dates.New(2024, time.June, 2))
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}

	after, _ := repo.FindByID(ctx, owner, task.ID)
	if after.Status != constants.StatusCompleted || after.CompletionDate == nil || after.CompletionDate.String() != "2024-06-02" {
		t.Errorf("update not applied: %+v", after)
	}

	if _, err := repo.FindByID(ctx, "other-owner", task.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected record not found for other owner, got %v", err)
	}
}

func TestTaskRepository_UpdateStaleVersion(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	repo := store.Tasks()

	task := newTask("t", dates.New(2024, time.June, 1), "", nil)
	if err := repo.Create(ctx, task); err != nil {
		t.Fatal(err)
	}

	a, _ := repo.FindByID(ctx, owner, task.ID)
	b, _ := repo.FindByID(ctx, owner, task.ID)

	a.Status = constants.StatusInProgress
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("first update: %v", err)
	}

	b.Status = constants.StatusPending
	if err := repo.Update(ctx, b); !errors.Is(err, ErrOptimisticLock) {
		t.Errorf("expected optimistic lock conflict, got %v", err)
	}
}

func TestTaskRepository_ListDueInRangeOrderAndBounds(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	repo := store.Tasks()

	june1 := dates.New(2024, time.June, 1)
	for _, task := range []*model.Task{
		newTask("b", june1, "10:00", nil),
		newTask("a", june1, "", nil),
		newTask("c", june1.AddDays(1), "", nil),
		newTask("outside", june1.AddDays(2), "", nil),
		newTask("before", june1.AddDays(-1), "23:00", nil),
	} {
		if err := repo.Create(ctx, task); err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := repo.ListDueInRange(ctx, owner, june1, june1.AddDays(2), false)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a", "b", "c"}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, task := range tasks {
		if task.Title != want[i] {
			t.Errorf("tasks[%d] = %s, want %s", i, task.Title, want[i])
		}
	}
}

func TestCategoryRepository_DeleteIfUnreferenced(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	used := &model.Category{ID: uuid.NewString(), OwnerID: owner, Name: "used", Color: model.DefaultCategoryColor, CreatedAt: time.Now()}
	free := &model.Category{ID: uuid.NewString(), OwnerID: owner, Name: "free", Color: model.DefaultCategoryColor, CreatedAt: time.Now()}
	for _, c := range []*model.Category{used, free} {
		if err := store.Categories().Create(ctx, c); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := store.Tasks().Create(ctx, newTask("t", dates.New(2024, time.June, 1), "", &used.ID)); err != nil {
			t.Fatal(err)
		}
	}

	deleted, refs, err := store.Categories().DeleteIfUnreferenced(ctx, owner, used.ID)
	if err != nil {
		t.Fatal(err)
	}
	if deleted || refs != 2 {
		t.Errorf("expected blocked delete with 2 refs, got deleted=%v refs=%d", deleted, refs)
	}
	if ok, _ := store.Categories().Exists(ctx, owner, used.ID); !ok {
		t.Error("referenced category must still exist")
	}

	deleted, refs, err = store.Categories().DeleteIfUnreferenced(ctx, owner, free.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !deleted || refs != 0 {
		t.Errorf("expected free category deleted, got deleted=%v refs=%d", deleted, refs)
	}
	if ok, _ := store.Categories().Exists(ctx, owner, free.ID); ok {
		t.Error("deleted category still exists")
	}
}

func TestTaskRepository_CompletionStats(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	repo := store.Tasks()

	due := dates.New(2024, time.June, 5)
	mk := func(status constants.TaskStatus, done *dates.Date) {
		task := newTask("t", due, "", nil)
		task.Status = status
		task.CompletionDate = done
		if err := repo.Create(ctx, task); err != nil {
			t.Fatal(err)
		}
	}

	early := dates.New(2024, time.June, 4)
	onTime := due
	late := dates.New(2024, time.June, 7)
	outside := dates.New(2024, time.May, 1)

	mk(constants.StatusCompleted, &early)
	mk(constants.StatusCompleted, &onTime)
	mk(constants.StatusCompleted, &late)
	mk(constants.StatusCompleted, &outside)
	mk(constants.StatusPending, nil)
	mk(constants.StatusInProgress, nil)

	stats, err := repo.CompletionStats(ctx, owner, dates.New(2024, time.June, 1), dates.New(2024, time.June, 10))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 3 || stats.Early != 2 || stats.Late != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}

	counts, err := repo.CountByStatus(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if counts[constants.StatusCompleted] != 4 || counts[constants.StatusPending] != 1 || counts[constants.StatusInProgress] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
}

func TestEventRepository_ShareCodeUnique(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	code := "abc123"
	first := &model.Event{ID: uuid.NewString(), OwnerID: owner, Title: "Shared Calendar", StartAt: time.Now().UTC(), ShareCode: &code}
	if err := store.Events().Create(ctx, first); err != nil {
		t.Fatal(err)
	}

	dup := &model.Event{ID: uuid.NewString(), OwnerID: owner, Title: "Shared Calendar", StartAt: time.Now().UTC(), ShareCode: &code}
	if err := store.Events().Create(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected duplicated key error, got %v", err)
	}

	plain := []*model.Event{
		{ID: uuid.NewString(), OwnerID: owner, Title: "a", StartAt: time.Now().UTC()},
		{ID: uuid.NewString(), OwnerID: owner, Title: "b", StartAt: time.Now().UTC()},
	}
	for _, e := range plain {
		if err := store.Events().Create(ctx, e); err != nil {
			t.Errorf("events without share code must not collide: %v", err)
		}
	}

	taken, err := store.Events().ShareCodeExists(ctx, code)
	if err != nil || !taken {
		t.Errorf("ShareCodeExists = %v, %v", taken, err)
	}
}

func TestStore_TransactionRollsBack(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx *Store) error {
		if err := tx.Tasks().Create(ctx, newTask("ghost", dates.New(2024, time.June, 1), "", nil)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	tasks, err := store.Tasks().List(ctx, owner, constants.FilterAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("rolled back write is visible: %+v", tasks)
	}
}

func TestPreferencesRepository_FindOrCreate(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	prefs, err := store.Preferences().FindOrCreate(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if !prefs.DeadlineNotification || prefs.EmailNotification || !prefs.PushNotification || prefs.Volume != 70 {
		t.Errorf("unexpected defaults %+v", prefs)
	}

	prefs.Volume = 10
	if err := store.Preferences().Save(ctx, prefs); err != nil {
		t.Fatal(err)
	}

	again, err := store.Preferences().FindOrCreate(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if again.Volume != 10 {
		t.Errorf("expected saved volume 10, got %d", again.Volume)
	}
}
