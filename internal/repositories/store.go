package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store is the single handle the services receive. Repositories obtained
// from a Store inside Transaction share that transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn in one database transaction; any error rolls back
// every write fn made.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Tasks() *TaskRepository {
	return NewTaskRepository(s.db)
}

func (s *Store) Categories() *CategoryRepository {
	return NewCategoryRepository(s.db)
}

func (s *Store) Events() *EventRepository {
	return NewEventRepository(s.db)
}

func (s *Store) Preferences() *PreferencesRepository {
	return NewPreferencesRepository(s.db)
}
