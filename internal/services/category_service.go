package services

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/maiquockhanh06/Timeflow-app/internal/errors"
	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CategoryService struct {
	store *repository.Store
	now   func() time.Time
}

func NewCategoryService(store *repository.Store) *CategoryService {
	return &CategoryService{
		store: store,
		now:   time.Now,
	}
}

// Add creates a category. An empty color falls back to the default palette
// value.
func (s *CategoryService) Add(ctx context.Context, ownerID, name, color string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("category name is required")
	}

	color = strings.TrimSpace(color)
	if color == "" {
		color = model.DefaultCategoryColor
	}
	if !colorPattern.MatchString(color) {
		return nil, apperrors.Validation("invalid color %q: expected #rrggbb", color)
	}

	category := &model.Category{
		ID:        uuid.Must(uuid.NewV7()).String(),
		OwnerID:   ownerID,
		Name:      name,
		Color:     strings.ToLower(color),
		CreatedAt: s.now().UTC(),
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.Categories().Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("category %s (%s) created for owner %s", category.ID, category.Name, ownerID)
	return category, nil
}

// Delete removes a category that no task references. A referenced category
// is left untouched and the conflict carries the blocking task count.
func (s *CategoryService) Delete(ctx context.Context, ownerID, categoryID string) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		exists, err := tx.Categories().Exists(ctx, ownerID, categoryID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("category", categoryID)
		}

		deleted, refs, err := tx.Categories().DeleteIfUnreferenced(ctx, ownerID, categoryID)
		if err != nil {
			return err
		}
		if deleted {
			return nil
		}
		if refs == 0 {
			return apperrors.NotFound("category", categoryID)
		}
		return apperrors.InUse("category", categoryID, refs)
	})
	if err != nil {
		return err
	}

	log.Printf("category %s deleted for owner %s", categoryID, ownerID)
	return nil
}

func (s *CategoryService) List(ctx context.Context, ownerID string) ([]model.Category, error) {
	return s.store.Categories().List(ctx, ownerID)
}
