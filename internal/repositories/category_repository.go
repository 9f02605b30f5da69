package repository

import (
	"context"

	"gorm.io/gorm"

	model "github.com/maiquockhanh06/Timeflow-app/internal/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepository) Exists(ctx context.Context, ownerID, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) List(ctx context.Context, ownerID string) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc, id asc").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Count(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// DeleteIfUnreferenced removes the category in a single statement that
// only matches while no task points at it. When nothing was deleted it
// reports how many tasks block the delete.
func (r *CategoryRepository) DeleteIfUnreferenced(ctx context.Context, ownerID, id string) (bool, int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Where("NOT EXISTS (SELECT 1 FROM tasks WHERE tasks.category_id = categories.id)").
		Delete(&model.Category{})
	if res.Error != nil {
		return false, 0, res.Error
	}
	if res.RowsAffected > 0 {
		return true, 0, nil
	}

	refs, err := NewTaskRepository(r.db).CountByCategory(ctx, id)
	if err != nil {
		return false, 0, err
	}
	return false, refs, nil
}
