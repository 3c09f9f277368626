package models

import (
	"context"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) GetCategory(ctx context.Context, id uint) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return &category, nil
}

// GetCategoryByDescription returns the oldest category with the given description.
// Descriptions are not unique, so later duplicates are only reachable by id.
func (r *CategoriesRepository) GetCategoryByDescription(ctx context.Context, description string) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).
		Where("description = ?", description).
		Order("id").
		First(&category).Error; err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return &category, nil
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoriesRepository) UpdateCategory(ctx context.Context, category *Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	existing, err := r.GetCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(existing).
		Update("description", category.Description).Error
}

// DeleteCategory removes the category together with every product and purchase item
// filed under it.
func (r *CategoriesRepository) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category Category
		if err := tx.First(&category, id).Error; err != nil {
			return notFound(err, ErrCategoryNotFound)
		}
		if err := tx.Where("category_id = ?", id).Delete(&PurchaseItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
