package repository

import (
	"context"

	"duka/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubcategoryRepository defines the data access contract for subcategories.
type SubcategoryRepository interface {
	Create(ctx context.Context, s *model.Subcategory) error
	// List returns all subcategories, or only those of a category when
	// categoryID is non-nil. Ordered by name either way.
	List(ctx context.Context, categoryID *uuid.UUID) ([]model.Subcategory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subcategory, error)
}

type subcategoryRepository struct{ db *gorm.DB }

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) Create(ctx context.Context, s *model.Subcategory) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subcategoryRepository) List(ctx context.Context, categoryID *uuid.UUID) ([]model.Subcategory, error) {
	q := r.db.WithContext(ctx).Order("name asc")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	var list []model.Subcategory
	err := q.Find(&list).Error
	return list, err
}

func (r *subcategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subcategory, error) {
	var s model.Subcategory
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
