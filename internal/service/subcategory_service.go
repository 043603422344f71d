package service

import (
	"context"
	"errors"
	"strings"

	"duka/internal/dto"
	"duka/internal/model"
	"duka/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubcategoryService defines business operations for subcategories.
type SubcategoryService interface {
	Create(ctx context.Context, req dto.CreateSubcategoryRequest) (dto.SubcategoryResponse, error)
	List(ctx context.Context, categoryID *uuid.UUID) ([]dto.SubcategoryResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.SubcategoryResponse, error)
}

type subcategoryService struct {
	repo       repository.SubcategoryRepository
	categories repository.CategoryRepository
}

func NewSubcategoryService(repo repository.SubcategoryRepository, categories repository.CategoryRepository) SubcategoryService {
	return &subcategoryService{repo: repo, categories: categories}
}

func mapSubcategory(s model.Subcategory) dto.SubcategoryResponse {
	return dto.SubcategoryResponse{ID: s.ID, CategoryID: s.CategoryID, Name: s.Name}
}

func (s *subcategoryService) Create(ctx context.Context, req dto.CreateSubcategoryRequest) (dto.SubcategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return dto.SubcategoryResponse{}, NewValidationError("category_id and name are required")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return dto.SubcategoryResponse{}, NewValidationError("invalid category_id")
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubcategoryResponse{}, NewValidationError("category does not exist")
		}
		return dto.SubcategoryResponse{}, err
	}

	sub := &model.Subcategory{CategoryID: categoryID, Name: name}
	if err := s.repo.Create(ctx, sub); err != nil {
		return dto.SubcategoryResponse{}, err
	}
	return mapSubcategory(*sub), nil
}

func (s *subcategoryService) List(ctx context.Context, categoryID *uuid.UUID) ([]dto.SubcategoryResponse, error) {
	list, err := s.repo.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SubcategoryResponse, 0, len(list))
	for _, sub := range list {
		result = append(result, mapSubcategory(sub))
	}
	return result, nil
}

func (s *subcategoryService) Get(ctx context.Context, id uuid.UUID) (dto.SubcategoryResponse, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubcategoryResponse{}, ErrSubcategoryNotFound
		}
		return dto.SubcategoryResponse{}, err
	}
	return mapSubcategory(*sub), nil
}
