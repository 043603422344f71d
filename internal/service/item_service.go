package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"duka/internal/dto"
	"duka/internal/model"
	"duka/internal/pricing"
	"duka/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemService defines business operations for stock items.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (dto.CreateItemResponse, error)
	// List returns every item enriched with hierarchy names and health
	// recomputed from the current counts.
	List(ctx context.Context) ([]dto.ItemResponse, error)
	// Update applies a partial numeric update and returns the full row with
	// health recomputed from the post-update values.
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (dto.ItemResponse, error)
}

type itemService struct {
	repo          repository.ItemRepository
	subcategories repository.SubcategoryRepository
	cache         *ItemCache
}

func NewItemService(repo repository.ItemRepository, subcategories repository.SubcategoryRepository, cache *ItemCache) ItemService {
	return &itemService{repo: repo, subcategories: subcategories, cache: cache}
}

// itemToResponse maps a model row into the enriched DTO. Health and margin
// are always derived from the row's current fields, never from the stored
// snapshot columns.
func itemToResponse(i model.Item) dto.ItemResponse {
	h := pricing.Health(i.TotalUnits, i.BalesCount, i.UnitsPerBale)

	resp := dto.ItemResponse{
		ID:               i.ID.String(),
		SubcategoryID:    i.SubcategoryID.String(),
		Name:             i.Name,
		BalesCount:       i.BalesCount,
		UnitsPerBale:     i.UnitsPerBale,
		TotalUnits:       i.TotalUnits,
		BalePrice:        i.BalePrice,
		UnitPrice:        i.UnitPrice,
		LandingPrice:     i.LandingPrice,
		SellingPrice:     i.SellingPrice,
		HealthStatus:     h.Status,
		HealthColor:      h.Color,
		HealthPercentage: h.Percentage,
		ProfitMargin:     pricing.ProfitMargin(i.SellingPrice, i.LandingPrice),
		CreatedAt:        i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        i.UpdatedAt.Format(time.RFC3339),
	}
	if i.Subcategory != nil {
		resp.SubcategoryName = i.Subcategory.Name
		if i.Subcategory.Category != nil {
			resp.CategoryName = i.Subcategory.Category.Name
		}
	}
	return resp
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (dto.CreateItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return dto.CreateItemResponse{}, NewValidationError("name is required")
	}

	subcategoryID, err := uuid.Parse(req.SubcategoryID)
	if err != nil {
		return dto.CreateItemResponse{}, NewValidationError("invalid subcategory_id")
	}
	if _, err := s.subcategories.FindByID(ctx, subcategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CreateItemResponse{}, NewValidationError("subcategory does not exist")
		}
		return dto.CreateItemResponse{}, err
	}

	totalUnits := req.BalesCount * req.UnitsPerBale
	if req.TotalUnits != nil {
		totalUnits = *req.TotalUnits
	}
	h := pricing.Health(totalUnits, req.BalesCount, req.UnitsPerBale)

	item := &model.Item{
		SubcategoryID: subcategoryID,
		Name:          name,
		BalesCount:    req.BalesCount,
		UnitsPerBale:  req.UnitsPerBale,
		TotalUnits:    totalUnits,
		BalePrice:     req.BalePrice,
		UnitPrice:     req.UnitPrice,
		LandingPrice:  req.LandingPrice,
		SellingPrice:  req.SellingPrice,
		HealthStatus:  h.Status,
		HealthColor:   h.Color,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return dto.CreateItemResponse{}, err
	}

	s.cache.Invalidate(ctx)
	return dto.CreateItemResponse{ID: item.ID.String()}, nil
}

func (s *itemService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	if cached, ok := s.cache.GetList(ctx); ok {
		return cached, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, itemToResponse(i))
	}

	s.cache.SetList(ctx, result)
	return result, nil
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (dto.ItemResponse, error) {
	if req.Empty() {
		return dto.ItemResponse{}, NewValidationError("no valid fields to update")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ItemResponse{}, ErrItemNotFound
		}
		return dto.ItemResponse{}, err
	}

	fields := map[string]interface{}{}
	if req.BalesCount != nil {
		fields["bales_count"] = *req.BalesCount
	}
	if req.UnitsPerBale != nil {
		fields["units_per_bale"] = *req.UnitsPerBale
	}
	if req.TotalUnits != nil {
		fields["total_units"] = *req.TotalUnits
	}
	if req.BalePrice != nil {
		fields["bale_price"] = *req.BalePrice
	}
	if req.UnitPrice != nil {
		fields["unit_price"] = *req.UnitPrice
	}
	if req.LandingPrice != nil {
		fields["landing_price"] = *req.LandingPrice
	}
	if req.SellingPrice != nil {
		fields["selling_price"] = *req.SellingPrice
	}

	if err := s.repo.UpdateFields(ctx, id, fields, req.TouchesStock()); err != nil {
		return dto.ItemResponse{}, err
	}

	// Re-read the row and hand back fresh derived fields rather than
	// trusting anything computed before the write.
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ItemResponse{}, err
	}

	s.cache.Invalidate(ctx)
	return itemToResponse(*updated), nil
}
