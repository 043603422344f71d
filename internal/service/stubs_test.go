package service

import (
	"context"
	"sort"
	"time"

	"duka/internal/dto"
	"duka/internal/model"
	"duka/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
// Stubs return gorm.ErrRecordNotFound like the real repositories so the
// services' sentinel mapping is exercised.

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	list := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

type stubSubcategoryRepo struct {
	subcategories map[uuid.UUID]*model.Subcategory
}

func newStubSubcategoryRepo() *stubSubcategoryRepo {
	return &stubSubcategoryRepo{subcategories: make(map[uuid.UUID]*model.Subcategory)}
}

func (r *stubSubcategoryRepo) Create(_ context.Context, s *model.Subcategory) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.subcategories[s.ID] = s
	return nil
}

func (r *stubSubcategoryRepo) List(_ context.Context, categoryID *uuid.UUID) ([]model.Subcategory, error) {
	list := make([]model.Subcategory, 0, len(r.subcategories))
	for _, s := range r.subcategories {
		if categoryID != nil && s.CategoryID != *categoryID {
			continue
		}
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *stubSubcategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Subcategory, error) {
	s, ok := r.subcategories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

var _ repository.SubcategoryRepository = (*stubSubcategoryRepo)(nil)

type stubItemRepo struct {
	items map[uuid.UUID]*model.Item
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.Item)}
}

func (r *stubItemRepo) Create(_ context.Context, i *model.Item) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	now := time.Now()
	i.CreatedAt = now
	i.UpdatedAt = now
	r.items[i.ID] = i
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	list := make([]model.Item, 0, len(r.items))
	for _, i := range r.items {
		list = append(list, *i)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *stubItemRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}, touchTimestamp bool) error {
	i, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "bales_count":
			i.BalesCount = v.(int)
		case "units_per_bale":
			i.UnitsPerBale = v.(int)
		case "total_units":
			i.TotalUnits = v.(int)
		case "bale_price":
			i.BalePrice = v.(decimal.Decimal)
		case "unit_price":
			i.UnitPrice = v.(decimal.Decimal)
		case "landing_price":
			i.LandingPrice = v.(decimal.Decimal)
		case "selling_price":
			i.SellingPrice = v.(decimal.Decimal)
		}
	}
	if touchTimestamp {
		i.UpdatedAt = time.Now()
	}
	return nil
}

func (r *stubItemRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *stubItemRepo) DeductStockTx(_ *gorm.DB, id uuid.UUID, units int) (int64, error) {
	i, ok := r.items[id]
	if !ok || i.TotalUnits < units {
		return 0, nil
	}
	i.TotalUnits -= units
	i.UpdatedAt = time.Now()
	return 1, nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

var _ repository.ItemRepository = (*stubItemRepo)(nil)

type stubSaleRepo struct {
	sales []*model.Sale
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.sales = append(r.sales, s)
	return nil
}

func (r *stubSaleRepo) List(_ context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	result := make([]model.Sale, 0, len(r.sales))
	for idx := len(r.sales) - 1; idx >= 0; idx-- {
		s := r.sales[idx]
		if filter.ItemID != "" && s.ItemID.String() != filter.ItemID {
			continue
		}
		result = append(result, *s)
		if len(result) == filter.Limit {
			break
		}
	}
	return result, nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) ListByItem(_ context.Context, itemID uuid.UUID, limit int) ([]model.Sale, error) {
	result := make([]model.Sale, 0, limit)
	for idx := len(r.sales) - 1; idx >= 0 && len(result) < limit; idx-- {
		if r.sales[idx].ItemID == itemID {
			result = append(result, *r.sales[idx])
		}
	}
	return result, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)
