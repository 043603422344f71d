package repository

import (
	"context"

	"duka/internal/dto"
	"duka/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository defines the data access contract for the sales ledger.
// Rows are append-only: there is deliberately no update or delete method.
type SaleRepository interface {
	// CreateTx inserts the ledger row inside the sale transaction.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	// List returns recent sales, newest first, with hierarchy names
	// preloaded. The filter's item_id narrows to one item.
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	// ListByItem returns raw ledger rows for one item, newest first.
	ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]model.Sale, error)
}

type saleRepository struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepository{db: db} }

func (r *saleRepository) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepository) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	q := r.db.WithContext(ctx).
		Preload("Item.Subcategory.Category").
		Order("created_at DESC").
		Limit(filter.Limit)
	if filter.ItemID != "" {
		q = q.Where("item_id = ?", filter.ItemID)
	}
	var sales []model.Sale
	err := q.Find(&sales).Error
	return sales, err
}

func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Item.Subcategory.Category").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepository) ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}
