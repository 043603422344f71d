package repository

import (
	"context"
	"time"

	"duka/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository defines the data access contract for items. Services depend
// on this interface, not on the concrete GORM implementation, so the sale
// transaction can be unit-tested with an in-memory stub.
type ItemRepository interface {
	Create(ctx context.Context, i *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	// List returns all items with Subcategory.Category preloaded, ordered
	// category → subcategory → item name.
	List(ctx context.Context) ([]model.Item, error)
	// UpdateFields applies a partial column update and bumps updated_at when
	// touchTimestamp is set (stock-affecting changes).
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}, touchTimestamp bool) error

	// Used inside the sale transaction — callers must pass the tx instance.
	// FindByIDForUpdateTx takes a row lock so concurrent sales against the
	// same item serialize on the stock check.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Item, error)
	// DeductStockTx decrements total_units only when enough stock remains;
	// the returned row count is zero when another writer got there first.
	DeductStockTx(tx *gorm.DB, id uuid.UUID, units int) (int64, error)

	// DB exposes the underlying handle so services can open transactions.
	DB() *gorm.DB
}

type itemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepository{db: db} }

func (r *itemRepository) Create(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var i model.Item
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *itemRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Joins("JOIN subcategories ON subcategories.id = items.subcategory_id").
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Order("categories.name, subcategories.name, items.name").
		Preload("Subcategory.Category").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}, touchTimestamp bool) error {
	if touchTimestamp {
		fields["updated_at"] = time.Now()
	}
	return r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).
		UpdateColumns(fields).Error
}

func (r *itemRepository) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Item, error) {
	var i model.Item
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&i, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *itemRepository) DeductStockTx(tx *gorm.DB, id uuid.UUID, units int) (int64, error) {
	res := tx.Model(&model.Item{}).
		Where("id = ? AND total_units >= ?", id, units).
		UpdateColumns(map[string]interface{}{
			"total_units": gorm.Expr("total_units - ?", units),
			"updated_at":  time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *itemRepository) DB() *gorm.DB { return r.db }
