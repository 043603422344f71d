package service

import (
	"context"
	"errors"
	"time"

	"duka/internal/dto"
	"duka/internal/model"
	"duka/internal/pricing"
	"duka/internal/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	salesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duka_sales_recorded_total",
		Help: "Sales written to the ledger.",
	})
	salesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duka_sales_rejected_total",
		Help: "Sales rejected by the stock check.",
	})
)

// SaleService defines business operations for the sales ledger.
type SaleService interface {
	// Record validates and applies a sale atomically: ledger insert plus
	// stock decrement succeed or fail as one unit.
	Record(ctx context.Context, req dto.RecordSaleRequest) (*dto.RecordSaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.SaleResponse, error)
	ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo  repository.SaleRepository
	items repository.ItemRepository
	cache *ItemCache
}

func NewSaleService(repo repository.SaleRepository, items repository.ItemRepository, cache *ItemCache) SaleService {
	return &saleService{repo: repo, items: items, cache: cache}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Record applies the full sale contract:
//  1. the handler's binding already rejected malformed type/quantity; a
//     negative price is rejected here
//  2. the item row is locked FOR UPDATE so concurrent sales against the same
//     item serialize on the stock check
//  3. units to deduct = quantity × units_per_bale for bale sales
//  4. sale price falls back to the stored effective price when the caller
//     omitted it (or sent zero)
//  5. insufficient stock aborts before anything is written
//  6. ledger insert + guarded decrement commit together or not at all
func (s *saleService) Record(ctx context.Context, req dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, NewValidationError("invalid item_id")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, NewValidationError("price must not be negative")
	}

	var resp *dto.RecordSaleResponse
	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		item, err := s.items.FindByIDForUpdateTx(tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		unitsToDeduct := req.Quantity
		if req.Type == model.SaleTypeBale {
			unitsToDeduct = req.Quantity * item.UnitsPerBale
		}

		salePrice := pricing.EffectiveUnitPrice(req.Type, item)
		if req.Price != nil && !req.Price.IsZero() {
			salePrice = *req.Price
		}

		if item.TotalUnits < unitsToDeduct {
			return &InsufficientStockError{Available: item.TotalUnits, Requested: unitsToDeduct}
		}

		totalAmount := salePrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
		sale := &model.Sale{
			ItemID:      itemID,
			Type:        req.Type,
			Quantity:    req.Quantity,
			Price:       salePrice,
			TotalAmount: totalAmount,
		}
		if err := s.repo.CreateTx(tx, sale); err != nil {
			return err
		}

		rows, err := s.items.DeductStockTx(tx, itemID, unitsToDeduct)
		if err != nil {
			return err
		}
		if rows == 0 {
			// The guarded UPDATE found less stock than the locked read did —
			// cannot happen under the row lock, but never let it slide.
			return &InsufficientStockError{Available: item.TotalUnits, Requested: unitsToDeduct}
		}

		resp = &dto.RecordSaleResponse{
			SaleID:        sale.ID.String(),
			ItemID:        itemID.String(),
			Type:          req.Type,
			Quantity:      req.Quantity,
			Price:         salePrice,
			TotalAmount:   totalAmount,
			UnitsDeducted: unitsToDeduct,
		}
		return nil
	})
	if txErr != nil {
		var stockErr *InsufficientStockError
		if errors.As(txErr, &stockErr) {
			salesRejected.Inc()
		}
		return nil, txErr
	}

	salesRecorded.Inc()
	s.cache.Invalidate(ctx)
	return resp, nil
}

func saleToResponse(v model.Sale) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:          v.ID.String(),
		ItemID:      v.ItemID.String(),
		Type:        v.Type,
		Quantity:    v.Quantity,
		Price:       v.Price,
		TotalAmount: v.TotalAmount,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
	if v.Item != nil {
		resp.ItemName = v.Item.Name
		if v.Item.Subcategory != nil {
			resp.SubcategoryName = v.Item.Subcategory.Name
			if v.Item.Subcategory.Category != nil {
				resp.CategoryName = v.Item.Subcategory.Category.Name
			}
		}
	}
	return resp
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SaleResponse, 0, len(sales))
	for _, v := range sales {
		result = append(result, saleToResponse(v))
	}
	return result, nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SaleResponse{}, ErrSaleNotFound
		}
		return dto.SaleResponse{}, err
	}
	return saleToResponse(*sale), nil
}

func (s *saleService) ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]dto.SaleResponse, error) {
	if limit < 1 {
		limit = 20
	}
	sales, err := s.repo.ListByItem(ctx, itemID, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SaleResponse, 0, len(sales))
	for _, v := range sales {
		result = append(result, saleToResponse(v))
	}
	return result, nil
}
