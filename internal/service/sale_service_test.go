package service

import (
	"context"
	"testing"

	"duka/internal/dto"
	"duka/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(repo *stubItemRepo, totalUnits, unitsPerBale int) *model.Item {
	item := &model.Item{
		ID:            uuid.New(),
		SubcategoryID: uuid.New(),
		Name:          "Sugar 1kg",
		BalesCount:    totalUnits / max(unitsPerBale, 1),
		UnitsPerBale:  unitsPerBale,
		TotalUnits:    totalUnits,
		BalePrice:     decimal.NewFromInt(240),
		UnitPrice:     decimal.NewFromInt(25),
		LandingPrice:  decimal.NewFromInt(18),
		SellingPrice:  decimal.NewFromInt(25),
	}
	repo.items[item.ID] = item
	return item
}

func newSaleServiceForTest() (SaleService, *stubItemRepo, *stubSaleRepo) {
	items := newStubItemRepo()
	sales := &stubSaleRepo{}
	svc := NewSaleService(sales, items, NewItemCache(nil))
	return svc, items, sales
}

func TestRecordSale_DeductsStock(t *testing.T) {
	svc, items, salesRepo := newSaleServiceForTest()
	item := newTestItem(items, 10, 12)

	price := decimal.NewFromInt(30)
	resp, err := svc.Record(context.Background(), dto.RecordSaleRequest{
		ItemID:   item.ID.String(),
		Type:     model.SaleTypeUnit,
		Quantity: 3,
		Price:    &price,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 3, resp.UnitsDeducted)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, 7, item.TotalUnits)
	require.Len(t, salesRepo.sales, 1)
	assert.True(t, salesRepo.sales[0].Price.Equal(price))
}

func TestRecordSale_BaleSaleDeductsUnitEquivalent(t *testing.T) {
	svc, items, _ := newSaleServiceForTest()
	item := newTestItem(items, 30, 12)

	resp, err := svc.Record(context.Background(), dto.RecordSaleRequest{
		ItemID:   item.ID.String(),
		Type:     model.SaleTypeBale,
		Quantity: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 24, resp.UnitsDeducted)
	assert.Equal(t, 6, item.TotalUnits)
	// Omitted price falls back to the per-unit share of the bale price
	// (240 / 12), and the total multiplies by the bale quantity.
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(40)))
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	svc, items, salesRepo := newSaleServiceForTest()
	item := newTestItem(items, 5, 4)

	_, err := svc.Record(context.Background(), dto.RecordSaleRequest{
		ItemID:   item.ID.String(),
		Type:     model.SaleTypeBale,
		Quantity: 2,
	})
	require.Error(t, err)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, 8, stockErr.Requested)

	// Nothing written, nothing deducted.
	assert.Equal(t, 5, item.TotalUnits)
	assert.Empty(t, salesRepo.sales)
}

func TestRecordSale_SequentialSalesStopAtZero(t *testing.T) {
	svc, items, _ := newSaleServiceForTest()
	item := newTestItem(items, 4, 1)

	req := dto.RecordSaleRequest{ItemID: item.ID.String(), Type: model.SaleTypeUnit, Quantity: 3}

	_, err := svc.Record(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), req)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 1, item.TotalUnits)
}

func TestRecordSale_ZeroPriceFallsBack(t *testing.T) {
	svc, items, _ := newSaleServiceForTest()
	item := newTestItem(items, 10, 1)

	zero := decimal.Zero
	resp, err := svc.Record(context.Background(), dto.RecordSaleRequest{
		ItemID:   item.ID.String(),
		Type:     model.SaleTypeUnit,
		Quantity: 1,
		Price:    &zero,
	})
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(item.UnitPrice))
}

func TestRecordSale_NegativePriceRejected(t *testing.T) {
	svc, items, _ := newSaleServiceForTest()
	item := newTestItem(items, 10, 1)

	negative := decimal.NewFromInt(-5)
	_, err := svc.Record(context.Background(), dto.RecordSaleRequest{
		ItemID:   item.ID.String(),
		Type:     model.SaleTypeUnit,
		Quantity: 1,
		Price:    &negative,
	})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 10, item.TotalUnits)
}

func TestRecordSale_UnknownItem(t *testing.T) {
	svc, _, _ := newSaleServiceForTest()

	_, err := svc.Record(context.Background(), dto.RecordSaleRequest{
		ItemID:   uuid.NewString(),
		Type:     model.SaleTypeUnit,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListSales_FilterAndLimit(t *testing.T) {
	svc, items, _ := newSaleServiceForTest()
	first := newTestItem(items, 100, 1)
	second := newTestItem(items, 100, 1)

	for i := 0; i < 3; i++ {
		_, err := svc.Record(context.Background(), dto.RecordSaleRequest{
			ItemID: first.ID.String(), Type: model.SaleTypeUnit, Quantity: 1,
		})
		require.NoError(t, err)
	}
	_, err := svc.Record(context.Background(), dto.RecordSaleRequest{
		ItemID: second.ID.String(), Type: model.SaleTypeUnit, Quantity: 1,
	})
	require.NoError(t, err)

	all, err := svc.List(context.Background(), dto.SaleFilter{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	filtered, err := svc.List(context.Background(), dto.SaleFilter{ItemID: first.ID.String(), Limit: 2})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
	for _, s := range filtered {
		assert.Equal(t, first.ID.String(), s.ItemID)
	}
}

func TestGetSale_NotFound(t *testing.T) {
	svc, _, _ := newSaleServiceForTest()

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSaleNotFound)
}
