package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecordSaleRequest struct {
	ItemID   string `json:"item_id"  validate:"required,uuid"`
	Type     string `json:"type"     validate:"required,oneof=unit bale"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	// Price is per unit (or per bale for type=bale). Omitted or zero falls
	// back to the item's stored effective price for the sale type.
	Price *decimal.Decimal `json:"price"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type SaleFilter struct {
	ItemID string `form:"item_id" validate:"omitempty,uuid"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RecordSaleResponse confirms a recorded sale and the stock it moved.
type RecordSaleResponse struct {
	SaleID        string          `json:"sale_id"`
	ItemID        string          `json:"item_id"`
	Type          string          `json:"type"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	UnitsDeducted int             `json:"units_deducted"`
}

// SaleResponse is a ledger row joined with its hierarchy names.
type SaleResponse struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	Type            string          `json:"type"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ItemName        string          `json:"item_name,omitempty"`
	SubcategoryName string          `json:"subcategory_name,omitempty"`
	CategoryName    string          `json:"category_name,omitempty"`
	CreatedAt       string          `json:"created_at"`
}
