package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	SubcategoryID string `json:"subcategory_id" validate:"required,uuid"`
	Name          string `json:"name"           validate:"required,min=1,max=120"`
	BalesCount    int    `json:"bales_count"    validate:"min=0"`
	UnitsPerBale  int    `json:"units_per_bale" validate:"min=0"`
	// TotalUnits defaults to bales_count × units_per_bale when omitted.
	TotalUnits   *int            `json:"total_units"   validate:"omitempty,min=0"`
	BalePrice    decimal.Decimal `json:"bale_price"    validate:"min=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"    validate:"min=0"`
	LandingPrice decimal.Decimal `json:"landing_price" validate:"min=0"`
	SellingPrice decimal.Decimal `json:"selling_price" validate:"min=0"`
}

// UpdateItemRequest is a partial update: only the numeric fields below are
// recognized, nil means "leave unchanged". At least one must be present.
type UpdateItemRequest struct {
	BalesCount   *int             `json:"bales_count"    validate:"omitempty,min=0"`
	UnitsPerBale *int             `json:"units_per_bale" validate:"omitempty,min=0"`
	TotalUnits   *int             `json:"total_units"    validate:"omitempty,min=0"`
	BalePrice    *decimal.Decimal `json:"bale_price"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	LandingPrice *decimal.Decimal `json:"landing_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
}

// Empty reports whether no recognized field was supplied.
func (r UpdateItemRequest) Empty() bool {
	return r.BalesCount == nil && r.UnitsPerBale == nil && r.TotalUnits == nil &&
		r.BalePrice == nil && r.UnitPrice == nil && r.LandingPrice == nil &&
		r.SellingPrice == nil
}

// TouchesStock reports whether a stock-affecting field is present — these
// refresh the item's updated-at timestamp.
func (r UpdateItemRequest) TouchesStock() bool {
	return r.BalesCount != nil || r.UnitsPerBale != nil || r.TotalUnits != nil
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CreateItemResponse struct {
	ID string `json:"id"`
}

// ItemResponse carries the full item row enriched with hierarchy names and
// health recomputed from the current counts.
type ItemResponse struct {
	ID               string          `json:"id"`
	SubcategoryID    string          `json:"subcategory_id"`
	Name             string          `json:"name"`
	BalesCount       int             `json:"bales_count"`
	UnitsPerBale     int             `json:"units_per_bale"`
	TotalUnits       int             `json:"total_units"`
	BalePrice        decimal.Decimal `json:"bale_price"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	LandingPrice     decimal.Decimal `json:"landing_price"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	HealthStatus     string          `json:"health_status"`
	HealthColor      string          `json:"health_color"`
	HealthPercentage string          `json:"health_percentage"`
	ProfitMargin     string          `json:"profit_margin"`
	CategoryName     string          `json:"category_name,omitempty"`
	SubcategoryName  string          `json:"subcategory_name,omitempty"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}
