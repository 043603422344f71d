// Package pricing holds the derived-field calculators for items: stock
// health, profit margin, and the effective per-sale price fallback. These
// are pure functions — every layer that needs a derived display field calls
// in here so there is exactly one set of rules.
package pricing

import (
	"strconv"

	"github.com/shopspring/decimal"

	"duka/internal/model"
)

// Health statuses and their display colors.
const (
	HealthUnknown = "unknown"
	HealthStrong  = "strong"
	HealthWeak    = "weak"

	ColorGray   = "gray"
	ColorBlue   = "blue"
	ColorOrange = "orange"
)

// strongThreshold is the stock ratio at or above which an item counts as
// fully stocked. Exactly 0.8 is strong.
const strongThreshold = 0.8

// HealthInfo is the derived stock-sufficiency indicator for an item.
type HealthInfo struct {
	Status     string
	Color      string
	Percentage string // ratio × 100, one decimal, e.g. "87.5"
}

// Health compares current units against the nominal bale-derived capacity.
// A capacity of zero (or less, after odd manual edits) means the item has no
// meaningful baseline, so the status is unknown rather than weak.
func Health(totalUnits, balesCount, unitsPerBale int) HealthInfo {
	capacity := balesCount * unitsPerBale
	if capacity <= 0 {
		return HealthInfo{Status: HealthUnknown, Color: ColorGray, Percentage: "0.0"}
	}

	ratio := float64(totalUnits) / float64(capacity)
	pct := strconv.FormatFloat(ratio*100, 'f', 1, 64)

	if ratio >= strongThreshold {
		return HealthInfo{Status: HealthStrong, Color: ColorBlue, Percentage: pct}
	}
	return HealthInfo{Status: HealthWeak, Color: ColorOrange, Percentage: pct}
}

// ProfitMargin returns ((selling − landing) / landing × 100) to one decimal.
// A non-positive landing price has no cost basis to compare against → "0.0".
func ProfitMargin(sellingPrice, landingPrice decimal.Decimal) string {
	if landingPrice.LessThanOrEqual(decimal.Zero) {
		return "0.0"
	}
	return sellingPrice.Sub(landingPrice).
		Div(landingPrice).
		Mul(decimal.NewFromInt(100)).
		StringFixed(1)
}

// EffectiveUnitPrice is the stored fallback price for a sale of the given
// type: per-bale sales derive it from the bale price, unit sales use the
// unit price directly. UnitsPerBale of zero is treated as one so a
// misconfigured item cannot divide by zero.
func EffectiveUnitPrice(saleType string, item *model.Item) decimal.Decimal {
	if saleType == model.SaleTypeBale {
		units := item.UnitsPerBale
		if units <= 0 {
			units = 1
		}
		return item.BalePrice.Div(decimal.NewFromInt(int64(units)))
	}
	return item.UnitPrice
}
