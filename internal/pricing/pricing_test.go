package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"duka/internal/model"
)

func TestHealth_ZeroCapacity(t *testing.T) {
	for _, h := range []HealthInfo{
		Health(10, 0, 24),  // no bales
		Health(10, 5, 0),   // no units per bale
		Health(0, 0, 0),    // empty item
		Health(10, -1, 24), // negative after a bad manual edit
	} {
		assert.Equal(t, HealthUnknown, h.Status)
		assert.Equal(t, ColorGray, h.Color)
		assert.Equal(t, "0.0", h.Percentage)
	}
}

func TestHealth_StrongBoundary(t *testing.T) {
	// capacity = 5 × 20 = 100; exactly 80% must be strong
	h := Health(80, 5, 20)
	assert.Equal(t, HealthStrong, h.Status)
	assert.Equal(t, ColorBlue, h.Color)
	assert.Equal(t, "80.0", h.Percentage)

	// one unit below the boundary flips to weak
	h = Health(79, 5, 20)
	assert.Equal(t, HealthWeak, h.Status)
	assert.Equal(t, ColorOrange, h.Color)
	assert.Equal(t, "79.0", h.Percentage)
}

func TestHealth_FullStock(t *testing.T) {
	h := Health(120, 5, 24)
	assert.Equal(t, HealthStrong, h.Status)
	assert.Equal(t, "100.0", h.Percentage)
}

func TestHealth_PercentageOneDecimal(t *testing.T) {
	// 7 / 8 = 87.5%
	h := Health(7, 2, 4)
	assert.Equal(t, "87.5", h.Percentage)
}

func TestProfitMargin(t *testing.T) {
	margin := ProfitMargin(decimal.NewFromInt(150), decimal.NewFromInt(100))
	assert.Equal(t, "50.0", margin)

	margin = ProfitMargin(decimal.NewFromFloat(142.5), decimal.NewFromInt(100))
	assert.Equal(t, "42.5", margin)

	// selling below cost yields a negative margin, not a guard
	margin = ProfitMargin(decimal.NewFromInt(90), decimal.NewFromInt(100))
	assert.Equal(t, "-10.0", margin)
}

func TestProfitMargin_NoLandingPrice(t *testing.T) {
	assert.Equal(t, "0.0", ProfitMargin(decimal.NewFromInt(500), decimal.Zero))
	assert.Equal(t, "0.0", ProfitMargin(decimal.NewFromInt(500), decimal.NewFromInt(-1)))
	assert.Equal(t, "0.0", ProfitMargin(decimal.Zero, decimal.Zero))
}

func TestEffectiveUnitPrice(t *testing.T) {
	item := &model.Item{
		UnitsPerBale: 24,
		BalePrice:    decimal.NewFromInt(1200),
		UnitPrice:    decimal.NewFromInt(60),
	}

	assert.True(t, decimal.NewFromInt(50).Equal(EffectiveUnitPrice(model.SaleTypeBale, item)))
	assert.True(t, decimal.NewFromInt(60).Equal(EffectiveUnitPrice(model.SaleTypeUnit, item)))
}

func TestEffectiveUnitPrice_ZeroUnitsPerBale(t *testing.T) {
	// units_per_bale = 0 is treated as 1 — the whole bale price comes back
	item := &model.Item{
		UnitsPerBale: 0,
		BalePrice:    decimal.NewFromInt(1200),
	}
	assert.True(t, decimal.NewFromInt(1200).Equal(EffectiveUnitPrice(model.SaleTypeBale, item)))
}
