package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is where stock lives. TotalUnits is decremented by sales and adjusted
// by manual restocks; BalesCount × UnitsPerBale is the nominal capacity used
// for the health calculation. The stored HealthStatus/HealthColor are a
// snapshot from the last write — list responses always recompute health from
// the current counts instead of trusting them.
type Item struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubcategoryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_item_name"`
	Name          string    `gorm:"not null;uniqueIndex:idx_item_name"`
	BalesCount    int       `gorm:"not null;default:0"`
	UnitsPerBale  int       `gorm:"not null;default:0"`
	TotalUnits    int       `gorm:"not null;default:0"`
	BalePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	LandingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	HealthStatus  string          `gorm:"not null;default:'strong'"`
	HealthColor   string          `gorm:"not null;default:'blue'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID"`
}

func (Item) TableName() string { return "items" }
