package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale types — a sale moves either loose units or whole bales.
const (
	SaleTypeUnit = "unit"
	SaleTypeBale = "bale"
)

// Sale is one row of the sales ledger. Rows are immutable once written:
// the stock decrement that accompanies them happens in the same transaction
// and there is no update or delete path.
type Sale struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"not null"` // "unit" | "bale"
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
}

func (Sale) TableName() string { return "sales" }
