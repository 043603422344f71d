package model

import (
	"github.com/google/uuid"
)

// Subcategory groups items inside a category. Name is unique per category,
// not globally.
type Subcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_subcategory_name"`
	Name       string    `gorm:"not null;uniqueIndex:idx_subcategory_name"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Items    []Item    `gorm:"foreignKey:SubcategoryID"`
}

func (Subcategory) TableName() string { return "subcategories" }
