package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is the top level of the catalog hierarchy.
// Deleting one cascades to its subcategories and their items (DB-level FK).
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string { return "categories" }
