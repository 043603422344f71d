package dto

import "github.com/google/uuid"

type CreateSubcategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Name       string `json:"name"        validate:"required"`
}

type SubcategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
}
