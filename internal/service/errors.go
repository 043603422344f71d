package service

import (
	"errors"
	"fmt"
)

// Sentinel errors let handlers pick the right status code without string
// matching. Anything else coming out of a service is a storage error (500).
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrSaleNotFound        = errors.New("sale not found")
)

// ValidationError marks input the boundary validator could not catch
// (cross-field or lookup-dependent checks). Maps to 400.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) error { return &ValidationError{Msg: msg} }

// InsufficientStockError reports a sale rejected by the stock check. The
// transaction that produced it left no partial effect.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
}
