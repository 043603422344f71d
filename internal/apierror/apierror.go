// Package apierror provides the standardized error response structures for
// the API. All errors returned to clients go through this package so the
// envelope stays consistent and internal details (stack traces, raw DB
// errors) never leak.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError wraps multiple field-level validation failures.
type ValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Error: "validation failed", Fields: fields}
}

// StockError reports an insufficient-stock rejection with the numbers the
// caller needs to correct the request.
type StockError struct {
	Error     string `json:"error"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

func NewStock(available, requested int) *StockError {
	return &StockError{Error: "Insufficient stock", Available: available, Requested: requested}
}
