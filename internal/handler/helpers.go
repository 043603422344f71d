package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"duka/internal/apierror"
	"duka/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parsePositiveInt rejects non-numeric and non-positive query values
// instead of coercing them.
func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}

// respondServiceError maps the service error taxonomy onto HTTP status
// codes: validation → 400, insufficient stock → 400 with context,
// not-found → 404, anything else → 500 with a safe message.
func respondServiceError(c *gin.Context, err error) {
	var stockErr *service.InsufficientStockError
	var valErr *service.ValidationError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, apierror.NewStock(stockErr.Available, stockErr.Requested))
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, apierror.New(valErr.Msg))
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrSubcategoryNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrSaleNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("storage error")
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
