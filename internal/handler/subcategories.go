package handler

import (
	"net/http"

	"duka/internal/apierror"
	"duka/internal/dto"
	"duka/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubcategoriesHandler struct{ svc service.SubcategoryService }

func NewSubcategoriesHandler(svc service.SubcategoryService) *SubcategoriesHandler {
	return &SubcategoriesHandler{svc: svc}
}

// List GET /api/subcategories?category_id=
func (h *SubcategoriesHandler) List(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid category_id"))
			return
		}
		categoryID = &id
	}

	resp, err := h.svc.List(c.Request.Context(), categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /api/subcategories/:id
func (h *SubcategoriesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, svcErr := h.svc.Get(c.Request.Context(), id)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/subcategories
func (h *SubcategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateSubcategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
