package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"product-service/internal/domains/product/model"
	"product-service/internal/domains/product/service"
	"product-service/internal/shared/response"
)

const (
	defaultOffset = 0
	defaultLimit  = 10
)

type ProductHandler struct {
	svc service.Service
}

func NewProductHandler(svc service.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create handles POST /products
// 201 with Location header on success, 422 on validation failure.
func (h *ProductHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, model.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.validationError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/products/%s", created.ID))
	c.JSON(http.StatusCreated, created)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	retrieved, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, retrieved)
}

// List handles GET /products?offset=&limit=&sort=
// offset is a zero-based page index; defaults are offset=0, limit=10.
func (h *ProductHandler) List(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(defaultOffset)))
	if err != nil || offset < 0 {
		response.UnprocessableEntity(c, model.ErrCodeValidation, "offset must be a non-negative integer")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		response.UnprocessableEntity(c, model.ErrCodeValidation, "limit must be a positive integer")
		return
	}

	products, err := h.svc.List(c.Request.Context(), offset, limit, c.QueryArray("sort"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Update handles PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, model.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.validationError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /products/:id
// Always 204: deleting an absent product is a no-op.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// serviceError maps domain errors onto HTTP status codes.
func (h *ProductHandler) serviceError(c *gin.Context, err error) {
	var productErr *model.ProductError
	if errors.As(err, &productErr) {
		switch {
		case errors.Is(productErr, model.ErrProductNotFound):
			response.NotFound(c, productErr.Code, productErr.Message)
			return
		case errors.Is(productErr, model.ErrInvalidSortOrder):
			response.UnprocessableEntity(c, productErr.Code, productErr.Message)
			return
		}
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Msg("Product operation failed")
	response.InternalServerError(c, "Internal server error")
}

func (h *ProductHandler) validationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, model.ErrCodeValidation, "Validation failed", verrs)
		return
	}
	response.UnprocessableEntity(c, model.ErrCodeValidation, err.Error())
}
