package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateProductRequest - POST /products
type CreateProductRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
			validation.By(nonNegativePrice),
		),
	)
}

// UpdateProductRequest - PATCH /products/:id
// Both fields are optional; a nil field leaves the stored value untouched.
type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("name must not be empty"),
				validation.Length(1, 255),
			),
		),
		validation.Field(&r.Price,
			validation.By(nonNegativePrice),
		),
	)
}

func nonNegativePrice(value interface{}) error {
	switch v := value.(type) {
	case *decimal.Decimal:
		if v != nil && v.IsNegative() {
			return ErrNegativePrice
		}
	case decimal.Decimal:
		if v.IsNegative() {
			return ErrNegativePrice
		}
	}
	return nil
}

// ========================================
// RESPONSE DTOs
// ========================================

// ProductResponse is the external read shape. ID carries the external ID.
type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
