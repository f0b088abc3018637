package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeProductNotFound  = "PRD001"
	ErrCodeInvalidSortOrder = "PRD002"
	ErrCodeValidation       = "PRD003"
)

// Errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrNegativePrice    = errors.New("price must not be negative")
)

// ProductError carries an error code for the HTTP layer.
type ProductError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProductError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProductError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewProductNotFoundError(externalID string) *ProductError {
	return &ProductError{
		Code:    ErrCodeProductNotFound,
		Message: fmt.Sprintf("Product %s not found", externalID),
		Err:     ErrProductNotFound,
	}
}

func NewInvalidSortOrderError(detail string) *ProductError {
	return &ProductError{
		Code:    ErrCodeInvalidSortOrder,
		Message: detail,
		Err:     ErrInvalidSortOrder,
	}
}
