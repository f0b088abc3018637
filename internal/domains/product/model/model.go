package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the persisted product entity.
//
// ID is the store-assigned primary key and never leaves this service.
// ExternalID is the opaque client-facing identifier: assigned exactly once,
// right before the first durable write, and immutable afterwards.
type Product struct {
	ID         int64           `json:"-"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewExternalID generates a client-facing product identifier.
// UUID v4 with the dashes stripped.
func NewExternalID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewProductFromRequest builds a new entity from a create request.
// ExternalID stays empty here; the repository assigns it at insert time.
func NewProductFromRequest(req CreateProductRequest) *Product {
	return &Product{
		Name:  req.Name,
		Price: *req.Price,
	}
}

// ApplyPartialUpdate merges the fields present in req onto the product.
// Absent fields are left untouched. ID and ExternalID are never modified.
func (p *Product) ApplyPartialUpdate(req UpdateProductRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
}

// ToResponse maps the entity to its external read shape.
// The internal ID is not exposed; the external ID is surfaced as "id".
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:    p.ExternalID,
		Name:  p.Name,
		Price: p.Price,
	}
}
