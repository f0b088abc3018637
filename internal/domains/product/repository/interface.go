package repository

import (
	"context"

	"product-service/internal/domains/product/model"
)

// Repository is the durable store contract for products.
//
// Save assigns the internal ID and, when unset, the external ID on first
// insert. FindByExternalID returns model.ErrProductNotFound when the external
// ID does not exist. DeleteByExternalID is idempotent: deleting an absent
// external ID is not an error.
type Repository interface {
	Save(ctx context.Context, product *model.Product) (*model.Product, error)
	FindByExternalID(ctx context.Context, externalID string) (*model.Product, error)
	FindAll(ctx context.Context, page model.PageRequest) ([]model.Product, error)
	DeleteByExternalID(ctx context.Context, externalID string) error
}
