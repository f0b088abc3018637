package service

import (
	"context"

	"product-service/internal/domains/product/model"
)

// Service is the product orchestration layer consumed by the HTTP handlers.
type Service interface {
	Create(ctx context.Context, req model.CreateProductRequest) (*model.ProductResponse, error)
	Update(ctx context.Context, externalID string, req model.UpdateProductRequest) (*model.ProductResponse, error)
	List(ctx context.Context, offset, limit int, sortOrders []string) ([]model.ProductResponse, error)
	Get(ctx context.Context, externalID string) (*model.ProductResponse, error)
	Delete(ctx context.Context, externalID string) error
}

// EventPublisher delivers domain events to the message channel.
//
// Implementations are fire-and-forget: the returned error covers handoff
// (serialization) only, delivery happens asynchronously and its outcome is
// logged by the publisher itself.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload interface{}) error
}
