package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"product-service/internal/domains/product/model"
	"product-service/internal/domains/product/repository"
	"product-service/internal/infrastructure/cache"
)

const productCacheKeyPrefix = "product:"

type productService struct {
	repo      repository.Repository
	publisher EventPublisher
	cache     cache.ProductCache
	cacheTTL  time.Duration
}

// NewProductService wires the orchestration layer.
// cache may be nil; caching is an optimization, never a dependency.
func NewProductService(
	repo repository.Repository,
	publisher EventPublisher,
	productCache cache.ProductCache,
	cacheTTL time.Duration,
) Service {
	return &productService{
		repo:      repo,
		publisher: publisher,
		cache:     productCache,
		cacheTTL:  cacheTTL,
	}
}

// Create persists a new product and then emits a ProductCreatedEvent.
//
// Ordering is strict: the durable write comes first, the event strictly after.
// When the write fails no event is ever handed to the publisher. The event
// send itself is fire-and-forget and cannot fail the request.
func (s *productService) Create(ctx context.Context, req model.CreateProductRequest) (*model.ProductResponse, error) {
	product := model.NewProductFromRequest(req)

	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.sendCreatedEvent(ctx, saved)

	resp := saved.ToResponse()
	return &resp, nil
}

func (s *productService) sendCreatedEvent(ctx context.Context, product *model.Product) {
	event := model.NewProductCreatedEvent(product)

	log.Info().Str("product_id", event.ID).Msg("Sending ProductCreatedEvent")

	if err := s.publisher.Publish(ctx, event.ID, event); err != nil {
		// Contained here: a publish failure never rolls back the committed
		// write and never reaches the caller.
		log.Error().Err(err).Str("product_id", event.ID).Msg("Failed to hand off ProductCreatedEvent")
	}
}

// Update merges the present fields of req onto the stored product.
// Absent fields keep their stored values; the external ID never changes.
// No event is published on update.
func (s *productService) Update(ctx context.Context, externalID string, req model.UpdateProductRequest) (*model.ProductResponse, error) {
	product, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.NewProductNotFoundError(externalID)
		}
		return nil, fmt.Errorf("failed to load product %s: %w", externalID, err)
	}

	product.ApplyPartialUpdate(req)

	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", externalID, err)
	}

	s.invalidateCache(ctx, externalID)

	resp := saved.ToResponse()
	return &resp, nil
}

// List validates the sort directives before touching the store, then returns
// one page of products in store order.
func (s *productService) List(ctx context.Context, offset, limit int, sortOrders []string) ([]model.ProductResponse, error) {
	sorts, err := model.ParseSortOrders(sortOrders)
	if err != nil {
		return nil, err
	}

	page := model.PageRequest{
		Offset: offset,
		Limit:  limit,
		Sorts:  sorts,
	}

	products, err := s.repo.FindAll(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	responses := make([]model.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, products[i].ToResponse())
	}
	return responses, nil
}

func (s *productService) Get(ctx context.Context, externalID string) (*model.ProductResponse, error) {
	cacheKey := productCacheKeyPrefix + externalID

	if s.cache != nil {
		var cached model.ProductResponse
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Str("product_id", externalID).Msg("Cache read failed")
		}
		if found {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.NewProductNotFoundError(externalID)
		}
		return nil, fmt.Errorf("failed to load product %s: %w", externalID, err)
	}

	resp := product.ToResponse()

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, resp, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("product_id", externalID).Msg("Cache write failed")
		}
	}

	return &resp, nil
}

// Delete removes the product. Deleting an absent external ID is a no-op.
func (s *productService) Delete(ctx context.Context, externalID string) error {
	if err := s.repo.DeleteByExternalID(ctx, externalID); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", externalID, err)
	}

	s.invalidateCache(ctx, externalID)
	return nil
}

func (s *productService) invalidateCache(ctx context.Context, externalID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, productCacheKeyPrefix+externalID); err != nil {
		log.Warn().Err(err).Str("product_id", externalID).Msg("Cache invalidation failed")
	}
}
