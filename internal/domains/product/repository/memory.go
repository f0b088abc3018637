package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"product-service/internal/domains/product/model"
)

// MemoryRepository is an in-process Repository used by tests and local runs
// without a database. It mirrors the Postgres implementation's contract:
// internal/external ID assignment on first save, not-found sentinel on lookup,
// idempotent delete, page-indexed listing.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product // keyed by external ID
	nextID   int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		products: make(map[string]model.Product),
		nextID:   1,
	}
}

func (r *MemoryRepository) Save(_ context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if product.ID == 0 {
		if product.ExternalID == "" {
			product.ExternalID = model.NewExternalID()
		}
		product.ID = r.nextID
		r.nextID++
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	r.products[product.ExternalID] = *product
	saved := *product
	return &saved, nil
}

func (r *MemoryRepository) FindByExternalID(_ context.Context, externalID string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[externalID]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	found := p
	return &found, nil
}

func (r *MemoryRepository) FindAll(_ context.Context, page model.PageRequest) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}

	sortProducts(all, page.Sorts)

	start := page.Offset * page.Limit
	if start >= len(all) {
		return []model.Product{}, nil
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *MemoryRepository) DeleteByExternalID(_ context.Context, externalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, externalID)
	return nil
}

// sortProducts orders by the given sort keys in sequence, falling back to the
// insertion order (internal ID).
func sortProducts(products []model.Product, sorts []model.SortOrder) {
	sort.SliceStable(products, func(i, j int) bool {
		for _, s := range sorts {
			c := compareByProperty(products[i], products[j], s.Property)
			if c == 0 {
				continue
			}
			if s.Direction == model.SortDesc {
				return c > 0
			}
			return c < 0
		}
		return products[i].ID < products[j].ID
	})
}

func compareByProperty(a, b model.Product, property string) int {
	switch property {
	case "id":
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	case "externalId":
		return compareStrings(a.ExternalID, b.ExternalID)
	case "name":
		return compareStrings(a.Name, b.Name)
	case "price":
		return a.Price.Cmp(b.Price)
	}
	return 0
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
