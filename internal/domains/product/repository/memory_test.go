package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-service/internal/domains/product/model"
)

func seedProduct(t *testing.T, repo *MemoryRepository, name string, price int64) *model.Product {
	t.Helper()

	saved, err := repo.Save(context.Background(), &model.Product{
		Name:  name,
		Price: decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	return saved
}

func TestMemorySaveAssignsIdentifiers(t *testing.T) {
	repo := NewMemoryRepository()

	saved := seedProduct(t, repo, "pizza", 42)

	assert.NotZero(t, saved.ID)
	assert.NotEmpty(t, saved.ExternalID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestMemorySaveKeepsExternalIDOnUpdate(t *testing.T) {
	repo := NewMemoryRepository()
	saved := seedProduct(t, repo, "pizza", 42)
	originalExternalID := saved.ExternalID

	saved.Name = "pizzaV2"
	updated, err := repo.Save(context.Background(), saved)
	require.NoError(t, err)

	assert.Equal(t, originalExternalID, updated.ExternalID)
	assert.Equal(t, saved.ID, updated.ID)
}

func TestMemoryFindByExternalID(t *testing.T) {
	repo := NewMemoryRepository()
	saved := seedProduct(t, repo, "pizza", 42)

	found, err := repo.FindByExternalID(context.Background(), saved.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, "pizza", found.Name)

	_, err = repo.FindByExternalID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	saved := seedProduct(t, repo, "pizza", 42)

	require.NoError(t, repo.DeleteByExternalID(context.Background(), saved.ExternalID))
	require.NoError(t, repo.DeleteByExternalID(context.Background(), saved.ExternalID))
	require.NoError(t, repo.DeleteByExternalID(context.Background(), "never-existed"))
}

func TestMemoryFindAllMultiKeySort(t *testing.T) {
	repo := NewMemoryRepository()
	seedProduct(t, repo, "banana", 10)
	seedProduct(t, repo, "apple", 10)
	seedProduct(t, repo, "cherry", 5)

	products, err := repo.FindAll(context.Background(), model.PageRequest{
		Offset: 0,
		Limit:  10,
		Sorts: []model.SortOrder{
			{Property: "price", Direction: model.SortDesc},
			{Property: "name", Direction: model.SortAsc},
		},
	})
	require.NoError(t, err)

	require.Len(t, products, 3)
	assert.Equal(t, "apple", products[0].Name)
	assert.Equal(t, "banana", products[1].Name)
	assert.Equal(t, "cherry", products[2].Name)
}

func TestMemoryFindAllPageIndexSemantics(t *testing.T) {
	repo := NewMemoryRepository()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		seedProduct(t, repo, name, 1)
	}

	page := func(offset, limit int) []model.Product {
		products, err := repo.FindAll(context.Background(), model.PageRequest{
			Offset: offset,
			Limit:  limit,
			Sorts:  []model.SortOrder{{Property: "name", Direction: model.SortAsc}},
		})
		require.NoError(t, err)
		return products
	}

	// offset counts pages, not rows
	first := page(0, 2)
	require.Len(t, first, 2)
	assert.Equal(t, "a", first[0].Name)

	second := page(1, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "c", second[0].Name)

	last := page(2, 2)
	require.Len(t, last, 1)
	assert.Equal(t, "e", last[0].Name)

	assert.Empty(t, page(3, 2))
}
