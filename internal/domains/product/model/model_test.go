package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func strPtr(s string) *string {
	return &s
}

func TestNewProductFromRequestLeavesExternalIDUnset(t *testing.T) {
	price := decimal.NewFromInt(42)
	product := NewProductFromRequest(CreateProductRequest{
		Name:  "pizza",
		Price: &price,
	})

	assert.Empty(t, product.ExternalID)
	assert.Zero(t, product.ID)
	assert.Equal(t, "pizza", product.Name)
	assert.True(t, product.Price.Equal(price))
}

func TestNewExternalIDHasNoDashes(t *testing.T) {
	id := NewExternalID()
	require.Len(t, id, 32)
	assert.NotContains(t, id, "-")

	assert.NotEqual(t, id, NewExternalID())
}

func TestApplyPartialUpdateMergesPresentFieldsOnly(t *testing.T) {
	product := &Product{
		ID:         7,
		ExternalID: "abc123",
		Name:       "pizza",
		Price:      decimal.NewFromInt(42),
	}

	product.ApplyPartialUpdate(UpdateProductRequest{Name: strPtr("pizzaV2")})

	assert.Equal(t, "pizzaV2", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(42)))
	assert.Equal(t, "abc123", product.ExternalID)
	assert.Equal(t, int64(7), product.ID)
}

func TestApplyPartialUpdateAbsentFieldsUntouched(t *testing.T) {
	product := &Product{Name: "pizza", Price: decimal.NewFromInt(42)}

	product.ApplyPartialUpdate(UpdateProductRequest{})

	assert.Equal(t, "pizza", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(42)))
}

func TestApplyPartialUpdatePriceOnly(t *testing.T) {
	product := &Product{Name: "pizza", Price: decimal.NewFromInt(42)}

	product.ApplyPartialUpdate(UpdateProductRequest{Price: decimalPtr(decimal.NewFromInt(99))})

	assert.Equal(t, "pizza", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(99)))
}

func TestToResponseExposesExternalIDOnly(t *testing.T) {
	product := &Product{
		ID:         7,
		ExternalID: "abc123",
		Name:       "pizza",
		Price:      decimal.NewFromInt(42),
	}

	resp := product.ToResponse()

	assert.Equal(t, "abc123", resp.ID)
	assert.Equal(t, "pizza", resp.Name)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(42)))
}
