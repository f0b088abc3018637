package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRequestValid(t *testing.T) {
	price := decimal.NewFromInt(42)
	req := CreateProductRequest{Name: "pizza", Price: &price}

	assert.NoError(t, req.Validate())
}

func TestCreateProductRequestMissingName(t *testing.T) {
	price := decimal.NewFromInt(42)
	req := CreateProductRequest{Price: &price}

	assert.Error(t, req.Validate())
}

func TestCreateProductRequestMissingPrice(t *testing.T) {
	req := CreateProductRequest{Name: "pizza"}

	assert.Error(t, req.Validate())
}

func TestCreateProductRequestNegativePrice(t *testing.T) {
	price := decimal.NewFromInt(-1)
	req := CreateProductRequest{Name: "pizza", Price: &price}

	assert.Error(t, req.Validate())
}

func TestCreateProductRequestZeroPrice(t *testing.T) {
	price := decimal.Zero
	req := CreateProductRequest{Name: "pizza", Price: &price}

	assert.NoError(t, req.Validate())
}

func TestUpdateProductRequestEmptyIsValid(t *testing.T) {
	req := UpdateProductRequest{}

	require.NoError(t, req.Validate())
}

func TestUpdateProductRequestEmptyNameRejected(t *testing.T) {
	name := ""
	req := UpdateProductRequest{Name: &name}

	assert.Error(t, req.Validate())
}

func TestUpdateProductRequestNegativePriceRejected(t *testing.T) {
	price := decimal.NewFromInt(-5)
	req := UpdateProductRequest{Price: &price}

	assert.Error(t, req.Validate())
}
