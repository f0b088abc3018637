package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortOrdersPreservesOrder(t *testing.T) {
	orders, err := ParseSortOrders([]string{"price,desc", "name,asc"})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, SortOrder{Property: "price", Direction: SortDesc}, orders[0])
	assert.Equal(t, SortOrder{Property: "name", Direction: SortAsc}, orders[1])
}

func TestParseSortOrdersDirectionTokens(t *testing.T) {
	tests := []struct {
		raw      string
		expected SortDirection
	}{
		{"name,asc", SortAsc},
		{"name,ASC", SortAsc},
		{"name,ascending", SortAsc},
		{"name,Ascending", SortAsc},
		{"name,desc", SortDesc},
		{"name,DESC", SortDesc},
		{"name,descending", SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			orders, err := ParseSortOrders([]string{tt.raw})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, orders[0].Direction)
		})
	}
}

func TestParseSortOrdersUnknownProperty(t *testing.T) {
	_, err := ParseSortOrders([]string{"color,asc"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSortOrder))

	var productErr *ProductError
	require.True(t, errors.As(err, &productErr))
	assert.Equal(t, ErrCodeInvalidSortOrder, productErr.Code)
}

func TestParseSortOrdersInvalidDirection(t *testing.T) {
	_, err := ParseSortOrders([]string{"price,sideways"})
	assert.True(t, errors.Is(err, ErrInvalidSortOrder))
}

func TestParseSortOrdersMissingComma(t *testing.T) {
	_, err := ParseSortOrders([]string{"price"})
	assert.True(t, errors.Is(err, ErrInvalidSortOrder))
}

func TestParseSortOrdersSplitsOnFirstComma(t *testing.T) {
	// Everything after the first comma is the direction token.
	_, err := ParseSortOrders([]string{"price,desc,asc"})
	assert.True(t, errors.Is(err, ErrInvalidSortOrder))
}

func TestParseSortOrdersEmptyInput(t *testing.T) {
	orders, err := ParseSortOrders(nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSortOrderColumnMapping(t *testing.T) {
	assert.Equal(t, "external_id", SortOrder{Property: "externalId"}.Column())
	assert.Equal(t, "price", SortOrder{Property: "price"}.Column())
}
