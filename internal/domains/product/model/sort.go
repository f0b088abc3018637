package model

import (
	"fmt"
	"strings"
)

// SortDirection is a validated sort direction token.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortOrder is one validated (property, direction) pair.
// A slice of SortOrders is significant in order: the first entry is the
// primary sort key, the second the tie-breaker, and so on.
type SortOrder struct {
	Property  string
	Direction SortDirection
}

// sortableColumns maps the product's declared property names to their
// database columns. Anything outside this set is rejected.
var sortableColumns = map[string]string{
	"id":         "id",
	"externalId": "external_id",
	"name":       "name",
	"price":      "price",
}

// Column returns the database column backing the sort property.
func (s SortOrder) Column() string {
	return sortableColumns[s.Property]
}

// ParseSortOrders parses raw "<property>,<direction>" directives into
// validated sort orders, preserving their order.
func ParseSortOrders(raw []string) ([]SortOrder, error) {
	orders := make([]SortOrder, 0, len(raw))

	for _, entry := range raw {
		property, direction, found := strings.Cut(entry, ",")
		if !found {
			return nil, NewInvalidSortOrderError(fmt.Sprintf("malformed sort order %q", entry))
		}

		if _, ok := sortableColumns[property]; !ok {
			return nil, NewInvalidSortOrderError(fmt.Sprintf("invalid property %q", property))
		}

		parsedDirection, err := parseSortDirection(direction)
		if err != nil {
			return nil, err
		}

		orders = append(orders, SortOrder{
			Property:  property,
			Direction: parsedDirection,
		})
	}

	return orders, nil
}

func parseSortDirection(direction string) (SortDirection, error) {
	switch strings.ToLower(direction) {
	case "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	default:
		return "", NewInvalidSortOrderError(fmt.Sprintf("invalid direction %q", direction))
	}
}

// PageRequest describes one page of a listing.
// Offset is a zero-based page index, not a row offset.
type PageRequest struct {
	Offset int
	Limit  int
	Sorts  []SortOrder
}
