package model

import "github.com/shopspring/decimal"

// ProductCreatedEvent is fired once per successful create, after the durable
// write. It is transient: constructed, handed to the publisher, never stored.
type ProductCreatedEvent struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NewProductCreatedEvent builds the event from the persisted product.
func NewProductCreatedEvent(p *Product) ProductCreatedEvent {
	return ProductCreatedEvent{
		ID:    p.ExternalID,
		Name:  p.Name,
		Price: p.Price,
	}
}
