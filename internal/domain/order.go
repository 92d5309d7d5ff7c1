package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is immutable after creation: no edit or cancel operations exist
// in this core. Items keep their insertion order, which is significant
// for display only.
type Order struct {
	ID           uuid.UUID
	CustomerName string
	Items        []OrderItem
	Total        Money
	Status       OrderStatus

	CreatedAt time.Time
}

// OrderItem is a line within an order. Price is the unit price frozen
// when the caller added the item to the cart, not a live reference:
// later catalog price changes do not retroactively alter existing orders.
// ProductID may reference a product missing from the catalog; readers
// must tolerate that.
type OrderItem struct {
	ProductID uuid.UUID
	Quantity  int
	Price     Money
}
