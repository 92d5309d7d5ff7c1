package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Stock is mutated in place by the order
// service through the catalog store; everything else is immutable after
// creation. SKU is caller-supplied and not guaranteed unique.
type Product struct {
	ID       uuid.UUID
	Name     string
	SKU      string
	Category string
	Price    Money
	Stock    int

	CreatedAt time.Time
}

// ProductInput carries the caller-supplied fields of a new product.
// The store generates the ID and timestamps. Numeric ranges are the
// caller's concern: the store accepts negative values without crashing
// but does not normalize them.
type ProductInput struct {
	Name     string
	SKU      string
	Category string
	Price    Money
	Stock    int
}
