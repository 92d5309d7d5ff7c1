package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/orderdesk/internal/domain"
	"golang.org/x/text/currency"
)

// CatalogStore owns the mutable product collection. Products are never
// deleted in this core; the only mutation after creation is the stock
// decrement performed by the order service.
type CatalogStore interface {
	// AddProduct creates a product with a fresh ID from the given fields
	// and appends it to the catalog. Range validation is a caller concern.
	AddProduct(ctx context.Context, input domain.ProductInput) domain.Product

	// GetProduct looks up a product by ID. The boolean is false when the
	// product is absent; absent means skip for all callers in this core.
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, bool)

	// ListProducts returns a read-only snapshot in insertion order.
	ListProducts(ctx context.Context) []domain.Product

	// DecrementStock subtracts quantity from the product's stock, without
	// clamping. Unknown product IDs are a silent no-op. The order service
	// only calls this after validating availability.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int)

	// Currency is the single currency the catalog operates in.
	Currency() currency.Unit
}
