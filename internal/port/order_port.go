package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/orderdesk/internal/domain"
)

// OrderStore owns the order collection. Within this core the collection
// is append-only: there are no update or delete operations.
type OrderStore interface {
	// AppendOrder adds a fully-constructed order, preserving insertion order.
	AppendOrder(ctx context.Context, order domain.Order)

	// GetOrder looks up an order by ID. The boolean is false when absent.
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, bool)

	// ListOrders returns a read-only snapshot in insertion order.
	// Callers must re-read after each mutating call; the store pushes nothing.
	ListOrders(ctx context.Context) []domain.Order
}
