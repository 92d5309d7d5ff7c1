package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/orderdesk/internal/domain"
	"github.com/nikolayk812/orderdesk/internal/port"
	"github.com/samber/lo"
)

type orderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrders creates an empty in-memory order store.
func NewOrders() port.OrderStore {
	return &orderStore{}
}

func (s *orderStore) AppendOrder(_ context.Context, order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
}

func (s *orderStore) GetOrder(_ context.Context, orderID uuid.UUID) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, found := lo.Find(s.orders, func(o domain.Order) bool {
		return o.ID == orderID
	})
	if !found {
		return domain.Order{}, false
	}

	return cloneOrder(order), true
}

func (s *orderStore) ListOrders(_ context.Context) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.orders, func(o domain.Order, _ int) domain.Order {
		return cloneOrder(o)
	})
}

// cloneOrder detaches the item slice so snapshot holders cannot alter
// stored orders.
func cloneOrder(o domain.Order) domain.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
