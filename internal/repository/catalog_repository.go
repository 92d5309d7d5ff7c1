package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/orderdesk/internal/domain"
	"github.com/nikolayk812/orderdesk/internal/port"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

type catalogStore struct {
	mu       sync.RWMutex
	products []domain.Product
	unit     currency.Unit
}

// NewCatalog creates an empty in-memory catalog operating in the given
// currency. The store is exclusively owned by the process: nothing
// mutates the product collection except its own methods.
func NewCatalog(unit currency.Unit) port.CatalogStore {
	return &catalogStore{unit: unit}
}

func (s *catalogStore) AddProduct(_ context.Context, input domain.ProductInput) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.Product{
		ID:        uuid.New(),
		Name:      input.Name,
		SKU:       input.SKU,
		Category:  input.Category,
		Price:     domain.NewMoney(input.Price.Amount, s.unit),
		Stock:     input.Stock,
		CreatedAt: time.Now(),
	}

	s.products = append(s.products, product)
	return product
}

func (s *catalogStore) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Find(s.products, func(p domain.Product) bool {
		return p.ID == productID
	})
}

func (s *catalogStore) ListProducts(_ context.Context) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy so callers cannot reach into the store's backing array.
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *catalogStore) DecrementStock(_ context.Context, productID uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// No clamping: stock may go negative if a caller skips validation.
	// Unknown IDs are a deliberate no-op, see the port contract.
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].Stock -= quantity
			return
		}
	}
}

func (s *catalogStore) Currency() currency.Unit {
	return s.unit
}
