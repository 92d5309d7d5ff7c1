package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/orderdesk/internal/domain"
	"github.com/nikolayk812/orderdesk/internal/metrics"
	"github.com/nikolayk812/orderdesk/internal/port"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

// StockValidationError is the failure result of CreateOrder. It is a
// recoverable business condition, not a systemic error: callers match it
// with errors.As and show Errors to the user.
type StockValidationError struct {
	Errors []string
}

func (e *StockValidationError) Error() string {
	return "stock validation failed: " + strings.Join(e.Errors, "; ")
}

// OrderService is the only component that mutates the catalog and the
// order list together.
//
// Caller contract: non-empty customer names and non-empty item lists are
// the presentation layer's responsibility to pre-check. The service does
// not enforce either.
type OrderService struct {
	catalog port.CatalogStore
	orders  port.OrderStore
	metrics *metrics.Registry

	// Guards the validate-then-mutate sequence in CreateOrder so that
	// concurrent callers observe it as one atomic unit. Without it a
	// second caller could pass validation against a stale snapshot and
	// oversell.
	mu sync.Mutex
}

func NewOrder(catalog port.CatalogStore, orders port.OrderStore, registry *metrics.Registry) *OrderService {
	return &OrderService{
		catalog: catalog,
		orders:  orders,
		metrics: registry,
	}
}

// ValidateStock checks the given items against the current catalog.
func (s *OrderService) ValidateStock(ctx context.Context, items []domain.OrderItem) domain.StockValidation {
	return ValidateItems(items, s.catalog.ListProducts(ctx))
}

// CalculateTotal prices the given items against the current catalog.
func (s *OrderService) CalculateTotal(ctx context.Context, items []domain.OrderItem) domain.Money {
	return TotalOf(items, s.catalog.ListProducts(ctx), s.catalog.Currency())
}

// CreateOrder validates stock, computes the total from the pre-mutation
// catalog, decrements stock per item and appends the new order. On
// validation failure it returns a *StockValidationError and leaves both
// stores untouched.
func (s *OrderService) CreateOrder(ctx context.Context, customerName string, items []domain.OrderItem) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.catalog.ListProducts(ctx)

	if validation := ValidateItems(items, products); !validation.Valid {
		s.metrics.OrdersRejected.Inc()
		return domain.Order{}, &StockValidationError{Errors: validation.Errors}
	}

	// Total is priced before any stock mutation. Item prices are not
	// re-derived: the caller froze them when building the cart.
	total := TotalOf(items, products, s.catalog.Currency())

	order := domain.Order{
		ID:           uuid.New(),
		CustomerName: customerName,
		Items:        slices.Clone(items),
		Total:        total,
		Status:       domain.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	// Validation above guarantees sufficient stock for every item, so
	// this loop cannot fail partway while the mutex is held.
	for _, item := range items {
		s.catalog.DecrementStock(ctx, item.ProductID, item.Quantity)
	}

	s.orders.AppendOrder(ctx, order)

	s.metrics.OrdersCreated.Inc()
	s.metrics.OrderTotal.Observe(total.Amount.InexactFloat64())

	return order, nil
}

// ValidateItems is the pure stock validator: it walks items in order and
// collects human-readable findings against the given catalog snapshot.
// It mutates neither input.
func ValidateItems(items []domain.OrderItem, products []domain.Product) domain.StockValidation {
	byID := lo.KeyBy(products, func(p domain.Product) uuid.UUID { return p.ID })

	var errs []string
	for _, item := range items {
		product, found := byID[item.ProductID]
		switch {
		case !found:
			errs = append(errs, "Product not found")
		case item.Quantity <= 0:
			errs = append(errs, fmt.Sprintf("%s: Invalid quantity %d", product.Name, item.Quantity))
		case product.Stock < item.Quantity:
			errs = append(errs, fmt.Sprintf("%s: Only %d in stock, requested %d", product.Name, product.Stock, item.Quantity))
		}
	}

	return domain.StockValidation{Valid: len(errs) == 0, Errors: errs}
}

// TotalOf is the pure pricing calculator: the sum of catalog unit price
// times quantity over all items. Items referencing a missing product
// contribute zero rather than failing.
func TotalOf(items []domain.OrderItem, products []domain.Product, unit currency.Unit) domain.Money {
	byID := lo.KeyBy(products, func(p domain.Product) uuid.UUID { return p.ID })

	total := domain.Zero(unit)
	for _, item := range items {
		product, found := byID[item.ProductID]
		if !found {
			continue
		}
		total = total.Add(product.Price.MulInt(item.Quantity))
	}

	return total
}
