package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/orderdesk/internal/port"
	"github.com/shopspring/decimal"
)

// lowStockThreshold mirrors the dashboard's "low stock" badge cutoff.
const lowStockThreshold = 10

// StatsHandler computes dashboard figures from store snapshots. It holds
// no state of its own: every request re-reads both stores.
type StatsHandler struct {
	Catalog port.CatalogStore
	Orders  port.OrderStore
}

type StatsResp struct {
	TotalProducts int             `json:"total_products"`
	TotalOrders   int             `json:"total_orders"`
	Revenue       decimal.Decimal `json:"revenue"`
	LowStock      int             `json:"low_stock"`
}

func (h *StatsHandler) Register(r *chi.Mux) {
	r.Get("/stats", h.stats)
}

func (h *StatsHandler) stats(w http.ResponseWriter, r *http.Request) {
	products := h.Catalog.ListProducts(r.Context())
	orders := h.Orders.ListOrders(r.Context())

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total.Amount)
	}

	lowStock := 0
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			lowStock++
		}
	}

	writeJSON(w, http.StatusOK, StatsResp{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		Revenue:       revenue,
		LowStock:      lowStock,
	})
}
