package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/orderdesk/internal/domain"
	"github.com/nikolayk812/orderdesk/internal/metrics"
	"github.com/nikolayk812/orderdesk/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProductsHandler is the presentation collaborator of the catalog store.
// Field validation (non-empty name, non-negative numbers) happens here,
// before the store is invoked, per the store's contract.
type ProductsHandler struct {
	Catalog port.CatalogStore
	Metrics *metrics.Registry
}

type AddProductReq struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

type ProductResp struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Post("/products", h.addProduct)
	r.Get("/products", h.listProducts)
}

func (h *ProductsHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "price must not be negative")
		return
	}
	if req.Stock < 0 {
		writeError(w, http.StatusBadRequest, "stock must not be negative")
		return
	}

	product := h.Catalog.AddProduct(r.Context(), domain.ProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Price:    domain.NewMoney(req.Price, h.Catalog.Currency()),
		Stock:    req.Stock,
	})

	h.Metrics.ProductsAdded.Inc()

	writeJSON(w, http.StatusCreated, toProductResp(product))
}

func (h *ProductsHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.Catalog.ListProducts(r.Context())

	writeJSON(w, http.StatusOK, lo.Map(products, func(p domain.Product, _ int) ProductResp {
		return toProductResp(p)
	}))
}

func toProductResp(p domain.Product) ProductResp {
	return ProductResp{
		ID:        p.ID.String(),
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		Price:     p.Price.Amount,
		Currency:  p.Price.Currency.String(),
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}
