package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkax "github.com/nikolayk812/orderdesk/internal/kafka"

	"github.com/nikolayk812/orderdesk/internal/domain"
	"github.com/nikolayk812/orderdesk/internal/events"
	"github.com/nikolayk812/orderdesk/internal/port"
	"github.com/nikolayk812/orderdesk/internal/service"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// OrdersHandler exposes the order service. Producer may be nil: event
// publishing is optional and the core runs without any broker.
type OrdersHandler struct {
	Service  *service.OrderService
	Orders   port.OrderStore
	Currency currency.Unit
	Producer *kafkax.Producer
	Name     string // producer name stamped on event envelopes
}

type OrderItemReq struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // unit price frozen by the cart
}

type CreateOrderReq struct {
	CustomerName string         `json:"customer_name"`
	Items        []OrderItemReq `json:"items"`
}

type ValidateStockReq struct {
	Items []OrderItemReq `json:"items"`
}

type StockValidationResp struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type TotalResp struct {
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

type OrderItemResp struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderResp struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Items        []OrderItemResp `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{id}", h.getOrder)
	r.Post("/orders/validate", h.validateStock)
	r.Post("/orders/total", h.calculateTotal)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	// Presentation-layer pre-checks; the core does not enforce these.
	if strings.TrimSpace(req.CustomerName) == "" || len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	items, err := toDomainItems(req.Items, h.Currency)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Service.CreateOrder(r.Context(), req.CustomerName, items)
	if err != nil {
		var validationErr *service.StockValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, http.StatusUnprocessableEntity, StockValidationResp{
				Valid:  false,
				Errors: validationErr.Errors,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishOrderCreated(order)

	writeJSON(w, http.StatusCreated, toOrderResp(order))
}

func (h *OrdersHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.Orders.ListOrders(r.Context())

	writeJSON(w, http.StatusOK, lo.Map(orders, func(o domain.Order, _ int) OrderResp {
		return toOrderResp(o)
	}))
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, found := h.Orders.GetOrder(r.Context(), orderID)
	if !found {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	writeJSON(w, http.StatusOK, toOrderResp(order))
}

func (h *OrdersHandler) validateStock(w http.ResponseWriter, r *http.Request) {
	var req ValidateStockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	items, err := toDomainItems(req.Items, h.Currency)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	validation := h.Service.ValidateStock(r.Context(), items)
	writeJSON(w, http.StatusOK, StockValidationResp{Valid: validation.Valid, Errors: validation.Errors})
}

func (h *OrdersHandler) calculateTotal(w http.ResponseWriter, r *http.Request) {
	var req ValidateStockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	items, err := toDomainItems(req.Items, h.Currency)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	total := h.Service.CalculateTotal(r.Context(), items)
	writeJSON(w, http.StatusOK, TotalResp{Total: total.Amount, Currency: total.Currency.String()})
}

func (h *OrdersHandler) publishOrderCreated(order domain.Order) {
	if h.Producer == nil {
		return
	}

	payload := events.OrderCreatedPayload{
		OrderID:      order.ID.String(),
		CustomerName: order.CustomerName,
		Items: lo.Map(order.Items, func(it domain.OrderItem, _ int) events.OrderItemPayload {
			return events.OrderItemPayload{
				ProductID: it.ProductID.String(),
				Quantity:  it.Quantity,
				UnitPrice: it.Price.Amount.String(),
			}
		}),
		Total:    order.Total.Amount.String(),
		Currency: order.Total.Currency.String(),
	}

	envelope := events.Envelope{
		EventID:       uuid.NewString(),
		EventType:     events.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Name,
		CorrelationID: order.ID.String(),
		Payload:       kafkax.MustMarshal(payload),
	}

	h.Producer.Publish(events.PartitionKey(order.ID.String()), kafkax.MustMarshal(envelope))
}

func toDomainItems(items []OrderItemReq, unit currency.Unit) ([]domain.OrderItem, error) {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, errors.New("invalid product id")
		}
		out = append(out, domain.OrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     domain.NewMoney(item.Price, unit),
		})
	}
	return out, nil
}

func toOrderResp(o domain.Order) OrderResp {
	return OrderResp{
		ID:           o.ID.String(),
		CustomerName: o.CustomerName,
		Items: lo.Map(o.Items, func(it domain.OrderItem, _ int) OrderItemResp {
			return OrderItemResp{
				ProductID: it.ProductID.String(),
				Quantity:  it.Quantity,
				Price:     it.Price.Amount,
			}
		}),
		Total:     o.Total.Amount,
		Currency:  o.Total.Currency.String(),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}
