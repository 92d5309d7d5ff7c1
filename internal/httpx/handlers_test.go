package httpx_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/orderdesk/internal/domain"
	"github.com/nikolayk812/orderdesk/internal/httpx"
	"github.com/nikolayk812/orderdesk/internal/metrics"
	"github.com/nikolayk812/orderdesk/internal/port"
	"github.com/nikolayk812/orderdesk/internal/repository"
	"github.com/nikolayk812/orderdesk/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

type handlersSuite struct {
	suite.Suite

	catalog port.CatalogStore
	orders  port.OrderStore
	router  *chi.Mux
}

// entry point to run the tests in the suite
func TestHandlersSuite(t *testing.T) {
	// Verifies no leaks after all tests in the suite run.
	defer goleak.VerifyNone(t)

	suite.Run(t, new(handlersSuite))
}

func (suite *handlersSuite) SetupTest() {
	suite.catalog = repository.NewCatalog(currency.USD)
	suite.orders = repository.NewOrders()

	registry := metrics.NewRegistry()
	svc := service.NewOrder(suite.catalog, suite.orders, registry)

	suite.router = httpx.NewRouter(registry)

	ph := &httpx.ProductsHandler{Catalog: suite.catalog, Metrics: registry}
	ph.Register(suite.router)

	oh := &httpx.OrdersHandler{
		Service:  svc,
		Orders:   suite.orders,
		Currency: currency.USD,
		Name:     "orderdesk-test",
	}
	oh.Register(suite.router)

	sh := &httpx.StatsHandler{Catalog: suite.catalog, Orders: suite.orders}
	sh.Register(suite.router)
}

func (suite *handlersSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	suite.T().Helper()

	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func (suite *handlersSuite) seedProduct(name, price string, stock int) domain.Product {
	return suite.catalog.AddProduct(suite.T().Context(), domain.ProductInput{
		Name:     name,
		SKU:      gofakeit.ProductUPC(),
		Category: gofakeit.ProductCategory(),
		Price:    domain.NewMoney(decimal.RequireFromString(price), currency.USD),
		Stock:    stock,
	})
}

func (suite *handlersSuite) TestAddProduct() {
	t := suite.T()

	rec := suite.do(http.MethodPost, "/products", httpx.AddProductReq{
		Name:     "Mouse",
		SKU:      "MS-001",
		Category: "Accessories",
		Price:    decimal.RequireFromString("19.99"),
		Stock:    50,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[httpx.ProductResp](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Mouse", created.Name)
	assert.Equal(t, "MS-001", created.SKU)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, 50, created.Stock)

	rec = suite.do(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	products := decode[[]httpx.ProductResp](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
}

func (suite *handlersSuite) TestAddProductRejectsBadInput() {
	tests := []struct {
		name string
		req  httpx.AddProductReq
	}{
		{
			name: "empty name",
			req:  httpx.AddProductReq{Price: decimal.RequireFromString("1.00"), Stock: 1},
		},
		{
			name: "negative price",
			req:  httpx.AddProductReq{Name: "Mouse", Price: decimal.RequireFromString("-1.00"), Stock: 1},
		},
		{
			name: "negative stock",
			req:  httpx.AddProductReq{Name: "Mouse", Price: decimal.RequireFromString("1.00"), Stock: -1},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			rec := suite.do(http.MethodPost, "/products", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			// nothing was added
			assert.Empty(t, suite.catalog.ListProducts(t.Context()))
		})
	}
}

func (suite *handlersSuite) TestCreateOrder() {
	t := suite.T()

	product := suite.seedProduct("Product A", "10.00", 5)

	rec := suite.do(http.MethodPost, "/orders", httpx.CreateOrderReq{
		CustomerName: "Alice",
		Items: []httpx.OrderItemReq{{
			ProductID: product.ID.String(),
			Quantity:  3,
			Price:     product.Price.Amount,
		}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decode[httpx.OrderResp](t, rec)
	assert.Equal(t, "Alice", order.CustomerName)
	assert.Equal(t, "pending", order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("30.00")))

	// stock was decremented, visible on re-read
	got, found := suite.catalog.GetProduct(t.Context(), product.ID)
	require.True(t, found)
	assert.Equal(t, 2, got.Stock)

	// order is readable by id
	rec = suite.do(http.MethodGet, "/orders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func (suite *handlersSuite) TestCreateOrderInsufficientStock() {
	t := suite.T()

	product := suite.seedProduct("Product B", "20.00", 0)

	rec := suite.do(http.MethodPost, "/orders", httpx.CreateOrderReq{
		CustomerName: "Bob",
		Items: []httpx.OrderItemReq{{
			ProductID: product.ID.String(),
			Quantity:  1,
			Price:     product.Price.Amount,
		}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode[httpx.StockValidationResp](t, rec)
	assert.False(t, resp.Valid)
	assert.Equal(t, []string{"Product B: Only 0 in stock, requested 1"}, resp.Errors)

	assert.Empty(t, suite.orders.ListOrders(t.Context()))
}

func (suite *handlersSuite) TestCreateOrderBadRequests() {
	product := suite.seedProduct("Product A", "10.00", 5)

	tests := []struct {
		name string
		req  httpx.CreateOrderReq
	}{
		{
			name: "empty customer name",
			req: httpx.CreateOrderReq{
				Items: []httpx.OrderItemReq{{ProductID: product.ID.String(), Quantity: 1}},
			},
		},
		{
			name: "no items",
			req:  httpx.CreateOrderReq{CustomerName: "Alice"},
		},
		{
			name: "malformed product id",
			req: httpx.CreateOrderReq{
				CustomerName: "Alice",
				Items:        []httpx.OrderItemReq{{ProductID: "not-a-uuid", Quantity: 1}},
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			rec := suite.do(http.MethodPost, "/orders", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, suite.orders.ListOrders(t.Context()))
		})
	}
}

func (suite *handlersSuite) TestGetOrderNotFound() {
	t := suite.T()

	rec := suite.do(http.MethodGet, "/orders/"+gofakeit.UUID(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = suite.do(http.MethodGet, "/orders/garbage", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func (suite *handlersSuite) TestValidateStockEndpoint() {
	t := suite.T()

	product := suite.seedProduct("Product A", "10.00", 5)

	rec := suite.do(http.MethodPost, "/orders/validate", httpx.ValidateStockReq{
		Items: []httpx.OrderItemReq{{ProductID: product.ID.String(), Quantity: 5}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[httpx.StockValidationResp](t, rec).Valid)

	rec = suite.do(http.MethodPost, "/orders/validate", httpx.ValidateStockReq{
		Items: []httpx.OrderItemReq{{ProductID: product.ID.String(), Quantity: 6}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[httpx.StockValidationResp](t, rec)
	assert.False(t, resp.Valid)
	assert.Equal(t, []string{"Product A: Only 5 in stock, requested 6"}, resp.Errors)
}

func (suite *handlersSuite) TestCalculateTotalEndpoint() {
	t := suite.T()

	product := suite.seedProduct("Product A", "12.99", 100)

	rec := suite.do(http.MethodPost, "/orders/total", httpx.ValidateStockReq{
		Items: []httpx.OrderItemReq{{ProductID: product.ID.String(), Quantity: 2}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[httpx.TotalResp](t, rec)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("25.98")))
	assert.Equal(t, "USD", resp.Currency)
}

func (suite *handlersSuite) TestStats() {
	t := suite.T()

	product := suite.seedProduct("Product A", "10.00", 5)
	suite.seedProduct("Product B", "20.00", 50)

	rec := suite.do(http.MethodPost, "/orders", httpx.CreateOrderReq{
		CustomerName: "Alice",
		Items: []httpx.OrderItemReq{{
			ProductID: product.ID.String(),
			Quantity:  3,
			Price:     product.Price.Amount,
		}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = suite.do(http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[httpx.StatsResp](t, rec)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, 1, stats.LowStock) // Product A is at 2 after the order
}

func (suite *handlersSuite) TestHealthAndMetrics() {
	t := suite.T()

	rec := suite.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
