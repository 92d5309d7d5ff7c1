package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	OrdersCreated  prometheus.Counter
	OrdersRejected prometheus.Counter
	ProductsAdded  prometheus.Counter
	OrderTotal     prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{Name: "orderdesk_orders_created_total"})
	ordersRejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "orderdesk_orders_rejected_total"})
	productsAdded := prometheus.NewCounter(prometheus.CounterOpts{Name: "orderdesk_products_added_total"})
	orderTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orderdesk_order_total_amount",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	})

	r.MustRegister(ordersCreated, ordersRejected, productsAdded, orderTotal)

	return &Registry{
		reg:            r,
		OrdersCreated:  ordersCreated,
		OrdersRejected: ordersRejected,
		ProductsAdded:  productsAdded,
		OrderTotal:     orderTotal,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
