package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nikolayk812/orderdesk/internal/config"
	"github.com/nikolayk812/orderdesk/internal/events"
	"github.com/nikolayk812/orderdesk/internal/httpx"
	kafkax "github.com/nikolayk812/orderdesk/internal/kafka"
	"github.com/nikolayk812/orderdesk/internal/metrics"
	"github.com/nikolayk812/orderdesk/internal/repository"
	"github.com/nikolayk812/orderdesk/internal/service"
	"golang.org/x/text/currency"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		log.Fatalf("currency %q: %v", cfg.Currency, err)
	}

	// Stores live for the whole process and are passed by handle,
	// never reached through package globals.
	catalog := repository.NewCatalog(unit)
	orders := repository.NewOrders()
	if cfg.SeedDemoData {
		repository.SeedDemoCatalog(ctx, catalog)
		log.Println("seeded demo catalog")
	}

	registry := metrics.NewRegistry()
	orderSvc := service.NewOrder(catalog, orders, registry)

	// Kafka producer is optional: without brokers the API runs standalone.
	var producer *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafkax.NewProducer(cfg.KafkaBrokers, events.TopicOrderCreated, 1024)
		producer.Start(ctx)
	}

	router := httpx.NewRouter(registry)
	ph := &httpx.ProductsHandler{Catalog: catalog, Metrics: registry}
	ph.Register(router)
	oh := &httpx.OrdersHandler{
		Service:  orderSvc,
		Orders:   orders,
		Currency: unit,
		Producer: producer,
		Name:     cfg.ServiceName,
	}
	oh.Register(router)
	sh := &httpx.StatsHandler{Catalog: catalog, Orders: orders}
	sh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	if producer != nil {
		producer.Close() // close inbox -> flush & close writer
		producer.WaitClosed()
	}
}
