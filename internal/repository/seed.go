package repository

import (
	"context"

	"github.com/nikolayk812/orderdesk/internal/domain"
	"github.com/nikolayk812/orderdesk/internal/port"
	"github.com/shopspring/decimal"
)

// SeedDemoCatalog fills an empty catalog with the demo products used by
// the dashboard. Intended for local runs, gated by config.
func SeedDemoCatalog(ctx context.Context, catalog port.CatalogStore) {
	unit := catalog.Currency()

	demo := []domain.ProductInput{
		{Name: "Wireless Headphones", SKU: "WH-001", Category: "Electronics", Price: domain.NewMoney(decimal.RequireFromString("79.99"), unit), Stock: 25},
		{Name: "USB-C Cable", SKU: "UC-001", Category: "Accessories", Price: domain.NewMoney(decimal.RequireFromString("12.99"), unit), Stock: 100},
		{Name: "Laptop Stand", SKU: "LS-001", Category: "Accessories", Price: domain.NewMoney(decimal.RequireFromString("49.99"), unit), Stock: 15},
		{Name: "Mechanical Keyboard", SKU: "MK-001", Category: "Electronics", Price: domain.NewMoney(decimal.RequireFromString("129.99"), unit), Stock: 8},
	}

	for _, input := range demo {
		catalog.AddProduct(ctx, input)
	}
}
