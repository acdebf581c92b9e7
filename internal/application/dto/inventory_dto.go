package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryViewDTO proyección de solo lectura de un producto para pantallas de
// inventario. Nunca se persiste; se recalcula en cada lectura con fallbacks
// para proveedor, ícono y etiqueta de fecha.
type InventoryViewDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Category     string    `json:"category"`
	Supplier     string    `json:"supplier"`
	Image        string    `json:"image"`
	Price        int64     `json:"price"`
	Cost         int64     `json:"cost"`
	Stock        int64     `json:"stock"`
	MinStock     int64     `json:"min_stock"`
	LowStock     bool      `json:"low_stock"`
	OutOfStock   bool      `json:"out_of_stock"`
	UpdatedLabel string    `json:"updated_label"` // solo fecha, para listados
	UpdatedAt    time.Time `json:"updated_at"`
}

// InventoryStatsDTO agregados para el dashboard de inventario.
// TotalValue es Σ(cost × stock) en unidades menores de moneda.
type InventoryStatsDTO struct {
	TotalProducts int64           `json:"total_products"`
	LowStock      int64           `json:"low_stock"`
	OutOfStock    int64           `json:"out_of_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
}
