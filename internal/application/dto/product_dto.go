package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// Stock y MinStock son opcionales: nil aplica los defaults (0 y 10).
type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=200"`
	SKU      string   `json:"sku" validate:"required,min=1,max=100"`
	Category string   `json:"category"`
	Price    int64    `json:"price"` // unidades menores de moneda
	Cost     int64    `json:"cost"`
	Stock    *int64   `json:"stock"`
	MinStock *int64   `json:"min_stock"`
	Supplier string   `json:"supplier"`
	Image    string   `json:"image"`
	Aliases  []string `json:"aliases"`
}

// UpdateProductRequest entrada para actualizar campos generales de un producto.
// No incluye Stock a propósito: el stock solo cambia por la ruta del ledger
// (PUT /api/products/:id/stock o POST /api/products/:id/adjust).
type UpdateProductRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string  `json:"category"`
	Price    *int64   `json:"price"`
	Cost     *int64   `json:"cost"`
	MinStock *int64   `json:"min_stock"`
	Supplier *string  `json:"supplier"`
	Image    *string  `json:"image"`
	Aliases  []string `json:"aliases"`
}

// SetStockRequest fija el stock en un valor absoluto.
type SetStockRequest struct {
	Stock  int64  `json:"stock"`
	Reason string `json:"reason"`
}

// AdjustStockRequest ajusta el stock por un delta relativo (positivo o negativo).
// El resultado se recorta a cero; nunca falla por quedar negativo.
type AdjustStockRequest struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Category  string    `json:"category"`
	Price     int64     `json:"price"`
	Cost      int64     `json:"cost"`
	Stock     int64     `json:"stock"`
	MinStock  int64     `json:"min_stock"`
	Supplier  string    `json:"supplier"`
	Image     string    `json:"image"`
	Aliases   []string  `json:"aliases"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockTransactionResponse entrada del ledger de stock.
type StockTransactionResponse struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"` // IN | OUT
	Quantity  int64     `json:"quantity"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
