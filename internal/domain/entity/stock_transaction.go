package entity

import "time"

// Tipos de transacción de stock. Una entrada del ledger es IN u OUT, nunca ambos.
const (
	TransactionTypeIn  = "IN"  // la cantidad aumentó
	TransactionTypeOut = "OUT" // la cantidad disminuyó
)

// Razones por defecto cuando el caller no anota el movimiento.
const (
	DefaultReasonIn  = "entrada de stock"
	DefaultReasonOut = "salida de stock"
)

// StockTransaction es una entrada inmutable del ledger de stock. Quantity es
// la magnitud absoluta del cambio (siempre positiva), nunca el stock resultante.
// Referencia débil a Product: la historia de un producto eliminado solo
// desaparece con la eliminación en cascada del propio producto.
type StockTransaction struct {
	ID        int64 // asignado por el almacén, monotónico con el tiempo
	ProductID string
	Type      string // IN | OUT
	Quantity  int64  // > 0
	Reason    string
	CreatedAt time.Time
}
