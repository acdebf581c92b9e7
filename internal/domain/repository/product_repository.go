package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia del catálogo (DIP).
//
// El stock NO se modifica por Update: la sentencia de actualización general
// excluye la columna estructuralmente. Todo cambio de stock pasa por
// UpdateStock dentro de la misma transacción que registra la entrada del
// ledger (ver application/command).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// la secuencia leer-calcular-escribir-registrar por producto.
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int64, updatedAt time.Time) error
	// Touch reescribe solo updated_at (set de stock idempotente sin delta).
	Touch(id string, updatedAt time.Time) error
	Delete(id string) error

	List() ([]*entity.Product, error)
	Search(text string) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	ListOutOfStock() ([]*entity.Product, error)
	ListRecent(since time.Time) ([]*entity.Product, error)

	CountAll() (int64, error)
	CountLowStock() (int64, error)
	CountOutOfStock() (int64, error)
	// TotalValue devuelve Σ(cost × stock) sobre el catálogo vigente.
	TotalValue() (decimal.Decimal, error)
}
