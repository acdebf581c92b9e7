package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockTransactionRepository define el puerto del ledger de stock (append-only).
// Las entradas nunca se mutan; solo desaparecen en cascada al eliminar el producto.
type StockTransactionRepository interface {
	Create(transaction *entity.StockTransaction) error
	// ListByProduct devuelve la historia ordenada por id ascendente
	// (el id es monotónico con el tiempo de inserción).
	ListByProduct(productID string) ([]*entity.StockTransaction, error)
	DeleteByProduct(productID string) error
}
