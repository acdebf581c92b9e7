package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del ledger sobre PostgreSQL
// (usable con pool o tx vía Querier). Append-only: no hay Update.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador del ledger. Pasar pool o tx.
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create registra una entrada del ledger y devuelve el id asignado por la BD
// (BIGSERIAL, monotónico con el orden de inserción). Quantity <= 0 es
// entrada inválida: la magnitud del cambio siempre es positiva.
func (r *StockTransactionRepo) Create(transaction *entity.StockTransaction) error {
	if transaction.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if transaction.Type != entity.TransactionTypeIn && transaction.Type != entity.TransactionTypeOut {
		return domain.ErrInvalidInput
	}
	query := `
		INSERT INTO stock_transactions (product_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		transaction.ProductID, transaction.Type, transaction.Quantity,
		transaction.Reason, transaction.CreatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListByProduct devuelve la historia de un producto ordenada por id ascendente.
func (r *StockTransactionRepo) ListByProduct(productID string) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, product_id, type, quantity, reason, created_at
		FROM stock_transactions WHERE product_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.Reason, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// DeleteByProduct elimina la historia de un producto (cascada explícita al
// eliminar el producto; el FK ON DELETE CASCADE es el respaldo).
func (r *StockTransactionRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_transactions WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock transactions: %w", err)
	}
	return nil
}
