package command

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura del stock y el
// append al ledger sean una sola unidad: commit de ambos o rollback de ambos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		ledger repository.StockTransactionRepository,
	) error) error
}
