package command

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// SetStock fija el stock de un producto en un valor absoluto y registra el
// delta en el ledger, todo dentro de una transacción con la fila del producto
// bloqueada (SELECT FOR UPDATE). Dos SetStock concurrentes sobre el mismo
// producto se serializan: ninguno lee un stock obsoleto.
//
// delta == 0 es un no-op idempotente: reescribe updated_at y no registra nada.
func (uc *UseCase) SetStock(ctx context.Context, id string, newStock int64, reason string) (*dto.ProductResponse, error) {
	if newStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		ledger repository.StockTransactionRepository,
	) error {
		product, err := products.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		updated, err := applyStock(products, ledger, product, newStock, reason, time.Now())
		if err != nil {
			return err
		}
		out = toProductResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdjustStockBy ajusta el stock por un delta relativo sobre la misma ruta
// atómica que SetStock. Un delta negativo que dejaría el stock bajo cero se
// recorta a cero en lugar de fallar.
func (uc *UseCase) AdjustStockBy(ctx context.Context, id string, delta int64, reason string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		ledger repository.StockTransactionRepository,
	) error {
		product, err := products.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		target := product.Stock + delta
		if target < 0 {
			target = 0
		}
		updated, err := applyStock(products, ledger, product, target, reason, time.Now())
		if err != nil {
			return err
		}
		out = toProductResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// applyStock ejecuta los pasos 3–4 del set de stock con la fila ya bloqueada:
// calcula el delta, escribe stock + updated_at y registra exactamente una
// entrada IN/OUT con la magnitud del cambio. Caller dentro de la tx.
func applyStock(
	products repository.ProductRepository,
	ledger repository.StockTransactionRepository,
	product *entity.Product,
	newStock int64,
	reason string,
	now time.Time,
) (*entity.Product, error) {
	delta := newStock - product.Stock
	if delta == 0 {
		if err := products.Touch(product.ID, now); err != nil {
			return nil, err
		}
		product.UpdatedAt = now
		return product, nil
	}

	if err := products.UpdateStock(product.ID, newStock, now); err != nil {
		return nil, err
	}

	txType := entity.TransactionTypeIn
	quantity := delta
	if delta < 0 {
		txType = entity.TransactionTypeOut
		quantity = -delta
	}
	if reason == "" {
		if txType == entity.TransactionTypeIn {
			reason = entity.DefaultReasonIn
		} else {
			reason = entity.DefaultReasonOut
		}
	}
	if err := ledger.Create(&entity.StockTransaction{
		ProductID: product.ID,
		Type:      txType,
		Quantity:  quantity,
		Reason:    reason,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	product.Stock = newStock
	product.UpdatedAt = now
	return product, nil
}
