// Package query implementa el motor de consultas y filtros: vistas derivadas
// del catálogo sin mutación alguna. Cada llamada recalcula sobre el snapshot
// vigente; no hay caché ni invalidación push.
package query

import (
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Filtros soportados por Filter.
const (
	FilterLowStock   = "low_stock"
	FilterOutOfStock = "out_of_stock"
	FilterRecent     = "recent"
)

// recentWindow ventana del filtro "recent" sobre updated_at.
const recentWindow = 7 * 24 * time.Hour

// UseCase deriva vistas de solo lectura del catálogo y del ledger.
type UseCase struct {
	products repository.ProductRepository
	ledger   repository.StockTransactionRepository
}

// NewUseCase construye el motor de consultas.
func NewUseCase(products repository.ProductRepository, ledger repository.StockTransactionRepository) *UseCase {
	return &UseCase{products: products, ledger: ledger}
}

// ListAll devuelve el catálogo completo proyectado, más reciente primero.
func (uc *UseCase) ListAll() ([]dto.InventoryViewDTO, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return toInventoryViews(list), nil
}

// Search busca por subcadena (insensible a mayúsculas) en nombre, sku,
// categoría y alias. Texto vacío o solo espacios no restringe: cae en ListAll.
func (uc *UseCase) Search(text string) ([]dto.InventoryViewDTO, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return uc.ListAll()
	}
	list, err := uc.products.Search(text)
	if err != nil {
		return nil, err
	}
	return toInventoryViews(list), nil
}

// Filter deriva una de las vistas fijas del inventario:
//
//	low_stock    0 < stock <= min_stock, ordenado por stock ascendente
//	out_of_stock stock == 0, más reciente primero
//	recent       updated_at dentro de los últimos 7 días, más reciente primero
//
// Un kind desconocido retorna domain.ErrInvalidInput.
func (uc *UseCase) Filter(kind string) ([]dto.InventoryViewDTO, error) {
	var (
		list []*entity.Product
		err  error
	)
	switch kind {
	case FilterLowStock:
		list, err = uc.products.ListLowStock()
	case FilterOutOfStock:
		list, err = uc.products.ListOutOfStock()
	case FilterRecent:
		list, err = uc.products.ListRecent(time.Now().Add(-recentWindow))
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	return toInventoryViews(list), nil
}

// Stats calcula los agregados del dashboard sobre el snapshot actual.
func (uc *UseCase) Stats() (*dto.InventoryStatsDTO, error) {
	total, err := uc.products.CountAll()
	if err != nil {
		return nil, err
	}
	low, err := uc.products.CountLowStock()
	if err != nil {
		return nil, err
	}
	out, err := uc.products.CountOutOfStock()
	if err != nil {
		return nil, err
	}
	value, err := uc.products.TotalValue()
	if err != nil {
		return nil, err
	}
	return &dto.InventoryStatsDTO{
		TotalProducts: total,
		LowStock:      low,
		OutOfStock:    out,
		TotalValue:    value,
	}, nil
}

// History devuelve la historia del ledger de un producto, ordenada por id
// ascendente. Referencia débil: un producto eliminado tiene historia vacía.
func (uc *UseCase) History(productID string) ([]dto.StockTransactionResponse, error) {
	list, err := uc.ledger.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockTransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.StockTransactionResponse{
			ID:        t.ID,
			ProductID: t.ProductID,
			Type:      t.Type,
			Quantity:  t.Quantity,
			Reason:    t.Reason,
			CreatedAt: t.CreatedAt,
		})
	}
	return items, nil
}
