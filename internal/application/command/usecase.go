// Package command implementa el servicio de comandos de inventario: el único
// punto de mutación del catálogo y del ledger. Las lecturas derivadas viven en
// el paquete query.
package command

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// UseCase orquesta catálogo + ledger. No guarda estado entre llamadas; la
// serialización por producto la da el bloqueo de fila dentro del TxRunner.
type UseCase struct {
	products repository.ProductRepository
	txRunner TxRunner
}

// NewUseCase construye el servicio de comandos.
func NewUseCase(products repository.ProductRepository, txRunner TxRunner) *UseCase {
	return &UseCase{products: products, txRunner: txRunner}
}

// CreateProduct valida la entrada, aplica defaults y persiste el producto.
// SKU duplicado retorna domain.ErrDuplicate sin insertar nada.
func (uc *UseCase) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price < 0 || in.Cost < 0 {
		return nil, domain.ErrInvalidInput
	}
	stock := int64(0)
	if in.Stock != nil {
		stock = *in.Stock
	}
	minStock := int64(entity.DefaultMinStock)
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	if stock < 0 || minStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.products.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	supplier := in.Supplier
	if supplier == "" {
		supplier = entity.DefaultSupplier
	}
	image := in.Image
	if image == "" {
		image = entity.DefaultImage
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		Supplier:  supplier,
		Image:     image,
		Price:     in.Price,
		Cost:      in.Cost,
		Stock:     stock,
		MinStock:  minStock,
		Aliases:   in.Aliases,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateProduct actualiza campos generales de un producto (nunca el stock:
// esa ruta pasa por SetStock/AdjustStockBy para no saltarse el ledger).
func (uc *UseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if *in.Cost < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Aliases != nil {
		product.Aliases = in.Aliases
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct elimina el producto y su historia del ledger en una sola
// transacción (el FK con ON DELETE CASCADE es el respaldo en la BD).
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	existing, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		ledger repository.StockTransactionRepository,
	) error {
		if err := ledger.DeleteByProduct(id); err != nil {
			return err
		}
		return products.Delete(id)
	})
}

// GetProduct obtiene un producto por ID.
func (uc *UseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		Price:     p.Price,
		Cost:      p.Cost,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Supplier:  p.Supplier,
		Image:     p.Image,
		Aliases:   p.Aliases,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
